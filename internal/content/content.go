// Package content holds the portfolio's static data.
//
// Everything here is literal and immutable: Default builds a fresh value on
// every call, so callers may not mutate what the page renders from.
package content

import (
	"errors"
	"strings"

	"github.com/gokulananth1/portfolio/internal/validate"
)

// ErrUnknownSection is returned when a section id has no matching section.
var ErrUnknownSection = errors.New("unknown section")

// Section ids, in page order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionExperience = "experience"
	SectionActivities = "activities"
	SectionContact    = "contact"
)

// Section is a titled block of the page.
type Section struct {
	ID       string `json:"id" yaml:"id" validate:"required,lowercase"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}

// Profile is the hero and about content.
type Profile struct {
	Name      string  `json:"name" yaml:"name" validate:"required"`
	Banner    string  `json:"banner" yaml:"banner" validate:"required"`
	Badge     string  `json:"badge" yaml:"badge"`
	Role      string  `json:"role" yaml:"role" validate:"required"`
	Headline  string  `json:"headline" yaml:"headline"`
	CGPA      string  `json:"cgpa" yaml:"cgpa"`
	Objective string  `json:"objective" yaml:"objective" validate:"required"`
	Motto     string  `json:"motto" yaml:"motto"`
	Traits    []Trait `json:"traits" yaml:"traits" validate:"dive"`
}

// Trait is a short label pair shown beside the career objective.
type Trait struct {
	Title string `json:"title" yaml:"title" validate:"required"`
	Note  string `json:"note" yaml:"note"`
}

// SkillCategory groups related skills under one card.
type SkillCategory struct {
	Category string   `json:"category" yaml:"category" validate:"required"`
	Color    string   `json:"color" yaml:"color" validate:"hexcolor"`
	Skills   []string `json:"skills" yaml:"skills" validate:"min=1,dive,required"`
}

// Project is a showcase entry.
type Project struct {
	Title       string    `json:"title" yaml:"title" validate:"required"`
	Tag         string    `json:"tag" yaml:"tag"`
	Description string    `json:"description" yaml:"description" validate:"required"`
	Image       string    `json:"image" yaml:"image" validate:"omitempty,url"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Accent      [2]string `json:"accent" yaml:"accent" validate:"dive,hexcolor"`
}

// Education is an academic milestone.
type Education struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Institution string `json:"institution" yaml:"institution" validate:"required"`
	Year        string `json:"year" yaml:"year"`
	Score       string `json:"score" yaml:"score"`
}

// Event is a workshop or presentation.
type Event struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Venue       string `json:"venue" yaml:"venue"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// Activity is an extracurricular card.
type Activity struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color" yaml:"color" validate:"hexcolor"`
}

// SocialLink points at a profile elsewhere.
type SocialLink struct {
	Label string `json:"label" yaml:"label" validate:"required"`
	URL   string `json:"url" yaml:"url" validate:"required,uri"`
}

// Assets names the static files the page references, relative to the assets directory.
type Assets struct {
	ProfileImage         string `json:"profile_image" yaml:"profile_image" validate:"required"`
	ProfileImageFallback string `json:"profile_image_fallback" yaml:"profile_image_fallback"`
	Resume               string `json:"resume" yaml:"resume" validate:"required"`
	CV                   string `json:"cv" yaml:"cv" validate:"required"`
}

// Portfolio is the whole page.
type Portfolio struct {
	Profile    Profile         `json:"profile" yaml:"profile"`
	Sections   []Section       `json:"sections" yaml:"sections" validate:"min=1,dive"`
	Skills     []SkillCategory `json:"skills" yaml:"skills" validate:"dive"`
	Projects   []Project       `json:"projects" yaml:"projects" validate:"dive"`
	Education  []Education     `json:"education" yaml:"education" validate:"dive"`
	Events     []Event         `json:"events" yaml:"events" validate:"dive"`
	Activities []Activity      `json:"activities" yaml:"activities" validate:"dive"`
	Social     []SocialLink    `json:"social" yaml:"social" validate:"dive"`
	Assets     Assets          `json:"assets" yaml:"assets"`
}

// Validate checks the struct tags of the whole tree.
func (p Portfolio) Validate() error {
	return validate.Struct(p)
}

// Section returns the section with the given id.
func (p Portfolio) Section(id string) (Section, error) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, ErrUnknownSection
}

// NavEntries are the labels shown in the navigation bar. Each lower-cases to a section id.
func NavEntries() []string {
	return []string{"About", "Skills", "Projects", "Activities", "Contact"}
}

// SectionID maps a navigation label to the id it scrolls to.
func SectionID(label string) string {
	return strings.ToLower(label)
}
