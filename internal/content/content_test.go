package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Skills[0].Skills[0] = "mutated"
	a.Projects = nil

	b := Default()
	assert.Equal(t, "Pandas", b.Skills[0].Skills[0])
	assert.Len(t, b.Projects, 4)
}

func TestNavEntries_ResolveToSections(t *testing.T) {
	p := Default()
	for _, label := range NavEntries() {
		s, err := p.Section(SectionID(label))
		require.NoError(t, err, label)
		assert.Equal(t, SectionID(label), s.ID)
	}
}

func TestSection_Unknown(t *testing.T) {
	_, err := Default().Section("blog")
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestValidate_RejectsBadColor(t *testing.T) {
	p := Default()
	p.Activities[0].Color = "rose"
	assert.Error(t, p.Validate())
}

func TestSectionsAreInPageOrder(t *testing.T) {
	var ids []string
	for _, s := range Default().Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		SectionHome, SectionAbout, SectionSkills, SectionProjects,
		SectionExperience, SectionActivities, SectionContact,
	}, ids)
}
