package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/gokulananth1/portfolio/internal/validate"
)

// DefaultPath is where the config file is looked up when no --config flag is given.
const DefaultPath = "~/.config/portfolio/config.yaml"

// ErrInvalidConfig is returned when the config file cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config")

// LoaderConfig tunes the loading counter.
type LoaderConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval" validate:"gt=0"`
	CompleteDelay time.Duration `yaml:"complete_delay" validate:"gte=0"`
}

// NavbarConfig tunes the scrolled style and the scroll progress spring.
// The values are cosmetic; none of them carries a functional contract.
type NavbarConfig struct {
	ScrollThreshold int     `yaml:"scroll_threshold" validate:"gte=0"`
	FPS             int     `yaml:"fps" validate:"gt=0,lte=240"`
	SpringFrequency float64 `yaml:"spring_frequency" validate:"gt=0"`
	SpringDamping   float64 `yaml:"spring_damping" validate:"gt=0"`
	RestDelta       float64 `yaml:"rest_delta" validate:"gt=0,lt=1"`
}

// ContactConfig controls the mail handoff and the form's status timings.
type ContactConfig struct {
	Recipient  string        `yaml:"recipient" validate:"required,email"`
	SendDelay  time.Duration `yaml:"send_delay" validate:"gte=0"`
	ResetDelay time.Duration `yaml:"reset_delay" validate:"gte=0"`
}

// Config is the full application configuration.
type Config struct {
	Loader    LoaderConfig  `yaml:"loader"`
	Navbar    NavbarConfig  `yaml:"navbar"`
	Contact   ContactConfig `yaml:"contact"`
	AssetsDir string        `yaml:"assets_dir"`
}

// Default returns the configuration the page ships with.
func Default() Config {
	return Config{
		Loader: LoaderConfig{
			TickInterval:  20 * time.Millisecond,
			CompleteDelay: 500 * time.Millisecond,
		},
		Navbar: NavbarConfig{
			ScrollThreshold: 20,
			FPS:             60,
			SpringFrequency: 10,
			SpringDamping:   1,
			RestDelta:       0.001,
		},
		Contact: ContactConfig{
			Recipient:  "gokul.workdesk@gmail.com",
			SendDelay:  1000 * time.Millisecond,
			ResetDelay: 5000 * time.Millisecond,
		},
		AssetsDir: ".",
	}
}

// Load reads the config file at path on top of Default. A missing file is not an error.
// Sections that fail validation are reset to their defaults with a warning.
func Load(path string) (Config, error) {
	cfg := Default()
	expanded, err := expandTilde(path)
	if err != nil {
		return cfg, err
	}
	logrus.Debug("Loading config file from: ", expanded)
	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%w: %s: %w", ErrInvalidConfig, expanded, err)
	}
	cfg.heal()
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	expanded, err := expandTilde(path)
	if err != nil {
		return err
	}
	logrus.Debug("Saving config file to: ", expanded)
	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(expanded, data, 0o600)
}

// Exists reports whether a config file is present at path.
func Exists(path string) (bool, error) {
	expanded, err := expandTilde(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(expanded)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Validate checks every section.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// heal resets invalid sections to defaults.
func (c *Config) heal() {
	def := Default()
	if err := validate.Struct(c.Loader); err != nil {
		logrus.Warnf("Invalid loader settings in config; using defaults: %v", err)
		c.Loader = def.Loader
	}
	if err := validate.Struct(c.Navbar); err != nil {
		logrus.Warnf("Invalid navbar settings in config; using defaults: %v", err)
		c.Navbar = def.Navbar
	}
	if err := validate.Struct(c.Contact); err != nil {
		logrus.Warnf("Invalid contact settings in config; using defaults: %v", err)
		c.Contact = def.Contact
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
