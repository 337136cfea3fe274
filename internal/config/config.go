package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/folio/internal/counter"
	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/scrollspy"
	"github.com/san-kum/folio/internal/typewriter"
)

const (
	DefaultDataDir   = ".folio"
	DefaultPrefsFile = "prefs.db"
	DefaultLogFile   = "folio.log"
	DefaultLogLevel  = "info"
	DefaultFPS       = 60
	DefaultLoader    = time.Second
	// DefaultRowUnits is the height of one terminal row in layout units.
	DefaultRowUnits = 20.0
	// DefaultParticleScale is the number of layout units per braille
	// sub-pixel.
	DefaultParticleScale = 5.0
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	DataDir  string        `yaml:"data_dir"`
	LogFile  string        `yaml:"log_file"`
	LogLevel string        `yaml:"log_level"`
	FPS      int           `yaml:"fps"`
	Loader   time.Duration `yaml:"loader"`
	Seed     int64         `yaml:"seed"`

	Name     string            `yaml:"name"`
	Phrases  []string          `yaml:"phrases"`
	Typing   typewriter.Timing `yaml:"typing"`
	Sections []Section         `yaml:"sections"`
	Timeline []TimelineItem    `yaml:"timeline"`
	Counters []counter.Spec    `yaml:"counters"`
	Contact  ContactConfig     `yaml:"contact"`

	Particles ParticleConfig `yaml:"particles"`
	Scroll    ScrollConfig   `yaml:"scroll"`
}

// Section is a navigable block of the page.
type Section struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines,omitempty"`
}

type TimelineItem struct {
	Period  string `yaml:"period"`
	Title   string `yaml:"title"`
	Org     string `yaml:"org"`
	Summary string `yaml:"summary"`
}

type ContactConfig struct {
	Recipient string `yaml:"recipient"`
}

type ParticleConfig struct {
	particles.Params `yaml:",inline"`
	Enabled          bool    `yaml:"enabled"`
	Scale            float64 `yaml:"scale"`
}

type ScrollConfig struct {
	Offset          float64 `yaml:"offset"`
	NavbarThreshold float64 `yaml:"navbar_threshold"`
	RowUnits        float64 `yaml:"row_units"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		LogFile:  DefaultLogFile,
		LogLevel: DefaultLogLevel,
		FPS:      DefaultFPS,
		Loader:   DefaultLoader,
		Name:     "Elham Shah",
		Phrases: []string{
			"Full-Stack Developer",
			"AI/ML Enthusiast",
			"Mobile App Developer",
			"Problem Solver",
			"Tech Innovator",
		},
		Typing: typewriter.DefaultTiming(),
		Sections: []Section{
			{ID: "home", Title: "Home", Lines: []string{"Building things for the web, phones and terminals."}},
			{ID: "about", Title: "About", Lines: []string{
				"I design and ship full-stack products, from data pipelines",
				"to polished interfaces, and enjoy applied machine learning.",
			}},
			{ID: "experience", Title: "Experience"},
			{ID: "achievements", Title: "Achievements"},
			{ID: "contact", Title: "Contact", Lines: []string{"Have a project in mind? Drop a line."}},
		},
		Timeline: []TimelineItem{
			{Period: "2023 - Present", Title: "Software Engineer", Org: "Freelance", Summary: "Full-stack web and mobile apps for small businesses."},
			{Period: "2021 - 2023", Title: "ML Research Assistant", Org: "University Lab", Summary: "Model training pipelines and evaluation tooling."},
			{Period: "2019 - 2021", Title: "Junior Developer", Org: "Studio", Summary: "Frontend features and internal tools."},
		},
		Counters: []counter.Spec{
			{Label: "Projects", Target: 25, Suffix: "+"},
			{Label: "Commits", Target: 250, Suffix: "+"},
			{Label: "Hackathons", Target: 8},
			{Label: "Satisfaction", Target: 100, Suffix: "%"},
		},
		Contact: ContactConfig{Recipient: "hello@example.com"},
		Particles: ParticleConfig{
			Params:  particles.DefaultParams(),
			Enabled: true,
			Scale:   DefaultParticleScale,
		},
		Scroll: ScrollConfig{
			Offset:          scrollspy.DefaultOffset,
			NavbarThreshold: scrollspy.DefaultNavbarThreshold,
			RowUnits:        DefaultRowUnits,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings that would otherwise break a running page.
// Empty content lists are allowed; the matching feature is simply skipped.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Scroll.RowUnits <= 0 {
		return fmt.Errorf("%w: scroll.row_units must be positive", ErrInvalidConfig)
	}
	if c.Particles.Scale <= 0 {
		return fmt.Errorf("%w: particles.scale must be positive", ErrInvalidConfig)
	}
	t := c.Typing
	if t.Type <= 0 || t.Delete <= 0 || t.HoldTyped < 0 || t.HoldErased < 0 {
		return fmt.Errorf("%w: typing delays must be positive", ErrInvalidConfig)
	}
	for i, p := range c.Phrases {
		if p == "" {
			return fmt.Errorf("%w: phrase %d is empty", ErrInvalidConfig, i)
		}
	}
	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("%w: section %q has no id", ErrInvalidConfig, s.Title)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = true
	}
	if err := c.Particles.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PrefsPath is the preference database location.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.DataDir, DefaultPrefsFile)
}

// LogPath is the log file location, relative paths under DataDir. An empty
// log_file disables logging.
func (c *Config) LogPath() string {
	if c.LogFile == "" || filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, c.LogFile)
}

func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// SectionIDs returns the section ids in document order.
func (c *Config) SectionIDs() []string {
	ids := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		ids[i] = s.ID
	}
	return ids
}
