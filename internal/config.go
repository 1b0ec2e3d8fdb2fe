package internal

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/slugpm/internal/archive"
	"github.com/starford/slugpm/internal/project"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Project ProjectConfig     `yaml:"project"`
	Archive ArchiveConfig     `yaml:"archive"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Project.Validate(); err != nil {
		return err
	}
	return c.Archive.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// ProjectConfig controls where new projects are created.
type ProjectConfig struct {
	Root       string `yaml:"root"`
	DatePrefix bool   `yaml:"date_prefix"`
}

// Validate validates the project configuration.
func (c *ProjectConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// ArchiveConfig holds the archive folder name.
type ArchiveConfig struct {
	DirName string `yaml:"dir_name"`
}

// Validate validates the archive configuration. The folder name must be a
// single path element.
func (c *ArchiveConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DirName, validation.Required, validation.By(singlePathElement)),
	)
}

func singlePathElement(value any) error {
	s, _ := value.(string)
	if s == "." || s == ".." || strings.ContainsRune(s, '/') || strings.ContainsRune(s, filepath.Separator) {
		return fmt.Errorf("must be a single directory name, got %q", s)
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Project: ProjectConfig{
			Root: project.DefaultRoot,
		},
		Archive: ArchiveConfig{
			DirName: archive.DefaultDirName,
		},
	}
}
