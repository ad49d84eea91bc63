// Package internal provides application configuration and operation dispatch.
package internal

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Notes   NotesConfig       `yaml:"notes"`
	Publish PublishConfig     `yaml:"publish"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Notes.Validate(); err != nil {
		return err
	}
	return c.Publish.Validate()
}

// ApplicationConfig holds application-level settings.
type ApplicationConfig struct {
	Verbose bool `yaml:"verbose"`
}

// NotesConfig holds the notes directory settings.
type NotesConfig struct {
	// Path is the notes root directory.
	Path string `yaml:"path"`
	// Pattern is the glob selecting note files under the root.
	Pattern string `yaml:"pattern"`
	// AssetMarker is the substring identifying asset links, e.g. "assets".
	AssetMarker string `yaml:"asset_marker"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Pattern, validation.Required),
		validation.Field(&c.AssetMarker, validation.Required),
	)
}

// PublishConfig holds the symlink destination directories.
type PublishConfig struct {
	AssetsDir string `yaml:"assets_dir"`
	NowDir    string `yaml:"now_dir"`
}

// Validate validates the publish configuration.
func (c *PublishConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AssetsDir, validation.Required),
		validation.Field(&c.NowDir, validation.Required),
	)
}

// NewDefaultConfig returns a Config with sensible default values. The notes
// directory defaults to a sibling of the working directory.
func NewDefaultConfig() *Config {
	return &Config{
		Notes: NotesConfig{
			Path:        "../Notes",
			Pattern:     "**/*.md",
			AssetMarker: "assets",
		},
		Publish: PublishConfig{
			AssetsDir: "docs/posts/assets",
			NowDir:    "docs/now",
		},
	}
}
