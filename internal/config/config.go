// Package config loads and saves the user settings file, a small YAML
// document under the XDG config directory.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the persisted user configuration.
type Settings struct {
	// Language is the UI language code: "en" or "hi".
	Language string `yaml:"language"`

	// Avatar is the chosen avatar index, 1-based.
	Avatar int `yaml:"avatar"`

	// Threshold is the fuzzy-match acceptance threshold for typed
	// answers, in [0, 1].
	Threshold float64 `yaml:"threshold"`

	// Sound toggles terminal bell feedback.
	Sound bool `yaml:"sound"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		Language:  "en",
		Avatar:    1,
		Threshold: 0.7,
		Sound:     true,
	}
}

// Parse decodes settings YAML, rejecting unknown fields.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	normalize(&s)
	return s, nil
}

// Load reads the settings file. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// Save writes the settings file, creating parent directories.
func Save(path string, s Settings) error {
	normalize(&s)
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// DefaultPath returns the settings file location. VERBORA_CONFIG
// overrides it; otherwise the XDG config directory is used.
func DefaultPath() (string, error) {
	if p := os.Getenv("VERBORA_CONFIG"); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "verbora", "config.yaml"), nil
}

// normalize clamps out-of-range values back to sane defaults.
func normalize(s *Settings) {
	if s.Language != "en" && s.Language != "hi" {
		s.Language = "en"
	}
	if s.Avatar < 1 || s.Avatar > 6 {
		s.Avatar = 1
	}
	if s.Threshold <= 0 || s.Threshold > 1 {
		s.Threshold = 0.7
	}
}
