package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbora", "config.yaml")
	want := Settings{Language: "hi", Avatar: 3, Threshold: 0.8, Sound: false}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("language: en\nbogus: 1\n"))
	require.Error(t, err)
}

func TestParse_ClampsOutOfRange(t *testing.T) {
	s, err := Parse([]byte("language: de\navatar: 99\nthreshold: 3.5\n"))
	require.NoError(t, err)

	assert.Equal(t, "en", s.Language, "unsupported language falls back to English")
	assert.Equal(t, 1, s.Avatar, "out-of-range avatar resets")
	assert.Equal(t, 0.7, s.Threshold, "out-of-range threshold resets")
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("VERBORA_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", p)

	t.Setenv("VERBORA_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "verbora", "config.yaml"), p)
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "config.yaml")
	require.NoError(t, Save(path, Default()))
	assert.FileExists(t, path)
}
