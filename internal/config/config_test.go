package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsToScreenHeight(t *testing.T) {
	tests := []struct {
		name       string
		visible    int
		screenRows int
		want       int
	}{
		{"fits", 3, 24, 3},
		{"clamped to rows minus search line", 30, 24, 23},
		{"exactly full screen", 23, 24, 23},
		{"tiny screen", 21, 2, 1},
		{"one-row screen leaves no result lines", 21, 1, 0},
		{"negative floors at zero", -1, 24, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New(tt.visible, tt.screenRows, "", nil)
			assert.Equal(t, tt.want, cfg.VisibleChoices)
		})
	}
}

func TestNewKeepsQueryAndChoices(t *testing.T) {
	choices := []string{"one", "two"}
	cfg := New(5, 24, "tw", choices)

	assert.Equal(t, "tw", cfg.InitialQuery)
	assert.Equal(t, choices, cfg.Choices)
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := loadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultHeight, cfg.Height)
}

func TestLoadFileReadsHeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: 5\n"), 0o600))

	cfg, err := loadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Height)
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: [\n"), 0o600))

	_, err := loadFile(path)
	assert.Error(t, err)
}

func TestLoadFileRejectsNegativeHeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: -2\n"), 0o600))

	_, err := loadFile(path)
	assert.Error(t, err)
}
