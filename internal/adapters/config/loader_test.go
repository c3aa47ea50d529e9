package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lookup/internal/adapters/config"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lookup.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
from_prj: openSUSE:Leap:15.0
project_preference_order:
  - SUSE:SLE-15:GA
  - openSUSE:Leap:15.0:SLE-workarounds
  - openSUSE:Factory
drop_if_vanished_from:
  - openSUSE:Leap:42.3
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openSUSE:Leap:15.0", cfg.PrimaryProject)
	assert.Equal(t, []string{"SUSE:SLE-15:GA", "openSUSE:Leap:15.0:SLE-workarounds", "openSUSE:Factory"}, cfg.PreferenceOrder)
	assert.Equal(t, []string{"openSUSE:Leap:42.3"}, cfg.DropIfVanishedFrom)
	assert.Equal(t, domain.DefaultFactoryProject, cfg.FactoryProject, "absent keys keep their defaults")
	assert.Equal(t, domain.DefaultIgnoredPackages, cfg.IgnoredPackages)
	assert.Equal(t, "openSUSE:Leap:15.0:SLE-workarounds", cfg.Workaround())
}

func TestLoad_OverridesIgnoredPackages(t *testing.T) {
	path := writeConfig(t, "ignored_packages: [patterns-base]\n")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"patterns-base"}, cfg.IgnoredPackages)
	assert.Equal(t, domain.DefaultPrimaryProject, cfg.PrimaryProject)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := newLoader(t).Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
		invalid     bool
	}{
		{
			name:        "Malformed YAML",
			content:     "from_prj: [unterminated",
			errContains: "failed to parse config file",
		},
		{
			name:        "Empty primary project",
			content:     `from_prj: ""`,
			errContains: "from_prj must not be empty",
			invalid:     true,
		},
		{
			name:        "Duplicate candidate",
			content:     "project_preference_order: [A, B, A]",
			errContains: "project listed twice",
			invalid:     true,
		},
		{
			name:        "Primary listed as candidate",
			content:     "from_prj: A\nproject_preference_order: [B, A]",
			errContains: "its own candidate",
			invalid:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			if tt.invalid {
				assert.True(t, errors.Is(err, domain.ErrConfigInvalid))
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_NoPath(t *testing.T) {
	_, err := newLoader(t).Load("")
	require.ErrorIs(t, err, domain.ErrConfigPathMissing)
}
