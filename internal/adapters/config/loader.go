// Package config provides the configuration loader for lookup.
package config

import (
	"os"
	"slices"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path. Keys absent from the file keep
// the values of domain.DefaultConfig.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		return nil, domain.ErrConfigPathMissing
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded config " + path + " for " + cfg.PrimaryProject)
	return cfg, nil
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*domain.Config, error) {
	defaults := domain.DefaultConfig()
	file := Configfile{
		FromProject:     defaults.PrimaryProject,
		IgnoredPackages: defaults.IgnoredPackages,
		Factory:         defaults.FactoryProject,
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := &domain.Config{
		PrimaryProject:     file.FromProject,
		PreferenceOrder:    file.PreferenceOrder,
		IgnoredPackages:    file.IgnoredPackages,
		DropIfVanishedFrom: file.DropIfVanishedFrom,
		FactoryProject:     file.Factory,
		WorkaroundProject:  file.WorkaroundProject,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *domain.Config) error {
	if cfg.PrimaryProject == "" {
		return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "from_prj must not be empty"), "key", "from_prj")
	}

	seen := make(map[string]struct{}, len(cfg.PreferenceOrder))
	for _, p := range cfg.PreferenceOrder {
		if p == "" {
			return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "empty project in preference order"), "key", "project_preference_order")
		}
		if _, dup := seen[p]; dup {
			return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "project listed twice in preference order"), "project", p)
		}
		seen[p] = struct{}{}
	}

	if slices.Contains(cfg.PreferenceOrder, cfg.PrimaryProject) {
		return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "primary project cannot be its own candidate"), "project", cfg.PrimaryProject)
	}
	return nil
}
