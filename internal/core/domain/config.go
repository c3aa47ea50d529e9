package domain

import (
	"slices"
	"strings"
)

// WorkaroundSuffix marks the secondary project whose packages are only used temporarily.
const WorkaroundSuffix = ":SLE-workarounds"

// DefaultIgnoredPackages are the bookkeeping packages never treated as regular packages.
var DefaultIgnoredPackages = []string{
	"00Meta",
	"00aggregates",
	"000product",
	"000package-groups",
	"000release-packages",
}

const (
	// DefaultPrimaryProject is used when the config does not name one.
	DefaultPrimaryProject = "openSUSE:Leap:42.3"
	// DefaultFactoryProject is used when the config does not name one.
	DefaultFactoryProject = "openSUSE:Factory"
)

// Config holds the settings of one run. It is loaded once and never mutated.
type Config struct {
	// PrimaryProject is the project whose packages are tracked.
	PrimaryProject string
	// PreferenceOrder lists the fallback candidate projects in precedence order.
	PreferenceOrder []string
	// IgnoredPackages are package names skipped everywhere.
	IgnoredPackages []string
	// DropIfVanishedFrom lists projects a package may silently disappear from.
	DropIfVanishedFrom []string
	// FactoryProject is re-validated on every run even when it still matches.
	FactoryProject string
	// WorkaroundProject overrides suffix based detection when non-empty.
	WorkaroundProject string
}

// DefaultConfig returns the config used for keys absent from the config file.
func DefaultConfig() Config {
	return Config{
		PrimaryProject:  DefaultPrimaryProject,
		IgnoredPackages: slices.Clone(DefaultIgnoredPackages),
		FactoryProject:  DefaultFactoryProject,
	}
}

// IsIgnored reports whether pkg is in the ignore list.
func (c *Config) IsIgnored(pkg string) bool {
	return slices.Contains(c.IgnoredPackages, pkg)
}

// DropsIfVanished reports whether a package may vanish from project without becoming a fork.
func (c *Config) DropsIfVanished(project string) bool {
	return slices.Contains(c.DropIfVanishedFrom, project)
}

// Projects returns the primary project followed by the preference order.
func (c *Config) Projects() []string {
	return append([]string{c.PrimaryProject}, c.PreferenceOrder...)
}

// Workaround returns the workaround project, or "" when none is configured.
// Without an explicit setting the last project named with WorkaroundSuffix wins.
func (c *Config) Workaround() string {
	if c.WorkaroundProject != "" {
		return c.WorkaroundProject
	}
	found := ""
	for _, p := range c.Projects() {
		if IsWorkaroundProject(p) {
			found = p
		}
	}
	return found
}

// IsWorkaroundProject reports whether project follows the workaround naming scheme.
func IsWorkaroundProject(project string) bool {
	return strings.HasSuffix(project, WorkaroundSuffix)
}

const (
	// DefaultAPIURL is the build service used when neither flag nor environment names one.
	DefaultAPIURL = "https://api.opensuse.org"
	// EnvAPIURL names the environment variable overriding DefaultAPIURL.
	EnvAPIURL = "LOOKUP_APIURL"
)
