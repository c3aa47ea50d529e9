package config

// Configfile represents the structure of the YAML configuration file.
type Configfile struct {
	FromProject        string   `yaml:"from_prj"`
	PreferenceOrder    []string `yaml:"project_preference_order"`
	IgnoredPackages    []string `yaml:"ignored_packages"`
	DropIfVanishedFrom []string `yaml:"drop_if_vanished_from"`
	Factory            string   `yaml:"factory"`
	WorkaroundProject  string   `yaml:"workaround_project"`
}
