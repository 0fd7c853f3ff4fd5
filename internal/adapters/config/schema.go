package config

// Workfile represents the structure of the mesonic.work.yaml configuration file.
type Workfile struct {
	Version  string       `yaml:"version"`
	Root     string       `yaml:"root"`
	Folders  []string     `yaml:"folders"`
	Settings *SettingsDTO `yaml:"settings"`
}

// Configfile represents the structure of the mesonic.yaml configuration file.
type Configfile struct {
	Version  string       `yaml:"version"`
	Root     string       `yaml:"root"`
	Settings *SettingsDTO `yaml:"settings"`
}

// SettingsDTO represents the user settings in either configuration file.
// Unset fields keep their defaults.
type SettingsDTO struct {
	MesonPath        string         `yaml:"mesonPath"`
	BuildFolder      string         `yaml:"buildFolder"`
	ConfigureOptions []string       `yaml:"configureOptions"`
	DebugOptions     map[string]any `yaml:"debugOptions"`
	Timeout          string         `yaml:"timeout"`
	Reveal           string         `yaml:"reveal"`
}
