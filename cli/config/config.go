package config

// CliOpts stores create-serenity configuration.
// Filled in when parsing the create-serenity.yaml configuration file.
//
// create-serenity.yaml file format:
// templates:
//   - path: path/to/templates
// dependencies:
//   versioned: [package, ...]
//   latest: package
// git:
//   commit_message: text
// log:
//   file: path
//   maxsize: num (MB)
//   maxage: num (Days)
//   maxbackups: num

// TemplateOpts contains configuration for project templates.
type TemplateOpts struct {
	// Path is a directory to search templates in.
	Path string `mapstructure:"path" yaml:"path"`
}

// DependenciesOpts contains packages installed into a new project.
type DependenciesOpts struct {
	// Versioned packages are installed at the selected release channel.
	Versioned FieldStringArrayType `mapstructure:"versioned" yaml:"versioned"`
	// Latest packages are always installed at the latest version.
	Latest FieldStringArrayType `mapstructure:"latest" yaml:"latest"`
}

// GitOpts contains version control options.
type GitOpts struct {
	// CommitMessage is a message of the initial commit.
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message"`
}

// LogOpts contains log file options.
type LogOpts struct {
	// File is a path to the log file. Logging to a file is disabled if empty.
	File string `mapstructure:"file" yaml:"file"`
	// MaxSize is a maximum size in MB of the log file before it gets rotated.
	MaxSize int `mapstructure:"maxsize" yaml:"maxsize"`
	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `mapstructure:"maxage" yaml:"maxage"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `mapstructure:"maxbackups" yaml:"maxbackups"`
}

// CliOpts is used to store create-serenity options.
type CliOpts struct {
	// Templates is a list of template search directories.
	Templates []TemplateOpts `mapstructure:"templates" yaml:"templates"`
	// Dependencies to install.
	Dependencies *DependenciesOpts `mapstructure:"dependencies" yaml:"dependencies"`
	// Git options.
	Git *GitOpts `mapstructure:"git" yaml:"git"`
	// Log options.
	Log *LogOpts `mapstructure:"log" yaml:"log"`
}
