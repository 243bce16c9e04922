package cmdcontext

// CmdCtx is the main structure of the program context.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting create-serenity.
	Cli CliCtx
}

// CliCtx - CLI context. Contains flags passed when starting create-serenity
// and some other parameters.
type CliCtx struct {
	// Path to create-serenity.yaml config.
	ConfigPath string
	// ConfigDir is the configuration file directory.
	// And current working directory, if there is no config.
	ConfigDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
	// Quiet flag. Hides command output behind a spinner.
	Quiet bool
}
