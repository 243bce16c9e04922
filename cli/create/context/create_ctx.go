package create_ctx

import (
	"github.com/serenityjs/create-serenity/cli/config"
	"github.com/serenityjs/create-serenity/cli/create/answers"
)

// CreateCtx contains information for creating a project.
type CreateCtx struct {
	// Answers are the answers provided in command line. Empty fields are asked
	// in interactive mode.
	Answers answers.Answers
	// AnswersFile is a YAML file with answers. Command line answers take precedence.
	AnswersFile string
	// WorkDir is create-serenity launch working directory.
	WorkDir string
	// DestinationDir is the directory a project directory is created in.
	DestinationDir string
	// TemplateSearchPaths is a set of paths to search for a template before
	// the built-in templates.
	TemplateSearchPaths []string
	// NonInteractive disables user interaction. All answers must be provided.
	NonInteractive bool
	// Quiet hides commands output unless a command fails.
	Quiet bool
	// Verbose enables results table on success.
	Verbose bool
	// SkipInstall disables dependencies installation.
	SkipInstall bool
	// SkipGit disables version control initialization.
	SkipGit bool
	// CliOpts is loaded create-serenity config.
	CliOpts *config.CliOpts
}
