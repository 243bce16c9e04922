package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/serenityjs/create-serenity/cli/util"
	"github.com/serenityjs/create-serenity/cli/version"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	return newCmdRoot(&createOpts{})
}

func newCmdRoot(opts *createOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create-serenity [flags]",
		Short: "Create a new SerenityJS Minecraft Bedrock server",
		Long: `Create a new SerenityJS Minecraft Bedrock server.

The project is created from a template in a new directory named after the project.
Dependencies are installed with the selected package manager and a git repository
is initialized. Missing answers are asked interactively.

Project types:
	javascript: a server written in JavaScript.
	typescript: a server written in TypeScript.
	typescript-eslint: a server written in TypeScript with ESLint configured.`,
		Example: `
# Create a project interactively.

    $ create-serenity

# Create a TypeScript project using pnpm without asking questions.

    $ create-serenity --name my-server --channel latest --type typescript \
        --package-manager pnpm --non-interactive

# Create a project in /opt/servers using answers from a file. ` +
			`Command line answers take precedence.

    $ create-serenity --answers-file answers.yaml --name beta-server --dst /opt/servers`,
		Args:    cobra.NoArgs,
		Version: version.GetVersion(false, false),
		Run: func(cmd *cobra.Command, args []string) {
			err := opts.run()
			util.HandleCmdErr(cmd, err)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&opts.cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&opts.cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.cmdCtx.Cli.Quiet, "quiet", "q",
		false, "Hide commands output unless a command fails")

	opts.bindFlags(rootCmd)

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := NewCmdRoot().Execute(); err != nil {
		log.Fatal(err.Error())
	}
}
