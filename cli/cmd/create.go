package cmd

import (
	"fmt"
	"strings"

	"github.com/apex/log/handlers/cli"
	"github.com/serenityjs/create-serenity/cli/cmdcontext"
	"github.com/serenityjs/create-serenity/cli/configure"
	"github.com/serenityjs/create-serenity/cli/create"
	"github.com/serenityjs/create-serenity/cli/create/answers"
	create_ctx "github.com/serenityjs/create-serenity/cli/create/context"
	"github.com/serenityjs/create-serenity/cli/cslog"
	"github.com/serenityjs/create-serenity/cli/util"
	"github.com/spf13/cobra"
)

// createOpts contains the values of command line options.
type createOpts struct {
	cmdCtx cmdcontext.CmdCtx

	name           string
	channel        string
	projectType    string
	packageManager string
	answersFile    string
	dstPath        string
	nonInteractive bool
	skipInstall    bool
	skipGit        bool
}

// bindFlags binds create options to the command flags.
func (opts *createOpts) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.name, "name", "n", "", "Project name")
	flags.StringVar(&opts.channel, "channel", "",
		fmt.Sprintf("SerenityJS release channel: %s", enumList(answers.Versions)))
	flags.StringVarP(&opts.projectType, "type", "t", "",
		fmt.Sprintf("Project type: %s", enumList(answers.ProjectTypes)))
	flags.StringVarP(&opts.packageManager, "package-manager", "p", "",
		fmt.Sprintf("Package manager: %s", enumList(answers.PackageManagers)))
	flags.StringVar(&opts.answersFile, "answers-file", "", "Answers file path")
	flags.StringVarP(&opts.dstPath, "dst", "d", "",
		"Path to the directory where a project will be created")
	flags.BoolVarP(&opts.nonInteractive, "non-interactive", "s", false,
		"Non-interactive mode")
	flags.BoolVar(&opts.skipInstall, "skip-install", false, "Do not install dependencies")
	flags.BoolVar(&opts.skipGit, "skip-git", false, "Do not initialize a git repository")

	cmd.RegisterFlagCompletionFunc("channel", enumCompletion(answers.Versions))
	cmd.RegisterFlagCompletionFunc("type", enumCompletion(answers.ProjectTypes))
	cmd.RegisterFlagCompletionFunc("package-manager", enumCompletion(answers.PackageManagers))
}

func enumStrings[T ~string](values []T) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, string(value))
	}
	return result
}

func enumList[T ~string](values []T) string {
	return strings.Join(enumStrings(values), " | ")
}

// enumCompletion returns a completion function for a flag with fixed values.
func enumCompletion[T ~string](values []T) func(*cobra.Command, []string, string) (
	[]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return enumStrings(values), cobra.ShellCompDirectiveNoFileComp
	}
}

// newCreateCtx converts command line options to create context.
func (opts *createOpts) newCreateCtx() (create_ctx.CreateCtx, error) {
	createCtx := create_ctx.CreateCtx{
		Answers:        answers.Answers{Name: opts.name},
		AnswersFile:    opts.answersFile,
		DestinationDir: opts.dstPath,
		NonInteractive: opts.nonInteractive,
		Quiet:          opts.cmdCtx.Cli.Quiet,
		Verbose:        opts.cmdCtx.Cli.Verbose,
		SkipInstall:    opts.skipInstall,
		SkipGit:        opts.skipGit,
	}

	var err error
	if opts.channel != "" {
		if createCtx.Answers.Version, err = answers.ParseVersion(opts.channel); err != nil {
			return createCtx, util.NewArgError(err.Error())
		}
	}
	if opts.projectType != "" {
		if createCtx.Answers.Type, err = answers.ParseProjectType(opts.projectType); err != nil {
			return createCtx, util.NewArgError(err.Error())
		}
	}
	if opts.packageManager != "" {
		if createCtx.Answers.PackageManager, err = answers.ParsePackageManager(
			opts.packageManager); err != nil {
			return createCtx, util.NewArgError(err.Error())
		}
	}

	return createCtx, nil
}

// run configures create-serenity and creates a project.
func (opts *createOpts) run() error {
	createCtx, err := opts.newCreateCtx()
	if err != nil {
		return err
	}

	if err := configure.Cli(&opts.cmdCtx); err != nil {
		return fmt.Errorf("failed to configure create-serenity: %s", err)
	}
	cliOpts, _, err := configure.GetCliOpts(opts.cmdCtx.Cli.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to get create-serenity configuration: %s", err)
	}

	logger, err := cslog.SetupHandler(cli.Default, cslog.LoggerOpts{
		Filename:   cliOpts.Log.File,
		MaxSize:    cliOpts.Log.MaxSize,
		MaxBackups: cliOpts.Log.MaxBackups,
		MaxAge:     cliOpts.Log.MaxAge,
	})
	if err != nil {
		return err
	}
	if logger != nil {
		defer logger.Close()
	}

	if err := create.FillCtx(cliOpts, &createCtx); err != nil {
		return err
	}

	return create.Run(&createCtx)
}
