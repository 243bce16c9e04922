package create

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/serenityjs/create-serenity/cli/config"
	"github.com/serenityjs/create-serenity/cli/create/answers"
	"github.com/serenityjs/create-serenity/cli/create/builtin_templates"
	create_ctx "github.com/serenityjs/create-serenity/cli/create/context"
	"github.com/serenityjs/create-serenity/cli/create/internal/actions"
	"github.com/serenityjs/create-serenity/cli/create/internal/command"
	"github.com/serenityjs/create-serenity/cli/create/internal/project_template"
	"github.com/serenityjs/create-serenity/cli/create/internal/render"
	"github.com/serenityjs/create-serenity/cli/templates"
	"github.com/serenityjs/create-serenity/cli/util"
	"golang.org/x/term"
)

// environment contains the collaborators of project creation.
type environment struct {
	prompter      Prompter
	runner        actions.CommandRunner
	out           io.Writer
	isTerminal    func() bool
	shellPlatform bool
}

// FillCtx fills create context.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx) error {
	createCtx.CliOpts = cliOpts
	for _, p := range cliOpts.Templates {
		createCtx.TemplateSearchPaths = append(createCtx.TemplateSearchPaths, p.Path)
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	if createCtx.DestinationDir == "" {
		createCtx.DestinationDir = workingDir
	} else if createCtx.DestinationDir, err = util.JoinAbspath(
		createCtx.DestinationDir); err != nil {
		return fmt.Errorf("failed to get destination directory: %s", err)
	}

	return nil
}

// Run creates a project from a template.
func Run(createCtx *create_ctx.CreateCtx) error {
	return run(context.Background(), createCtx, environment{
		prompter:      NewConsolePrompter(),
		runner:        command.NewRunner(!createCtx.Quiet),
		out:           color.Output,
		isTerminal:    func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		shellPlatform: util.IsCurrentShellPlatform(),
	})
}

func run(ctx context.Context, createCtx *create_ctx.CreateCtx, env environment) error {
	var stages stageTracker
	fmt.Fprintln(env.out, welcomeBanner())

	stages.advance(StagePrompting)
	projectAnswers, err := collectAnswers(createCtx, env)
	if err != nil {
		return err
	}

	stages.advance(StageResolving)
	resolver := project_template.Resolver{
		SearchPaths: createCtx.TemplateSearchPaths,
		Builtin:     builtin_templates.TemplatesFs,
	}
	descriptor, err := resolver.Resolve(string(projectAnswers.Type), projectAnswers.Name,
		createCtx.DestinationDir)
	if err != nil {
		stages.advance(StageFailed)
		color.New(color.FgRed).Fprintln(env.out, err.Error())
		printFailure(env.out)
		return util.ErrCmdAbort
	}
	defer descriptor.Close()

	util.CheckRecommendedBinaries(recommendedBinaries(createCtx, projectAnswers)...)

	copier := render.NewCopier()
	copier.Executables = descriptor.Manifest.Executables
	if descriptor.IsManifestPresent {
		copier.Ignore = []string{project_template.DefaultManifestName}
	}
	pipeline := actions.Pipeline{
		Copier:  copier,
		Runner:  env.runner,
		WorkDir: descriptor.DestDir,
		Out:     env.out,
	}

	plan := buildPlan(createCtx, descriptor, env.shellPlatform)
	var results actions.Results
	for i, planPhase := range plan {
		stages.advance(planPhase.stage)
		phaseResults := pipeline.Run(ctx, planPhase.actions, projectAnswers)
		results = results.Merge(phaseResults)
		if phaseResults.Failed() {
			stages.advance(StageFailed)
			printFailure(env.out)
			printResults(env.out, results, skippedActions(plan, i, len(phaseResults.All)))
			return util.ErrCmdAbort
		}
	}

	stages.advance(StageSucceeded)
	fmt.Fprintln(env.out)
	fmt.Fprintln(env.out, successBanner(projectAnswers.Name))
	fmt.Fprintln(env.out)
	if createCtx.Verbose {
		printResults(env.out, results, nil)
	}
	printFollowUpMessage(env.out, descriptor, projectAnswers)

	return nil
}

// collectAnswers merges command line answers with the answers file and asks
// a user for the rest.
func collectAnswers(createCtx *create_ctx.CreateCtx, env environment) (answers.Answers,
	error) {
	preset := createCtx.Answers
	if createCtx.AnswersFile != "" {
		fromFile, err := answers.LoadFile(createCtx.AnswersFile)
		if err != nil {
			return preset, err
		}
		preset = preset.Merge(fromFile)
	}
	if err := preset.ValidateSet(); err != nil {
		return preset, util.NewArgError(err.Error())
	}

	if !preset.IsComplete() {
		if createCtx.NonInteractive {
			return preset, util.NewArgError(fmt.Sprintf(
				"missing answers in non-interactive mode: specify %s",
				strings.Join(missingAnswerFlags(preset), ", ")))
		}
		if !env.isTerminal() {
			return preset, fmt.Errorf("interactive mode requires a terminal: " +
				"provide all answers and use --non-interactive")
		}
		var err error
		if preset, err = env.prompter.Collect(preset); err != nil {
			return preset, err
		}
	}

	if err := preset.Validate(); err != nil {
		return preset, util.NewArgError(err.Error())
	}
	log.Debugf("Answers: %+v", preset)
	return preset, nil
}

// missingAnswerFlags returns the options of the empty answers.
func missingAnswerFlags(a answers.Answers) []string {
	var flags []string
	for _, field := range []struct {
		isSet bool
		flag  string
	}{
		{a.Name != "", "--name"},
		{a.Version != "", "--channel"},
		{a.Type != "", "--type"},
		{a.PackageManager != "", "--package-manager"},
	} {
		if !field.isSet {
			flags = append(flags, field.flag)
		}
	}
	return flags
}

// skippedActions returns the actions that were not executed after a failure
// in the phase with index failedPhase.
func skippedActions(plan []phase, failedPhase, executed int) []actions.Action {
	var skipped []actions.Action
	skipped = append(skipped, plan[failedPhase].actions[executed:]...)
	for _, planPhase := range plan[failedPhase+1:] {
		skipped = append(skipped, planPhase.actions...)
	}
	return skipped
}

func printFailure(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, failureBanner())
	fmt.Fprintln(w)
}

// printFollowUpMessage prints the template follow-up message.
func printFollowUpMessage(w io.Writer, descriptor *project_template.Descriptor,
	a answers.Answers) {
	if !descriptor.IsManifestPresent || descriptor.Manifest.FollowUpMessage == "" {
		return
	}

	followUpText, err := templates.NewDefaultEngine().RenderText(
		descriptor.Manifest.FollowUpMessage, a.Vars())
	if err != nil {
		log.Warnf("Failed to render follow-up message: %s", err)
		return
	}
	followUpText = strings.TrimRight(followUpText, "\n")
	if !color.NoColor {
		followUpText = util.Bold(followUpText)
	}
	fmt.Fprintln(w, followUpText)
}
