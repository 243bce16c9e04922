package create

import (
	"strings"

	"github.com/serenityjs/create-serenity/cli/config"
	"github.com/serenityjs/create-serenity/cli/configure"
	"github.com/serenityjs/create-serenity/cli/create/answers"
	create_ctx "github.com/serenityjs/create-serenity/cli/create/context"
	"github.com/serenityjs/create-serenity/cli/create/internal/actions"
	"github.com/serenityjs/create-serenity/cli/create/internal/command"
	"github.com/serenityjs/create-serenity/cli/create/internal/project_template"
)

const (
	startScript = "start.sh"

	chmodWarning = "Failed to chmod start.sh. You will need to run " +
		"`chmod +x ./start.sh` manually so the file is executable."
)

// phase is a group of actions executed in the same stage.
type phase struct {
	stage   Stage
	actions []actions.Action
}

// installCommand returns a command adding the dependencies with the selected
// package manager. Versioned dependencies use the selected release channel.
func installCommand(deps *config.DependenciesOpts) command.Source {
	return command.Computed(func(a answers.Answers) string {
		if deps == nil || len(deps.Versioned)+len(deps.Latest) == 0 {
			return ""
		}
		parts := []string{"{{packageManager}} add"}
		for _, dep := range deps.Versioned {
			parts = append(parts, dep+"@{{version}}")
		}
		for _, dep := range deps.Latest {
			parts = append(parts, dep+"@latest")
		}
		return strings.Join(parts, " ")
	})
}

// quoteArg quotes a command line argument for the platform shell.
func quoteArg(arg string, shellPlatform bool) string {
	if shellPlatform {
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// buildPlan returns the actions creating a project from the template.
func buildPlan(createCtx *create_ctx.CreateCtx, descriptor *project_template.Descriptor,
	shellPlatform bool) []phase {
	plan := []phase{{
		stage: StageCopying,
		actions: []actions.Action{actions.Copy{
			Template:    descriptor.Source,
			Destination: descriptor.DestDir,
		}},
	}}

	if !createCtx.SkipInstall {
		plan = append(plan, phase{
			stage: StageInstalling,
			actions: []actions.Action{
				actions.Run{Command: installCommand(createCtx.CliOpts.Dependencies)},
			},
		})
	}

	if shellPlatform {
		plan[len(plan)-1].actions = append(plan[len(plan)-1].actions, actions.TryRun{
			Command: command.Literal("chmod +x ./" + startScript),
			OnError: chmodWarning,
		})
	}

	if !createCtx.SkipGit {
		commitMessage := configure.DefaultCommitMessage
		if createCtx.CliOpts.Git != nil && createCtx.CliOpts.Git.CommitMessage != "" {
			commitMessage = createCtx.CliOpts.Git.CommitMessage
		}
		plan = append(plan, phase{
			stage: StageVersionControlling,
			actions: []actions.Action{
				actions.Run{Command: command.Literal("git init .")},
				actions.Run{Command: command.Literal("git add .")},
				actions.Run{Command: command.Literal("git commit -m " +
					quoteArg(commitMessage, shellPlatform))},
			},
		})
	}

	return plan
}

// recommendedBinaries returns programs used by the plan.
func recommendedBinaries(createCtx *create_ctx.CreateCtx, a answers.Answers) []string {
	var binaries []string
	if !createCtx.SkipInstall {
		binaries = append(binaries, string(a.PackageManager))
	}
	if !createCtx.SkipGit {
		binaries = append(binaries, "git")
	}
	return binaries
}
