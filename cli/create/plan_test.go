package create

import (
	"testing"

	"github.com/serenityjs/create-serenity/cli/config"
	"github.com/serenityjs/create-serenity/cli/configure"
	"github.com/serenityjs/create-serenity/cli/create/answers"
	create_ctx "github.com/serenityjs/create-serenity/cli/create/context"
	"github.com/serenityjs/create-serenity/cli/create/internal/actions"
	"github.com/serenityjs/create-serenity/cli/create/internal/command"
	"github.com/serenityjs/create-serenity/cli/create/internal/project_template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planCommands(t *testing.T, plan []phase) []string {
	t.Helper()
	runner := command.NewRunner(false)
	var commands []string
	for _, planPhase := range plan {
		for _, action := range planPhase.actions {
			switch action := action.(type) {
			case actions.Copy:
				commands = append(commands, "copy "+action.Destination)
			case actions.Run:
				commandLine, err := runner.Render(action.Command, fullAnswers)
				require.NoError(t, err)
				commands = append(commands, commandLine)
			case actions.TryRun:
				commandLine, err := runner.Render(action.Command, fullAnswers)
				require.NoError(t, err)
				commands = append(commands, "try "+commandLine)
			}
		}
	}
	return commands
}

func planStages(plan []phase) []Stage {
	var stages []Stage
	for _, planPhase := range plan {
		stages = append(stages, planPhase.stage)
	}
	return stages
}

func TestBuildPlan(t *testing.T) {
	cliOpts := configure.GetDefaultCliOpts()
	cliOpts.Dependencies = &config.DependenciesOpts{
		Versioned: config.NewSingleOrArray("@serenityjs/core", "@serenityjs/raknet"),
		Latest:    config.NewSingleOrArray("@serenityjs/binarystream"),
	}
	descriptor := &project_template.Descriptor{DestDir: "/work/my-server"}

	tests := []struct {
		name          string
		createCtx     create_ctx.CreateCtx
		shellPlatform bool
		stages        []Stage
		commands      []string
	}{
		{
			name:          "full plan",
			createCtx:     create_ctx.CreateCtx{CliOpts: cliOpts},
			shellPlatform: true,
			stages:        []Stage{StageCopying, StageInstalling, StageVersionControlling},
			commands: []string{
				"copy /work/my-server",
				"pnpm add @serenityjs/core@beta @serenityjs/raknet@beta " +
					"@serenityjs/binarystream@latest",
				"try chmod +x ./start.sh",
				"git init .",
				"git add .",
				"git commit -m 'Initial commit 💜'",
			},
		},
		{
			name:          "non-shell platform",
			createCtx:     create_ctx.CreateCtx{CliOpts: cliOpts},
			shellPlatform: false,
			stages:        []Stage{StageCopying, StageInstalling, StageVersionControlling},
			commands: []string{
				"copy /work/my-server",
				"pnpm add @serenityjs/core@beta @serenityjs/raknet@beta " +
					"@serenityjs/binarystream@latest",
				"git init .",
				"git add .",
				`git commit -m "Initial commit 💜"`,
			},
		},
		{
			name:          "skip install and git",
			createCtx:     create_ctx.CreateCtx{CliOpts: cliOpts, SkipInstall: true, SkipGit: true},
			shellPlatform: true,
			stages:        []Stage{StageCopying},
			commands:      []string{"copy /work/my-server", "try chmod +x ./start.sh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := buildPlan(&tt.createCtx, descriptor, tt.shellPlatform)
			assert.Equal(t, tt.stages, planStages(plan))
			assert.Equal(t, tt.commands, planCommands(t, plan))
		})
	}
}

func TestBuildPlanCommitMessage(t *testing.T) {
	cliOpts := configure.GetDefaultCliOpts()
	cliOpts.Git.CommitMessage = "it's {{ name }}"
	createCtx := create_ctx.CreateCtx{CliOpts: cliOpts, SkipInstall: true}

	plan := buildPlan(&createCtx, &project_template.Descriptor{}, true)
	commands := planCommands(t, plan)
	assert.Equal(t, `git commit -m 'it'\''s my-server'`, commands[len(commands)-1])
}

func TestInstallCommandWithoutDependencies(t *testing.T) {
	src := installCommand(&config.DependenciesOpts{})
	assert.Equal(t, "", command.Resolve(src, fullAnswers))
	assert.Equal(t, "", command.Resolve(installCommand(nil), fullAnswers))
}

func TestRecommendedBinaries(t *testing.T) {
	a := answers.Answers{PackageManager: answers.PackageManagerYarn}
	assert.Equal(t, []string{"yarn", "git"},
		recommendedBinaries(&create_ctx.CreateCtx{}, a))
	assert.Equal(t, []string{"git"},
		recommendedBinaries(&create_ctx.CreateCtx{SkipInstall: true}, a))
	assert.Empty(t, recommendedBinaries(&create_ctx.CreateCtx{SkipInstall: true,
		SkipGit: true}, a))
}
