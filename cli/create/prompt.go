package create

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/serenityjs/create-serenity/cli/create/answers"
	"github.com/serenityjs/create-serenity/cli/util"
)

// Prompter asks a user for the answers that are not set yet.
type Prompter interface {
	Collect(preset answers.Answers) (answers.Answers, error)
}

// choice is a select menu item.
type choice[T ~string] struct {
	Label string
	Value T
}

var (
	versionChoices = []choice[answers.Version]{
		{color.RGB(0xa2, 0x4d, 0xe8).Sprint("Latest"), answers.VersionLatest},
		{color.RGB(0xe8, 0x95, 0x4d).Sprint("Beta 🚧"), answers.VersionBeta},
	}
	typeChoices = []choice[answers.ProjectType]{
		{color.RGB(0xe8, 0xd4, 0x4d).Sprint("Javascript"), answers.TypeJavascript},
		{color.RGB(0x2f, 0x74, 0xc0).Sprint("Typescript"), answers.TypeTypescript},
		{fmt.Sprintf("%s %s %s", color.RGB(0x2f, 0x74, 0xc0).Sprint("Typescript"),
			color.HiBlackString("+"), color.RGB(0x7c, 0x7c, 0xea).Sprint("ESLint")),
			answers.TypeTypescriptEslint},
	}
	packageManagerChoices = []choice[answers.PackageManager]{
		{color.RGB(0xdc, 0x2d, 0x35).Sprint("npm"), answers.PackageManagerNpm},
		{color.RGB(0x2b, 0x8a, 0xb5).Sprint("yarn"), answers.PackageManagerYarn},
		{color.RGB(0xf2, 0xa7, 0x01).Sprint("pnpm"), answers.PackageManagerPnpm},
	}
)

// consolePrompter asks questions in a terminal.
type consolePrompter struct{}

// NewConsolePrompter creates a terminal prompter.
func NewConsolePrompter() Prompter {
	return consolePrompter{}
}

// Collect asks for every empty field of preset.
func (consolePrompter) Collect(preset answers.Answers) (answers.Answers, error) {
	result := preset
	var err error

	if result.Name == "" {
		namePrompt := promptui.Prompt{
			Label:    "What would you like to name your project?",
			Validate: answers.ValidateName,
		}
		if result.Name, err = namePrompt.Run(); err != nil {
			return result, promptError(err)
		}
	}
	if result.Version == "" {
		if result.Version, err = selectOne("What branch of SerenityJS would you like to use?",
			versionChoices); err != nil {
			return result, err
		}
	}
	if result.Type == "" {
		if result.Type, err = selectOne("What project format would you like to scaffold?",
			typeChoices); err != nil {
			return result, err
		}
	}
	if result.PackageManager == "" {
		if result.PackageManager, err = selectOne(
			"Which package manager would you like to use?",
			packageManagerChoices); err != nil {
			return result, err
		}
	}

	return result, nil
}

// selectOne shows a menu and returns the value of the selected item.
func selectOne[T ~string](label string, choices []choice[T]) (T, error) {
	labels := make([]string, 0, len(choices))
	for _, c := range choices {
		labels = append(labels, c.Label)
	}
	menu := promptui.Select{
		Label: label,
		Items: labels,
	}
	index, _, err := menu.Run()
	if err != nil {
		return "", promptError(err)
	}
	return choices[index].Value, nil
}

// promptError converts interruption into command abort.
func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return util.ErrCmdAbort
	}
	return fmt.Errorf("failed to get user input: %w", err)
}
