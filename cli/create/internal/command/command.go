// Package command resolves, renders and executes shell commands of a scaffolding plan.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/serenityjs/create-serenity/cli/create/answers"
	"github.com/serenityjs/create-serenity/cli/templates"
	"github.com/serenityjs/create-serenity/cli/util"
)

// ErrMissingCommand is returned if a command source yields no command.
var ErrMissingCommand = errors.New("command is missing")

// Source produces a command line for the answers.
type Source interface {
	resolve(answers.Answers) string
}

// Literal is a fixed command line.
type Literal string

func (l Literal) resolve(answers.Answers) string {
	return string(l)
}

// Computed builds a command line from the answers.
type Computed func(answers.Answers) string

func (c Computed) resolve(a answers.Answers) string {
	if c == nil {
		return ""
	}
	return c(a)
}

// Resolve returns the command line of src. Placeholders are not rendered.
func Resolve(src Source, a answers.Answers) string {
	if src == nil {
		return ""
	}
	return src.resolve(a)
}

// ExecutionError describes a command that could not be rendered or exited
// unsuccessfully.
type ExecutionError struct {
	// Command is the command line, rendered if rendering succeeded.
	Command string
	// Err is the cause.
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %q failed: %s", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Runner executes command sources through the platform shell.
type Runner struct {
	// Engine renders placeholders of a command line.
	Engine templates.TemplateEngine
	// ShowOutput makes commands share the standard streams of the process.
	// Otherwise a spinner is shown and the output is printed only on failure.
	ShowOutput bool
}

// NewRunner creates a runner with the default template engine.
func NewRunner(showOutput bool) *Runner {
	return &Runner{Engine: templates.NewDefaultEngine(), ShowOutput: showOutput}
}

// Render resolves src and renders its placeholders against the answers.
func (r *Runner) Render(src Source, a answers.Answers) (string, error) {
	commandLine := Resolve(src, a)
	if strings.TrimSpace(commandLine) == "" {
		return "", ErrMissingCommand
	}
	rendered, err := r.Engine.RenderText(commandLine, a.Vars())
	if err != nil {
		return "", &ExecutionError{Command: commandLine, Err: err}
	}
	return rendered, nil
}

// Run renders src and executes it in cwd. If cwd is not an existing directory
// the command runs in the working directory of the process. Returns the
// executed command line.
func (r *Runner) Run(ctx context.Context, src Source, a answers.Answers,
	cwd string) (string, error) {
	commandLine, err := r.Render(src, a)
	if err != nil {
		return "", err
	}

	workingDir := ""
	if cwd != "" && util.IsDir(cwd) {
		workingDir = cwd
	}
	log.Debugf("Running %q in %q", commandLine, workingDir)

	if err = util.RunCommand(util.ShellCommand(ctx, commandLine), workingDir,
		r.ShowOutput); err != nil {
		return commandLine, &ExecutionError{Command: commandLine, Err: err}
	}
	return commandLine, nil
}
