// Package actions runs the ordered steps of a scaffolding plan.
package actions

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/serenityjs/create-serenity/cli/create/answers"
	"github.com/serenityjs/create-serenity/cli/create/internal/command"
)

// Action is a single step of a plan. The set of actions is closed:
// Copy, Run and TryRun.
type Action interface {
	// Describe returns a short human readable action description.
	Describe() string
	isAction()
}

// Copy materializes a template tree into the destination directory.
type Copy struct {
	// Template is a template file tree.
	Template fs.FS
	// Destination is a project directory. It must not exist.
	Destination string
}

// Describe implements Action.
func (c Copy) Describe() string { return "copy template to " + c.Destination }

func (Copy) isAction() {}

// Run executes a command. Its failure stops the plan.
type Run struct {
	Command command.Source
}

// Describe implements Action.
func (r Run) Describe() string { return "run " + describeCommand(r.Command) }

func (Run) isAction() {}

// TryRun executes a command. Its failure is reported as a warning.
type TryRun struct {
	Command command.Source
	// OnError is a warning text used instead of the error message.
	OnError string
}

// Describe implements Action.
func (t TryRun) Describe() string { return "try to run " + describeCommand(t.Command) }

func (TryRun) isAction() {}

func describeCommand(src command.Source) string {
	if literal, ok := src.(command.Literal); ok {
		return fmt.Sprintf("%q", string(literal))
	}
	return "computed command"
}

// Copier materializes template trees.
type Copier interface {
	Copy(src fs.FS, destDir string, vars map[string]string) error
}

// CommandRunner executes command sources.
type CommandRunner interface {
	Run(ctx context.Context, src command.Source, a answers.Answers,
		cwd string) (string, error)
}

// Result is an outcome of a single action.
type Result struct {
	Action Action
	// Command is an executed command line, empty for Copy.
	Command string
	// Succeeded is true if the action completed.
	Succeeded bool
	// Err is the failure cause.
	Err error
	// Warning is set for a failed TryRun.
	Warning string
}

// Results is an outcome of a plan.
type Results struct {
	// All contains results of executed actions in order.
	All []Result
	// Failures contains fatal failures. At most one, the last executed action.
	Failures []Result
	// Warnings contains messages of failed TryRun actions.
	Warnings []string
}

// Failed returns true if the plan stopped on a failure.
func (r Results) Failed() bool {
	return len(r.Failures) > 0
}

// Err returns the failure cause or nil.
func (r Results) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return r.Failures[0].Err
}

// Merge returns r followed by other.
func (r Results) Merge(other Results) Results {
	return Results{
		All:      append(slices.Clip(r.All), other.All...),
		Failures: append(slices.Clip(r.Failures), other.Failures...),
		Warnings: append(slices.Clip(r.Warnings), other.Warnings...),
	}
}

var (
	successColor = color.New(color.FgHiBlack)
	warningColor = color.RGB(0xfc, 0xa1, 0x03)
	failureColor = color.New(color.FgRed)
)

// Pipeline executes actions one by one.
type Pipeline struct {
	Copier Copier
	Runner CommandRunner
	// WorkDir is a directory for commands. Commands run in the process working
	// directory while it does not exist.
	WorkDir string
	// Out receives action narration. color.Output is used if nil.
	Out io.Writer
}

func (p *Pipeline) out() io.Writer {
	if p.Out == nil {
		return color.Output
	}
	return p.Out
}

// Run executes steps in order. The first failed Copy or Run action stops
// execution. A failed TryRun adds a warning and execution continues.
func (p *Pipeline) Run(ctx context.Context, steps []Action, a answers.Answers) Results {
	var results Results
	for _, step := range steps {
		log.Debugf("Executing: %s", step.Describe())
		result := p.execute(ctx, step, a)
		results.All = append(results.All, result)

		switch {
		case result.Succeeded:
			if result.Command != "" {
				successColor.Fprintf(p.out(), "🚀 %s\n", result.Command)
			}
		case result.Warning != "":
			results.Warnings = append(results.Warnings, result.Warning)
			warningColor.Fprintf(p.out(), "⚠️ %s\n", result.Warning)
		default:
			results.Failures = append(results.Failures, result)
			failureColor.Fprintln(p.out(), result.Err.Error())
			return results
		}
	}
	return results
}

func (p *Pipeline) execute(ctx context.Context, step Action, a answers.Answers) Result {
	result := Result{Action: step}
	switch step := step.(type) {
	case Copy:
		result.Err = p.Copier.Copy(step.Template, step.Destination, a.Vars())
	case Run:
		result.Command, result.Err = p.Runner.Run(ctx, step.Command, a, p.WorkDir)
	case TryRun:
		result.Command, result.Err = p.Runner.Run(ctx, step.Command, a, p.WorkDir)
		if result.Err != nil {
			result.Warning = step.OnError
			if result.Warning == "" {
				result.Warning = result.Err.Error()
			}
		}
	default:
		result.Err = fmt.Errorf("unsupported action type %T", step)
	}
	result.Succeeded = result.Err == nil
	return result
}

