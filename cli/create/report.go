package create

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/serenityjs/create-serenity/cli/create/internal/actions"
)

// resultStatus returns a colored action status.
func resultStatus(result actions.Result) string {
	switch {
	case result.Succeeded:
		return color.GreenString("OK")
	case result.Warning != "":
		return color.YellowString("WARNING")
	default:
		return color.RedString("FAILED")
	}
}

// resultDetails returns an executed command or a failure message.
func resultDetails(result actions.Result) string {
	switch {
	case result.Warning != "":
		return result.Warning
	case result.Err != nil:
		return result.Err.Error()
	case result.Command != "":
		return result.Command
	default:
		return result.Action.Describe()
	}
}

// printResults writes the results as a table. Actions skipped after a failure
// are listed too.
func printResults(w io.Writer, results actions.Results, skipped []actions.Action) {
	ts := table.NewWriter()
	ts.SetOutputMirror(w)
	ts.AppendHeader(table.Row{"#", "ACTION", "STATUS", "DETAILS"})

	for i, result := range results.All {
		ts.AppendRow(table.Row{i + 1, result.Action.Describe(), resultStatus(result),
			resultDetails(result)})
	}
	for i, action := range skipped {
		ts.AppendRow(table.Row{len(results.All) + i + 1, action.Describe(),
			color.HiBlackString("SKIPPED"), ""})
	}

	ts.SetStyle(table.StyleRounded)
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 80},
	})
	ts.Render()
	fmt.Fprintln(w)
}
