package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shivanshs9/wordbench/internal/bench"
)

func newTable(outputWriter io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(outputWriter)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}

	outputTable.Style().Options.DoNotColorBordersAndSeparators = true

	return outputTable
}

// PrintTable prints the benchmark results side by side. Colors are only used
// when terminalWidth is positive.
func PrintTable(w io.Writer, r bench.Result, terminalWidth int) {
	outputTable := newTable(w, terminalWidth)
	outputTable.AppendHeader(table.Row{"Metric", trieName, tableName})
	outputTable.AppendRows([]table.Row{
		{"Total queries", r.Queries, r.Queries},
		{"Words found", r.Trie.Found, r.Table.Found},
		{"Total time (μs)", r.Trie.LookupTotal.Microseconds(), r.Table.LookupTotal.Microseconds()},
		{
			"Avg time per query (μs)",
			fmt.Sprintf("%.3f", r.Trie.AvgLookupMicros(r.Queries)),
			fmt.Sprintf("%.3f", r.Table.AvgLookupMicros(r.Queries)),
		},
		{"Build time (ms)", r.Trie.Build.Milliseconds(), r.Table.Build.Milliseconds()},
		{"Memory (approx.)", r.Trie.Memory.String(), r.Table.Memory.String()},
	})
	outputTable.AppendSeparator()
	outputTable.AppendRow(table.Row{"Winner (lookup)", winnerLine(LookupWinner(r), terminalWidth > 0), ""})
	outputTable.Render()
}

func winnerLine(c Comparison, color bool) string {
	line := fmt.Sprintf("%s is %.2fx faster", c.Winner, c.Ratio)
	if !color {
		return line
	}

	return text.Colors{text.Bold, text.FgGreen}.Sprint(line)
}
