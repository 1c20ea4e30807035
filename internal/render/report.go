package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"textkit/internal/model"
	"textkit/internal/seq"
)

const terminalWidthBackup = 80

// Summary prints the analyzer result as an aligned table.
// Nil fields (empty sequence) render as "-".
func Summary(w io.Writer, s seq.Summary) error {
	headers := []string{"Average", "Min", "Max", "Length"}
	row := []string{
		formatOptional(s.Average),
		formatOptional(s.Min),
		formatOptional(s.Max),
		strconv.Itoa(s.Length),
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, [][]string{row}, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// History prints recorded operations as an aligned table, truncating
// input and output cells to fit the available width.
func History(w io.Writer, ops []model.Operation, totalWidth int) error {
	if len(ops) == 0 {
		_, err := fmt.Fprintln(w, "No operations recorded.")
		return err
	}
	if totalWidth <= 0 {
		totalWidth = terminalWidthBackup
	}
	// Time, tool, and duration columns take ~40 cells; split the rest
	// between input and output.
	textWidth := (totalWidth - 40) / 2
	if textWidth < 8 {
		textWidth = 8
	}
	headers := []string{"Time", "Tool", "Input", "Output", "Duration (us)"}
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{
			op.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			op.Tool,
			truncateCell(op.Input, textWidth),
			truncateCell(op.Output, textWidth),
			strconv.FormatInt(op.DurationUs, 10),
		})
	}
	rightAlign := map[int]bool{4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ToolCounts prints per-tool operation counts in sidebar order.
func ToolCounts(w io.Writer, counts map[string]int) error {
	rows := make([][]string, 0, len(model.Tools))
	for _, tool := range model.Tools {
		rows = append(rows, []string{tool, strconv.Itoa(counts[tool])})
	}
	rightAlign := map[int]bool{1: true}
	for _, line := range formatTable([]string{"Tool", "Count"}, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth reports the current terminal width, falling back to a
// fixed default when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
