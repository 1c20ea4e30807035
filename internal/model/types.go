// Package model defines shared data structures.
package model

import "time"

// Tool names used for recorded operations and the workbench sidebar.
const (
	ToolCapitalize = "capitalize"
	ToolReverse    = "reverse"
	ToolCalc       = "calc"
	ToolCaesar     = "caesar"
	ToolAnalyze    = "analyze"
)

// Tools lists every tool in sidebar order.
var Tools = []string{ToolCapitalize, ToolReverse, ToolCalc, ToolCaesar, ToolAnalyze}

// KnownTool reports whether name is one of the tool constants.
func KnownTool(name string) bool {
	for _, tool := range Tools {
		if tool == name {
			return true
		}
	}
	return false
}

// Config defines workbench settings.
type Config struct {
	Tool         string
	Shift        int
	HistoryLimit int
	SaveHistory  bool
}

// Operation records a completed invocation of a tool.
type Operation struct {
	ID         int64
	CreatedAt  time.Time
	Tool       string
	Input      string
	Shift      int
	Output     string
	DurationUs int64
}

// HistoryFilter defines filters for history queries.
type HistoryFilter struct {
	Tool  string
	Since *time.Time
	Last  int
}
