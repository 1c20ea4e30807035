// Package main provides the CLI entrypoint for textkit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textkit/internal/calc"
	"textkit/internal/cipher"
	"textkit/internal/config"
	"textkit/internal/model"
	"textkit/internal/render"
	"textkit/internal/seq"
	"textkit/internal/store"
	"textkit/internal/textops"
	"textkit/internal/workbench"
)

const (
	defaultTool         = model.ToolCapitalize
	defaultShift        = 3
	defaultHistoryLimit = 10
	defaultSaveHistory  = true
)

var (
	workbenchTool         string
	workbenchShift        int
	workbenchHistoryLimit int
	workbenchSaveHistory  bool

	caesarShift  int
	caesarDecode bool

	historyTool   string
	historySince  string
	historyLast   int
	historyClear  bool
	historyCounts bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "textkit",
		Short:         "Terminal text and number workbench",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runWorkbenchCmd,
	}

	rootCmd.Flags().StringVar(&workbenchTool, "tool", defaultTool, "initial tool")
	rootCmd.Flags().IntVar(&workbenchShift, "shift", defaultShift, "default caesar shift")
	rootCmd.Flags().IntVar(&workbenchHistoryLimit, "history-limit", defaultHistoryLimit, "history entries shown in the carousel")
	rootCmd.Flags().BoolVar(&workbenchSaveHistory, "save-history", defaultSaveHistory, "record operations to the history database")

	rootCmd.AddCommand(newCaesarCmd())
	rootCmd.AddCommand(newCapitalizeCmd())
	rootCmd.AddCommand(newReverseCmd())
	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runWorkbenchCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "tool", &workbenchTool, fileCfg.Workbench.Tool)
	applyIntConfig(cmd, "shift", &workbenchShift, fileCfg.Workbench.Shift)
	applyIntConfig(cmd, "history-limit", &workbenchHistoryLimit, fileCfg.Workbench.HistoryLimit)
	applyBoolConfig(cmd, "save-history", &workbenchSaveHistory, fileCfg.Workbench.SaveHistory)

	cfg := model.Config{
		Tool:         workbenchTool,
		Shift:        workbenchShift,
		HistoryLimit: workbenchHistoryLimit,
		SaveHistory:  workbenchSaveHistory,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	wb := workbench.NewModel(cfg, st)
	program := tea.NewProgram(wb, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCaesarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar [text...]",
		Short: "Apply the Caesar cipher",
		RunE:  runCaesarCmd,
	}
	cmd.Flags().IntVar(&caesarShift, "shift", defaultShift, "shift factor (any integer)")
	cmd.Flags().BoolVar(&caesarDecode, "decode", false, "reverse the shift")
	return cmd
}

func runCaesarCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "shift", &caesarShift, fileCfg.Workbench.Shift)

	text, err := textArg(cmd, args)
	if err != nil {
		return err
	}
	started := time.Now()
	var out string
	if caesarDecode {
		out = cipher.Decode(text, caesarShift)
	} else {
		out = cipher.Encode(text, caesarShift)
	}
	recordOperation(fileCfg, model.Operation{
		CreatedAt:  started.UTC(),
		Tool:       model.ToolCaesar,
		Input:      text,
		Shift:      caesarShift,
		Output:     out,
		DurationUs: time.Since(started).Microseconds(),
	})
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newCapitalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize [text...]",
		Short: "Upper-case the first character",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTextCmd(cmd, args, model.ToolCapitalize, textops.Capitalize)
		},
	}
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text...]",
		Short: "Reverse character order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTextCmd(cmd, args, model.ToolReverse, textops.Reverse)
		},
	}
}

func runTextCmd(cmd *cobra.Command, args []string, tool string, op func(string) string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	text, err := textArg(cmd, args)
	if err != nil {
		return err
	}
	started := time.Now()
	out := op(text)
	recordOperation(fileCfg, model.Operation{
		CreatedAt:  started.UTC(),
		Tool:       tool,
		Input:      text,
		Output:     out,
		DurationUs: time.Since(started).Microseconds(),
	})
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <add|sub|mul|div> <a> <b>",
		Short: "Basic arithmetic",
		Args:  cobra.ExactArgs(3),
		RunE:  runCalcCmd,
	}
}

func runCalcCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ops := map[string]func(a, b float64) (float64, error){
		"add": calc.Add,
		"sub": calc.Subtract,
		"mul": calc.Multiply,
		"div": calc.Divide,
	}
	op, ok := ops[args[0]]
	if !ok {
		return fmt.Errorf("unknown operation %q (use add, sub, mul, or div)", args[0])
	}
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[1])
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[2])
	}
	started := time.Now()
	result, err := op(a, b)
	if err != nil {
		return err
	}
	out := strconv.FormatFloat(result, 'g', -1, 64)
	recordOperation(fileCfg, model.Operation{
		CreatedAt:  started.UTC(),
		Tool:       model.ToolCalc,
		Input:      strings.Join(args, " "),
		Output:     out,
		DurationUs: time.Since(started).Microseconds(),
	})
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <numbers...>",
		Short: "Summarize a numeric sequence",
		RunE:  runAnalyzeCmd,
	}
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSuffix(arg, ","), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", arg)
		}
		values = append(values, v)
	}
	started := time.Now()
	summary := seq.Analyze(values)
	recordOperation(fileCfg, model.Operation{
		CreatedAt:  started.UTC(),
		Tool:       model.ToolAnalyze,
		Input:      strings.Join(args, " "),
		Output:     summaryLine(summary),
		DurationUs: time.Since(started).Microseconds(),
	})
	return render.Summary(cmd.OutOrStdout(), summary)
}

func summaryLine(s seq.Summary) string {
	format := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(*v, 'g', -1, 64)
	}
	return fmt.Sprintf("average=%s min=%s max=%s length=%d",
		format(s.Average), format(s.Min), format(s.Max), s.Length)
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded operations",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyTool, "tool", "", "tool filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N operations")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded operations")
	cmd.Flags().BoolVar(&historyCounts, "counts", false, "show per-tool counts instead of entries")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyTool != "" && !model.KnownTool(historyTool) {
		return fmt.Errorf("unknown tool %q (available: %s)", historyTool, strings.Join(model.Tools, ", "))
	}
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	if historyClear {
		if err := st.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return err
	}
	if historyCounts {
		counts, err := st.CountByTool(ctx)
		if err != nil {
			return fmt.Errorf("failed to count operations: %w", err)
		}
		return render.ToolCounts(cmd.OutOrStdout(), counts)
	}

	ops, err := st.ListOperations(ctx, model.HistoryFilter{
		Tool:  historyTool,
		Since: sinceTime,
		Last:  historyLast,
	})
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}
	return render.History(cmd.OutOrStdout(), ops, render.TerminalWidth())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// textArg joins positional args, or reads stdin when none were given.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// recordOperation best-effort appends to the history database; CLI
// output is never blocked by a persistence failure.
func recordOperation(fileCfg config.FileConfig, op model.Operation) {
	save := defaultSaveHistory
	if fileCfg.Workbench.SaveHistory != nil {
		save = *fileCfg.Workbench.SaveHistory
	}
	if !save {
		return
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if _, err := st.InsertOperation(context.Background(), op); err != nil {
		logErrf("failed to save history: %v\n", err)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# textkit configuration
# Uncomment a value to enable it. CLI flags override config values.

[workbench]
# tool = %q            # Initial tool (%s)
# shift = %d                    # Default caesar shift
# history-limit = %d           # History entries shown in the carousel
# save-history = true          # Record operations to the history database
`,
		defaultTool,
		strings.Join(model.Tools, ", "),
		defaultShift,
		defaultHistoryLimit,
	)
}

func validateConfig(cfg model.Config) error {
	if !model.KnownTool(cfg.Tool) {
		return fmt.Errorf("--tool must be one of: %s", strings.Join(model.Tools, ", "))
	}
	if cfg.HistoryLimit <= 0 {
		return fmt.Errorf("--history-limit must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
