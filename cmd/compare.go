package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"table-compare/core/compare"
	"table-compare/core/config"
	"table-compare/core/logger"
	"table-compare/core/render"
)

var (
	// Flags for the compare command
	compareDelimiter   string
	compareExclude     []int
	compareBudget      int
	compareWorkers     int
	comparePunctuation bool
	compareOutput      string
	compareReportFile  string
	compareUnmatched   bool
)

// compareCmd runs a full comparison of two delimited files.
var compareCmd = &cobra.Command{
	Use:   "compare FILE1 FILE2",
	Short: "Compare two header-less delimited files",
	Long: `Compare two header-less delimited files by content.

Rows are matched by content digest regardless of position, so reordered rows
still count as found. Rows beyond the shorter file are exclusive; candidates
beyond the search budget are reported as not searched.

Examples:
  # Compare with defaults from the environment
  table-compare compare sap/adrc.txt bq/adrc.txt

  # Semicolon delimiter, drop columns 0 and 5, cap the search at 10k rows
  table-compare compare a.csv b.csv --delimiter ";" --exclude 0,5 --budget 10000

  # Skip the unmatched-rows artifact
  table-compare compare a.csv b.csv --unmatched=false`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareDelimiter, "delimiter", "", "Field delimiter (may be multi-character; overrides configuration)")
	compareCmd.Flags().IntSliceVar(&compareExclude, "exclude", nil, "0-based column indices to exclude from both files")
	compareCmd.Flags().IntVar(&compareBudget, "budget", -1, "Search budget: maximum candidate rows examined (overrides configuration)")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", 0, "Worker count for the search phase (overrides configuration)")
	compareCmd.Flags().BoolVar(&comparePunctuation, "punctuation", true, "Standardize punctuation and special characters before hashing")
	compareCmd.Flags().StringVar(&compareOutput, "output", "", "Output directory for report artifacts (overrides configuration)")
	compareCmd.Flags().StringVar(&compareReportFile, "report-file", "", "Report file name (defaults to <prefix>_<timestamp>.md)")
	compareCmd.Flags().BoolVar(&compareUnmatched, "unmatched", true, "Write the companion artifact listing unmatched rows")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	// Whole-run cancellation: Ctrl+C aborts with no partial report.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	runCfg := cfg.Compare
	runCfg.ExcludeColumns = compareExclude
	if cmd.Flags().Changed("delimiter") {
		runCfg.Delimiter = compareDelimiter
	}
	if cmd.Flags().Changed("budget") {
		runCfg.SearchBudget = compareBudget
	}
	if cmd.Flags().Changed("workers") {
		runCfg.Workers = compareWorkers
	}
	if cmd.Flags().Changed("punctuation") {
		runCfg.NormalizePunctuation = comparePunctuation
	}

	outputFolder := cfg.Report.OutputFolder
	if compareOutput != "" {
		outputFolder = compareOutput
	}

	warnLargeFile(l, args[0], cfg.Report.MaxFileSizeMB)
	warnLargeFile(l, args[1], cfg.Report.MaxFileSizeMB)

	l.Info("Starting comparison",
		zap.String("file1", args[0]),
		zap.String("file2", args[1]),
		zap.String("delimiter", runCfg.Delimiter),
		zap.Ints("exclude_columns", runCfg.ExcludeColumns),
		zap.Int("search_budget", runCfg.SearchBudget),
		zap.Int("workers", runCfg.Workers),
	)

	report, err := compare.Run(ctx, args[0], args[1], runCfg, l)
	if err != nil {
		return err
	}

	printSummary(l, report)

	if err := os.MkdirAll(outputFolder, 0o755); err != nil {
		return fmt.Errorf("creating output folder %s: %w", outputFolder, err)
	}

	prefix := filePrefix(args[0])
	timestamp := report.Metadata.StartedAt.Format("20060102_150405")

	reportName := compareReportFile
	if reportName == "" {
		reportName = fmt.Sprintf("%s_%s.md", prefix, timestamp)
	}
	reportPath := filepath.Join(outputFolder, reportName)
	if err := os.WriteFile(reportPath, []byte(render.Markdown(report)), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", reportPath, err)
	}
	l.Info("Report saved", zap.String("path", reportPath))

	if compareUnmatched && report.RowComparison.Performed {
		unmatchedPath := filepath.Join(outputFolder, fmt.Sprintf("%s_unmatched_%s.txt", prefix, timestamp))
		written, err := render.WriteUnmatched(report, unmatchedPath)
		if err != nil {
			return err
		}
		if written > 0 {
			l.Info("Unmatched rows saved", zap.String("path", unmatchedPath), zap.Int("rows", written))
		}
	}

	return nil
}

// printSummary logs the comparison outcome the way the report renders it.
func printSummary(l *zap.Logger, report *compare.Report) {
	s := report.Statistics

	l.Info("Structure",
		zap.Int("columns_file1", report.Structure.Columns.Count1),
		zap.Int("columns_file2", report.Structure.Columns.Count2),
		zap.Bool("same_column_count", report.Structure.Columns.SameCount),
		zap.Int("rows_file1", report.Rows.Rows1),
		zap.Int("rows_file2", report.Rows.Rows2),
		zap.Int("distinct_file1", s.Distinct1),
		zap.Int("distinct_file2", s.Distinct2),
	)

	rc := &report.RowComparison
	if !rc.Performed {
		l.Warn("Detailed content comparison not performed: column counts differ")
		return
	}

	l.Info("Content",
		zap.Int("found_file1_in_file2", s.Matched1),
		zap.Int("not_found", len(rc.NotFound)),
		zap.Int("not_searched", len(rc.NotSearched)),
		zap.Int("exclusive_file1", len(rc.ExclusiveFile1)),
		zap.Int("exclusive_file2", len(rc.ExclusiveFile2)),
		zap.Float64("similarity_pct", s.Similarity),
	)

	if rc.BudgetExhausted {
		l.Warn("Search budget exhausted",
			zap.Int("searched", rc.Searched),
			zap.Int("candidates", rc.CandidateCount),
		)
	}
}

// warnLargeFile logs a warning for inputs above the configured threshold.
// Loading proceeds regardless; the budget caps the expensive search phase.
func warnLargeFile(l *zap.Logger, path string, maxMB int) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	sizeMB := float64(info.Size()) / (1024 * 1024)
	if maxMB > 0 && sizeMB > float64(maxMB) {
		l.Warn("Large file detected, processing may take a while",
			zap.String("path", path),
			zap.Float64("size_mb", sizeMB),
		)
	}
}

// filePrefix extracts the first underscore-separated term of a file's base
// name, used to name report artifacts.
func filePrefix(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "_"); i > 0 {
		return base[:i]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
