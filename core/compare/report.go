package compare

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"table-compare/core/table"
)

// FileInfo describes one of the two compared files as it was loaded.
type FileInfo struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	Encoding  string `json:"encoding"`
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
}

// ConfigEcho is the configuration echo embedded in every report.
type ConfigEcho struct {
	Delimiter            string   `json:"delimiter"`
	ExcludeColumns       []int    `json:"exclude_columns,omitempty"`
	SearchBudget         int      `json:"search_budget"`
	NormalizePunctuation bool     `json:"punctuation"`
	Workers              int      `json:"workers"`
	Encodings            []string `json:"encodings"`
}

// Metadata is the report's metadata block.
type Metadata struct {
	// RunID uniquely identifies this comparison run.
	RunID string `json:"run_id"`

	File1 FileInfo `json:"file1"`
	File2 FileInfo `json:"file2"`

	Config ConfigEcho `json:"config"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// RowCounts is the row-count section of the report.
type RowCounts struct {
	Rows1     int  `json:"file1"`
	Rows2     int  `json:"file2"`
	SameCount bool `json:"same_count"`
	Diff      int  `json:"diff"`
}

// Report is the complete, immutable result of one comparison run. It is the
// sole interface handed to rendering collaborators; no rendering logic lives
// in this package.
type Report struct {
	Metadata      Metadata      `json:"metadata"`
	Structure     Structure     `json:"structure"`
	Rows          RowCounts     `json:"rows"`
	RowComparison RowComparison `json:"row_comparison"`
	Statistics    Statistics    `json:"statistics"`
}

// Run executes the full comparison pipeline for two files and assembles the
// report: load, normalize, structural comparison, indexing, row
// reconciliation and statistics. Each stage returns its own value; nothing
// is shared mutably across stages.
//
// Fatal conditions (unreadable file, no usable encoding, cancellation) abort
// before any report is produced. A column count mismatch is not fatal: the
// run completes with RowComparison.Performed set to false.
func Run(ctx context.Context, file1, file2 string, cfg Config, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	encodings := cfg.Encodings
	if len(encodings) == 0 {
		encodings = table.DefaultEncodings
	}

	opts := table.LoadOptions{
		Delimiter:      cfg.Delimiter,
		Encodings:      encodings,
		ExcludeColumns: cfg.ExcludeColumns,
	}

	t1, err := table.Load(file1, opts)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded file 1",
		zap.String("file", t1.Path),
		zap.String("encoding", t1.Encoding),
		zap.Int("rows", t1.Len()),
		zap.Int("columns", t1.Columns),
	)

	t2, err := table.Load(file2, opts)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded file 2",
		zap.String("file", t2.Path),
		zap.String("encoding", t2.Encoding),
		zap.Int("rows", t2.Len()),
		zap.Int("columns", t2.Columns),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table.Normalize(t1, cfg.NormalizePunctuation)
	table.Normalize(t2, cfg.NormalizePunctuation)

	structure := CompareStructure(t1, t2)

	index1 := BuildIndex(t1, progressLogger(log, "Indexing file 1"))
	index2 := BuildIndex(t2, progressLogger(log, "Indexing file 2"))

	rc := RowComparison{}
	if structure.Columns.SameCount {
		result, err := Reconcile(ctx, t1, t2, index2, cfg, progressLogger(log, "Searching by content"))
		if err != nil {
			return nil, err
		}
		rc = *result
	} else {
		log.Warn("Column counts differ, skipping detailed row comparison",
			zap.Int("columns_file1", t1.Columns),
			zap.Int("columns_file2", t2.Columns),
		)
	}

	stats := Aggregate(t1.Len(), t2.Len(), index1, index2, &rc)

	report := &Report{
		Metadata: Metadata{
			RunID: uuid.NewString(),
			File1: fileInfo(t1),
			File2: fileInfo(t2),
			Config: ConfigEcho{
				Delimiter:            cfg.Delimiter,
				ExcludeColumns:       table.NormalizeExcluded(cfg.ExcludeColumns),
				SearchBudget:         cfg.SearchBudget,
				NormalizePunctuation: cfg.NormalizePunctuation,
				Workers:              cfg.Workers,
				Encodings:            opts.Encodings,
			},
			StartedAt: start,
			Duration:  time.Since(start),
		},
		Structure: structure,
		Rows: RowCounts{
			Rows1:     t1.Len(),
			Rows2:     t2.Len(),
			SameCount: t1.Len() == t2.Len(),
			Diff:      abs(t1.Len() - t2.Len()),
		},
		RowComparison: rc,
		Statistics:    stats,
	}

	log.Info("Comparison finished",
		zap.String("run_id", report.Metadata.RunID),
		zap.Duration("duration", report.Metadata.Duration),
		zap.Float64("similarity_pct", stats.Similarity),
	)

	return report, nil
}

func fileInfo(t *table.Table) FileInfo {
	return FileInfo{
		Path:      t.Path,
		Name:      filepath.Base(t.Path),
		SizeBytes: t.SizeBytes,
		Encoding:  t.Encoding,
		Rows:      t.Len(),
		Columns:   t.Columns,
	}
}

// progressLogger adapts advisory progress callbacks to debug-level logging.
func progressLogger(log *zap.Logger, stage string) ProgressFunc {
	return func(done, total int) {
		log.Debug(stage,
			zap.Int("done", done),
			zap.Int("total", total),
		)
	}
}
