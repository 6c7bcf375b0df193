package render

import (
	"fmt"
	"strings"
	"time"

	"table-compare/core/compare"
)

// sampleLimit caps how many unmatched rows are quoted in the document.
const sampleLimit = 5

// Markdown renders a comparison report as a Markdown document. The report is
// read-only input; all classification work happened in the engine.
func Markdown(r *compare.Report) string {
	var md []string

	md = append(md,
		"# File Comparison Report",
		"*Header-less table analysis; columns are referenced by position.*",
		"",
		fmt.Sprintf("**Run ID:** `%s`", r.Metadata.RunID),
		fmt.Sprintf("**Compared at:** %s", r.Metadata.StartedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("**Duration:** %s", r.Metadata.Duration.Round(10*time.Millisecond)),
	)
	if cols := r.Metadata.Config.ExcludeColumns; len(cols) > 0 {
		md = append(md, fmt.Sprintf("**Columns excluded from analysis (0-based):** `%s`", joinInts(cols)))
	}
	md = append(md, "")

	md = appendFileInfo(md, r)
	md = appendSummary(md, r)
	md = appendColumnAnalysis(md, r)
	md = appendTypeAnalysis(md, r)
	md = appendRowAnalysis(md, r)
	md = appendContentComparison(md, r)

	md = append(md, "---", "*Report generated automatically by table-compare.*", "")
	return strings.Join(md, "\n")
}

func appendFileInfo(md []string, r *compare.Report) []string {
	md = append(md,
		"## Analyzed Files",
		"",
		"| File | Path | Size | Encoding |",
		"|------|------|------|----------|",
	)
	for i, f := range []compare.FileInfo{r.Metadata.File1, r.Metadata.File2} {
		md = append(md, fmt.Sprintf("| File %d | `%s` | %.1f KB | %s |",
			i+1, f.Path, float64(f.SizeBytes)/1024, f.Encoding))
	}
	return append(md, "")
}

func appendSummary(md []string, r *compare.Report) []string {
	colStatus := "same count"
	if !r.Structure.Columns.SameCount {
		colStatus = "different counts"
	}

	typeStatus := "not compared"
	typeDiffs := 0
	if r.Structure.Types != nil {
		typeStatus = "identical"
		if !r.Structure.Types.Identical {
			typeStatus = "different"
		}
		typeDiffs = len(r.Structure.Types.Differences)
	}

	rowStatus := "same count"
	if !r.Rows.SameCount {
		rowStatus = "different counts"
	}

	md = append(md,
		"## Executive Summary",
		"",
		"| Aspect | Status | Details |",
		"|--------|--------|---------|",
		fmt.Sprintf("| Column count (after exclusion) | %s | %d vs %d |",
			colStatus, r.Structure.Columns.Count1, r.Structure.Columns.Count2),
		fmt.Sprintf("| Column types | %s | %d differences |", typeStatus, typeDiffs),
		fmt.Sprintf("| Row count | %s | %d vs %d |", rowStatus, r.Rows.Rows1, r.Rows.Rows2),
	)
	return append(md, "")
}

func appendColumnAnalysis(md []string, r *compare.Report) []string {
	c := r.Structure.Columns
	md = append(md,
		"## Column Analysis (After Exclusion)",
		"",
		"| File | Count | Positions |",
		"|------|-------|-----------|",
		fmt.Sprintf("| File 1 | %d | %s |", c.Count1, positionList(c.Count1)),
		fmt.Sprintf("| File 2 | %d | %s |", c.Count2, positionList(c.Count2)),
		"",
	)

	if !c.SameCount {
		md = append(md,
			"### Column Differences",
			"",
			fmt.Sprintf("**Count difference:** %d column(s)", c.CountDiff),
		)
		if len(c.Only1) > 0 {
			md = append(md, fmt.Sprintf("**Positions only in File 1:** %s", joinInts(c.Only1)))
		}
		if len(c.Only2) > 0 {
			md = append(md, fmt.Sprintf("**Positions only in File 2:** %s", joinInts(c.Only2)))
		}
		md = append(md, "")
	}
	return md
}

func appendTypeAnalysis(md []string, r *compare.Report) []string {
	md = append(md, "## Column Type Analysis", "")

	t := r.Structure.Types
	if t == nil {
		return append(md, "**Not compared:** column counts differ.", "")
	}
	if t.Identical {
		return append(md, "All inferred column types are identical.", "")
	}

	md = append(md,
		"**Column type differences found:**",
		"",
		"| Position | File 1 | File 2 |",
		"|----------|--------|--------|",
	)
	for _, d := range t.Differences {
		md = append(md, fmt.Sprintf("| Column %d | %s | %s |", d.Position, d.Type1, d.Type2))
	}
	return append(md, "")
}

func appendRowAnalysis(md []string, r *compare.Report) []string {
	s := r.Statistics
	md = append(md,
		"## Row Analysis",
		"",
		"| Metric | File 1 | File 2 | Difference |",
		"|--------|--------|--------|------------|",
		fmt.Sprintf("| Row count | %d | %d | %d |", r.Rows.Rows1, r.Rows.Rows2, r.Rows.Diff),
		"",
		"### Duplication Analysis",
		"",
		"| File | Total Rows | Distinct Rows | Duplicate % |",
		"|------|------------|---------------|-------------|",
		fmt.Sprintf("| File 1 | %d | %d | %.1f%% |", r.Rows.Rows1, s.Distinct1, s.DuplicatePct1),
		fmt.Sprintf("| File 2 | %d | %d | %.1f%% |", r.Rows.Rows2, s.Distinct2, s.DuplicatePct2),
	)
	return append(md, "")
}

func appendContentComparison(md []string, r *compare.Report) []string {
	rc := &r.RowComparison
	if !rc.Performed {
		return append(md, "**Detailed content comparison was not performed.**", "")
	}

	s := r.Statistics
	notFound1 := len(rc.NotFound) + len(rc.ExclusiveFile1)
	notFound2 := r.Rows.Rows2 - s.Matched2

	md = append(md,
		"## Detailed Content Comparison",
		"",
		fmt.Sprintf("**Overall similarity:** %.1f%%", s.Similarity),
		"",
		"| Occurrence | Count | Percent (of file total) |",
		"|------------|-------|-------------------------|",
	)
	if r.Rows.Rows1 > 0 {
		md = append(md,
			fmt.Sprintf("| File 1 rows found in File 2 | %d | %.1f%% |",
				s.Matched1, pct(s.Matched1, r.Rows.Rows1)),
			fmt.Sprintf("| File 1 rows NOT found in File 2 | %d | %.1f%% |",
				notFound1, pct(notFound1, r.Rows.Rows1)),
		)
	}
	if r.Rows.Rows2 > 0 {
		md = append(md,
			fmt.Sprintf("| File 2 rows found in File 1 | %d | %.1f%% |",
				s.Matched2, pct(s.Matched2, r.Rows.Rows2)),
			fmt.Sprintf("| File 2 rows NOT found in File 1 | %d | %.1f%% |",
				notFound2, pct(notFound2, r.Rows.Rows2)),
		)
	}
	md = append(md, "")

	if rc.BudgetExhausted {
		md = append(md,
			fmt.Sprintf("**Search budget exhausted:** %d of %d candidate rows were not searched.",
				len(rc.NotSearched), rc.CandidateCount),
			"")
	}

	md = appendSamples(md, "File 1 Rows Not Found in File 2",
		append(append([]compare.UnmatchedRow{}, rc.NotFound...), rc.ExclusiveFile1...))
	md = appendSamples(md, "File 2 Rows Exclusive to File 2", rc.ExclusiveFile2)
	return md
}

func appendSamples(md []string, title string, rows []compare.UnmatchedRow) []string {
	md = append(md, fmt.Sprintf("### %s", title), "")
	if len(rows) == 0 {
		return append(md, "*No rows of this kind were found.*", "")
	}
	for i, row := range rows {
		if i == sampleLimit {
			md = append(md, fmt.Sprintf("*... and %d more rows.*", len(rows)-sampleLimit))
			break
		}
		md = append(md,
			fmt.Sprintf("**Original row %d:**", row.Position),
			fmt.Sprintf("```\n%s\n```", row.Content),
		)
	}
	return append(md, "")
}

func pct(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

func positionList(n int) string {
	if n == 0 {
		return "none"
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("Col%d", i)
	}
	return strings.Join(parts, ", ")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
