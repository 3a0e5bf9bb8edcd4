package core

import (
	"context"
	"fmt"
	"time"

	"github.com/nmentz/FAERS-Correlation-Analysis/internal/logging"
)

// Series pairs a tracker with the label its output table carries.
type Series struct {
	Label   string
	Tracker *Tracker
}

// Builder runs the per-quarter pipeline and assembles output tables.
type Builder struct {
	// Delimiter separates fields in the data files. Zero means DefaultDelimiter.
	Delimiter rune
}

// NewBuilder returns a builder using the given field delimiter.
func NewBuilder(delim rune) *Builder {
	return &Builder{Delimiter: delim}
}

func (b *Builder) delimiter() rune {
	if b.Delimiter == 0 {
		return DefaultDelimiter
	}
	return b.Delimiter
}

// ProcessQuarter validates, loads, merges and counts one quarter directory.
// It does not touch any tracker; the returned counts cover exactly names.
func (b *Builder) ProcessQuarter(ctx context.Context, dir string, names []string) (QuarterResult, error) {
	logger := logging.WithFields(ctx, "quarter", dir)
	start := time.Now()

	files, err := ValidateQuarter(dir)
	if err != nil {
		return QuarterResult{}, err
	}

	tables, err := LoadFileSet(files, b.delimiter())
	if err != nil {
		return QuarterResult{}, err
	}

	report, err := ReportTable(tables)
	if err != nil {
		return QuarterResult{}, err
	}

	counts, err := CountQuarter(report, names)
	if err != nil {
		return QuarterResult{}, err
	}

	logger.Info("quarter processed",
		"drug_rows", tables[CategoryDrug].Len(),
		"reaction_rows", tables[CategoryReaction].Len(),
		"merged_rows", report.Len(),
		"duration", time.Since(start),
	)

	return QuarterResult{
		Dir:        dir,
		Files:      files,
		MergedRows: report.Len(),
		Counts:     counts,
	}, nil
}

// BuildTable processes every quarter in dirs, in order, adds the counts to
// tracker, and returns the flattened table.
//
// Quarters run sequentially and the first failure aborts the run. Counts are
// only added to the tracker once every quarter has succeeded, so a failed run
// leaves the tracker as it was.
func (b *Builder) BuildTable(ctx context.Context, label string, tracker *Tracker, dirs []string) (OutputTable, error) {
	tables, err := b.BuildTables(ctx, dirs, Series{Label: label, Tracker: tracker})
	if err != nil {
		return OutputTable{}, err
	}
	return tables[0], nil
}

// BuildTables is BuildTable for several trackers at once. Each quarter is
// loaded a single time and counted against the union of all tracked names.
// Tables are returned in series order. A tracker passed in more than one
// series is folded once, so every table built from it agrees.
func (b *Builder) BuildTables(ctx context.Context, dirs []string, series ...Series) ([]OutputTable, error) {
	logger := logging.FromContext(ctx)

	names := unionNames(series)
	results := make([]QuarterResult, 0, len(dirs))

	for i, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before quarter %s: %w", dir, err)
		}

		logger.Debug("processing quarter", "index", i+1, "of", len(dirs), "quarter", dir)
		res, err := b.ProcessQuarter(ctx, dir, names)
		if err != nil {
			return nil, fmt.Errorf("quarter %s: %w", dir, err)
		}
		results = append(results, res)
	}

	seen := make(map[*Tracker]bool, len(series))
	for _, s := range series {
		if seen[s.Tracker] {
			continue
		}
		seen[s.Tracker] = true
		for _, res := range results {
			s.Tracker.Accumulate(res.Counts)
		}
	}

	out := make([]OutputTable, len(series))
	for i, s := range series {
		out[i] = s.Tracker.Table(s.Label)
	}

	logger.Info("run complete", "quarters", len(results), "tracked_drugs", len(names))
	return out, nil
}

// unionNames returns every tracked name across series, first-seen order.
func unionNames(series []Series) []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range series {
		for _, n := range s.Tracker.Names() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}
