// Package export writes output tables to a Parquet file for downstream
// analysis (DuckDB, Spark).
package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/nmentz/FAERS-Correlation-Analysis/internal/core"
)

// ReportRow is the Parquet schema: one row per (series, drug).
type ReportRow struct {
	RunID    string  `parquet:"run_id"`
	Series   string  `parquet:"series"`
	Position int32   `parquet:"position"`
	DrugName string  `parquet:"drug_name"`
	Reports  int64   `parquet:"reports"`
	Budget   float64 `parquet:"budget"`
}

// Rows flattens tables into Parquet rows, keeping tracker order within each
// series.
func Rows(runID string, tables []core.OutputTable) []ReportRow {
	var rows []ReportRow
	for _, t := range tables {
		for i, r := range t.Rows {
			rows = append(rows, ReportRow{
				RunID:    runID,
				Series:   t.Label,
				Position: int32(i),
				DrugName: r.DrugName,
				Reports:  int64(r.Reports),
				Budget:   r.Budget,
			})
		}
	}
	return rows
}

// ReportParquetWriter writes report rows to a Parquet file.
type ReportParquetWriter struct {
	file   *os.File
	writer *parquet.GenericWriter[ReportRow]
	count  int
}

// NewReportParquetWriter creates a Snappy-compressed Parquet writer at path.
func NewReportParquetWriter(path string) (*ReportParquetWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report parquet: %w", err)
	}
	writer := parquet.NewGenericWriter[ReportRow](file,
		parquet.Compression(&parquet.Snappy),
	)
	return &ReportParquetWriter{file: file, writer: writer}, nil
}

// Write writes a batch of rows.
func (w *ReportParquetWriter) Write(rows []ReportRow) error {
	n, err := w.writer.Write(rows)
	w.count += n
	if err != nil {
		return fmt.Errorf("write report rows: %w", err)
	}
	return nil
}

// Close flushes and closes the writer.
func (w *ReportParquetWriter) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close report writer: %w", err)
	}
	return w.file.Close()
}

// Count returns the number of rows written.
func (w *ReportParquetWriter) Count() int { return w.count }

// WriteTables writes every table to a new Parquet file at path and returns
// the number of rows written.
func WriteTables(path, runID string, tables []core.OutputTable) (int, error) {
	w, err := NewReportParquetWriter(path)
	if err != nil {
		return 0, err
	}
	if err := w.Write(Rows(runID, tables)); err != nil {
		w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return w.Count(), nil
}
