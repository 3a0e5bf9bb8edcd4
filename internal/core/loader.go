package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// LoadTable reads one FAERS data file into a Table. The first record is the
// header. Column types are not checked; every cell stays a string.
func LoadTable(path string, delim rune) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	start := time.Now()
	counter := wrapForLoading(file)
	t, err := readTable(counter, filepath.Base(path), delim)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}

	slog.Debug("table loaded",
		"file", t.Name,
		"columns", len(t.Columns),
		"rows", t.Len(),
		"bytes", counter.BytesRead,
		"duration", time.Since(start),
	)
	return t, nil
}

// readTable parses delimited records from r.
func readTable(r io.Reader, name string, delim rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ValidationError{Field: name, Message: "empty file", Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := cleanHeader(header)
	if len(columns) == 0 {
		return nil, &ValidationError{Field: name, Message: "empty header row", Err: ErrEmptyFile}
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if isEmptyRow(record) {
			continue
		}
		rows = append(rows, record)
	}

	return NewTable(name, columns, rows), nil
}

// isEmptyRow returns true if every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if CleanCell(cell) != "" {
			return false
		}
	}
	return true
}

// LoadFileSet loads the file for every required category.
func LoadFileSet(files FileSet, delim rune) (Tables, error) {
	tables := make(Tables, len(files))
	for _, cat := range RequiredCategories {
		path, ok := files[cat]
		if !ok {
			continue
		}
		t, err := LoadTable(path, delim)
		if err != nil {
			return nil, fmt.Errorf("%s table: %w", cat.Description(), err)
		}
		tables[cat] = t
	}

	if len(tables) == 0 {
		return nil, ErrEmptyResult
	}
	return tables, nil
}
