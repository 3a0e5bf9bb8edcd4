package core

import (
	"fmt"
	"strings"
)

// Table is a loaded delimited file: named columns and string rows.
// Every row has exactly len(Columns) cells.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string

	index HeaderIndex
}

// NewTable builds a table from a header and rows. Rows are padded or
// truncated to the header width.
func NewTable(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		Columns: columns,
		Rows:    make([][]string, 0, len(rows)),
		index:   MakeHeaderIndex(columns),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, fitRow(r, len(columns)))
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[strings.ToLower(name)]
	return ok
}

// Column returns the position of the named column (case-insensitive).
func (t *Table) Column(name string) (int, error) {
	pos, ok := t.index[strings.ToLower(name)]
	if !ok {
		return -1, &ValidationError{
			Field:   name,
			Message: fmt.Sprintf("missing column %q in %s", name, t.Name),
			Err:     ErrMissingColumn,
		}
	}
	return pos, nil
}

// Select returns a new table holding only the named columns, in the order given.
func (t *Table) Select(names ...string) (*Table, error) {
	positions := make([]int, len(names))
	for i, n := range names {
		pos, err := t.Column(n)
		if err != nil {
			return nil, err
		}
		positions[i] = pos
	}

	columns := make([]string, len(names))
	for i, pos := range positions {
		columns[i] = t.Columns[pos]
	}

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		out := make([]string, len(positions))
		for i, pos := range positions {
			out[i] = row[pos]
		}
		rows[r] = out
	}

	return &Table{
		Name:    t.Name,
		Columns: columns,
		Rows:    rows,
		index:   MakeHeaderIndex(columns),
	}, nil
}

// Values returns every cell of the named column in row order.
func (t *Table) Values(name string) ([]string, error) {
	pos, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[pos]
	}
	return out, nil
}
