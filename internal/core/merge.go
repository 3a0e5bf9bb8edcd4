package core

import (
	"fmt"
	"strings"
)

// keySep joins multi-column join keys. FAERS cells never contain it.
const keySep = "\x1f"

// SharedColumns returns the column names present in both tables, in left
// table order. Names must match exactly, including case.
func SharedColumns(left, right *Table) []string {
	var shared []string
	for _, c := range left.Columns {
		if exactColumn(right, c) >= 0 {
			shared = append(shared, c)
		}
	}
	return shared
}

// exactColumn returns the position of the column spelled exactly name, or -1.
func exactColumn(t *Table, name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Merge inner-joins left and right on every column they share. For the
// DRUG and REAC tables those are primaryid and caseid.
//
// The result holds one row per matching (left row, right row) pair, in left
// row order and then right row order. Left rows without a match are
// dropped. Key columns appear once; other columns present on both sides get
// _x and _y suffixes.
func Merge(left, right *Table) (*Table, error) {
	keys := SharedColumns(left, right)
	if len(keys) == 0 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("no shared columns to join %s and %s", left.Name, right.Name),
			Err:     ErrMissingColumn,
		}
	}
	return MergeOn(left, right, keys...)
}

// MergeOn inner-joins left and right on the named key columns.
func MergeOn(left, right *Table, keys ...string) (*Table, error) {
	leftKeys, err := positions(left, keys)
	if err != nil {
		return nil, err
	}
	rightKeys, err := positions(right, keys)
	if err != nil {
		return nil, err
	}

	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}

	// Right columns kept after the left ones.
	var rightCols []int
	for i, c := range right.Columns {
		if !isKey[c] {
			rightCols = append(rightCols, i)
		}
	}

	columns := make([]string, 0, len(left.Columns)+len(rightCols))
	for _, c := range left.Columns {
		if !isKey[c] && exactColumn(right, c) >= 0 {
			c += "_x"
		}
		columns = append(columns, c)
	}
	for _, i := range rightCols {
		c := right.Columns[i]
		if exactColumn(left, c) >= 0 {
			c += "_y"
		}
		columns = append(columns, c)
	}

	index := make(map[string][]int, right.Len())
	for i, row := range right.Rows {
		k := joinKey(row, rightKeys)
		index[k] = append(index[k], i)
	}

	var rows [][]string
	for _, lrow := range left.Rows {
		matches := index[joinKey(lrow, leftKeys)]
		for _, ri := range matches {
			rrow := right.Rows[ri]
			out := make([]string, 0, len(columns))
			out = append(out, lrow...)
			for _, i := range rightCols {
				out = append(out, rrow[i])
			}
			rows = append(rows, out)
		}
	}

	return NewTable(left.Name+"+"+right.Name, columns, rows), nil
}

func positions(t *Table, names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, n := range names {
		pos := exactColumn(t, n)
		if pos < 0 {
			return nil, &ValidationError{
				Field:   n,
				Message: fmt.Sprintf("missing join column %q in %s", n, t.Name),
				Err:     ErrMissingColumn,
			}
		}
		out[i] = pos
	}
	return out, nil
}

func joinKey(row []string, cols []int) string {
	if len(cols) == 1 {
		return row[cols[0]]
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = row[c]
	}
	return strings.Join(parts, keySep)
}

// ReportTable merges the DRUG and REAC tables and keeps only the columns
// the counting stage reads. Both sides are projected before the join so
// merged rows carry only ReportColumns.
func ReportTable(tables Tables) (*Table, error) {
	drug, ok := tables[CategoryDrug]
	if !ok {
		return nil, fmt.Errorf("%s table: %w", CategoryDrug.Description(), ErrEmptyResult)
	}
	reac, ok := tables[CategoryReaction]
	if !ok {
		return nil, fmt.Errorf("%s table: %w", CategoryReaction.Description(), ErrEmptyResult)
	}

	drug, err := drug.Select(ColPrimaryID, ColCaseID, ColDrugName)
	if err != nil {
		return nil, err
	}
	reac, err = reac.Select(ColPrimaryID, ColCaseID, ColDrugRecAct)
	if err != nil {
		return nil, err
	}

	merged, err := Merge(drug, reac)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	return merged, nil
}
