package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func reportFixture(drugs ...string) *Table {
	rows := make([][]string, len(drugs))
	for i, d := range drugs {
		rows[i] = []string{"1", "1", d, ""}
	}
	return NewTable("DRUG+REAC", ReportColumns, rows)
}

func TestCountQuarter(t *testing.T) {
	merged := reportFixture("SKYRIZI", "SKYRIZI", "Skyrizi", "SKYRIZI ", "RINVOQ", "ASPIRIN")

	got, err := CountQuarter(merged, []string{"SKYRIZI", "RINVOQ", "WEGOVY"})
	if err != nil {
		t.Fatalf("CountQuarter() error = %v", err)
	}
	want := QuarterCounts{"SKYRIZI": 2, "RINVOQ": 1, "WEGOVY": 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountQuarter() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountQuarter_MissingDrugName(t *testing.T) {
	table := NewTable("X", []string{"primaryid"}, [][]string{{"1"}})
	if _, err := CountQuarter(table, []string{"A"}); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("error = %v, want ErrMissingColumn", err)
	}
}

func TestCountReports_AddsWithoutReset(t *testing.T) {
	tr := NewTracker()
	tr.Track("X", 10)
	tr.Track("Q", 5)
	merged := reportFixture("X", "X", "Y")

	if err := CountReports(merged, tr); err != nil {
		t.Fatalf("CountReports() error = %v", err)
	}
	if err := CountReports(merged, tr); err != nil {
		t.Fatalf("CountReports() error = %v", err)
	}

	want := []OutputRow{
		{DrugName: "X", Reports: 4, Budget: 10},
		{DrugName: "Q", Reports: 0, Budget: 5},
	}
	if diff := cmp.Diff(want, tr.Table("t").Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if _, ok := tr.Get("Y"); ok {
		t.Error("untracked drug Y was added")
	}
}
