package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildTable_SingleQuarter(t *testing.T) {
	// DRUG has (1,1,X) and (2,2,Y); REAC only references case 1.
	dir := writeQuarter(t, "24Q1",
		drugFixture("1,1,X", "2,2,Y"),
		reacFixture("1,1,Rash"),
	)

	tr := NewTracker()
	tr.Track("X", 10.0)

	table, err := NewBuilder(DefaultDelimiter).BuildTable(context.Background(), "brand", tr, []string{dir})
	if err != nil {
		t.Fatalf("BuildTable() error = %v", err)
	}

	want := OutputTable{Label: "brand", Rows: []OutputRow{{DrugName: "X", Reports: 1, Budget: 10.0}}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("BuildTable() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := tr.Get("Y"); ok {
		t.Error("untracked drug Y appeared in the tracker")
	}
}

func TestBuildTable_AcrossQuarters(t *testing.T) {
	q1 := writeQuarter(t, "24Q1",
		drugFixture("1,1,SKYRIZI", "2,2,RINVOQ"),
		reacFixture("1,1,Rash", "1,1,Fatigue", "2,2,Nausea"),
	)
	q2 := writeQuarter(t, "24Q2",
		drugFixture("5,5,SKYRIZI"),
		reacFixture("5,5,Headache"),
	)

	tr := NewTracker()
	tr.Track("SKYRIZI", 376.7)
	tr.Track("RINVOQ", 337.8)
	tr.Track("VRAYLAR", 117.7)

	table, err := NewBuilder(0).BuildTable(context.Background(), "brand", tr, []string{q1, q2})
	if err != nil {
		t.Fatalf("BuildTable() error = %v", err)
	}

	want := []OutputRow{
		{DrugName: "SKYRIZI", Reports: 3, Budget: 376.7},
		{DrugName: "RINVOQ", Reports: 1, Budget: 337.8},
		{DrugName: "VRAYLAR", Reports: 0, Budget: 117.7},
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable_QuarterOrderDoesNotMatter(t *testing.T) {
	q1 := writeQuarter(t, "24Q1", drugFixture("1,1,A", "2,2,B"), reacFixture("1,1,R", "2,2,R"))
	q2 := writeQuarter(t, "24Q2", drugFixture("3,3,A"), reacFixture("3,3,R", "3,3,S"))

	run := func(dirs ...string) []OutputRow {
		tr := NewTracker()
		tr.Track("A", 1)
		tr.Track("B", 2)
		table, err := NewBuilder(DefaultDelimiter).BuildTable(context.Background(), "t", tr, dirs)
		if err != nil {
			t.Fatalf("BuildTable() error = %v", err)
		}
		return table.Rows
	}

	if diff := cmp.Diff(run(q1, q2), run(q2, q1)); diff != "" {
		t.Errorf("quarter order changed totals:\n%s", diff)
	}
}

func TestBuildTable_FailureLeavesTrackerUnchanged(t *testing.T) {
	good := writeQuarter(t, "24Q1", drugFixture("1,1,A"), reacFixture("1,1,R"))
	bad := writeQuarter(t, "24Q2", drugFixture("1,1,A"), reacFixture("1,1,R"))
	if err := os.Remove(filepath.Join(bad, "THER24Q2.txt")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	tr := NewTracker()
	tr.Track("A", 1)

	_, err := NewBuilder(DefaultDelimiter).BuildTable(context.Background(), "t", tr, []string{good, bad})
	if !errors.Is(err, ErrMissingRequiredFile) {
		t.Fatalf("error = %v, want ErrMissingRequiredFile", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q does not name the failing quarter", err)
	}
	if d, _ := tr.Get("A"); d.Reports != 0 {
		t.Errorf("Reports = %d after failed run, want 0", d.Reports)
	}
}

func TestBuildTable_MissingDirectory(t *testing.T) {
	tr := NewTracker()
	tr.Track("A", 1)

	_, err := NewBuilder(DefaultDelimiter).BuildTable(context.Background(), "t", tr, []string{filepath.Join(t.TempDir(), "gone")})
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("error = %v, want ErrDirectoryNotFound", err)
	}
	if MapError(err).Code != "DIR001" {
		t.Errorf("code = %q, want DIR001", MapError(err).Code)
	}
}

func TestBuildTable_Cancelled(t *testing.T) {
	dir := writeQuarter(t, "24Q1", drugFixture("1,1,A"), reacFixture("1,1,R"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewTracker()
	tr.Track("A", 1)
	_, err := NewBuilder(DefaultDelimiter).BuildTable(ctx, "t", tr, []string{dir})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestBuildTables_SharedQuarterLoad(t *testing.T) {
	dir := writeQuarter(t, "24Q1",
		drugFixture("1,1,SKYRIZI", "1,1,RISANKIZUMAB-RZAA", "2,2,SEMAGLUTIDE", "3,3,WEGOVY"),
		reacFixture("1,1,Rash", "2,2,Nausea", "3,3,Nausea"),
	)

	brand := NewTracker()
	brand.Track("SKYRIZI", 376.7)
	brand.Track("WEGOVY", 261.1)

	generic := NewTracker()
	generic.Track("RISANKIZUMAB-RZAA", 376.7)
	generic.Track("SEMAGLUTIDE", 261.1)
	generic.Track("SEMAGLUTIDE", 124.4)

	tables, err := NewBuilder(DefaultDelimiter).BuildTables(context.Background(), []string{dir},
		Series{Label: "Brand-name Drugs", Tracker: brand},
		Series{Label: "Generic Drugs", Tracker: generic},
	)
	if err != nil {
		t.Fatalf("BuildTables() error = %v", err)
	}

	want := []OutputTable{
		{Label: "Brand-name Drugs", Rows: []OutputRow{
			{DrugName: "SKYRIZI", Reports: 1, Budget: 376.7},
			{DrugName: "WEGOVY", Reports: 1, Budget: 261.1},
		}},
		{Label: "Generic Drugs", Rows: []OutputRow{
			{DrugName: "RISANKIZUMAB-RZAA", Reports: 1, Budget: 376.7},
			{DrugName: "SEMAGLUTIDE", Reports: 1, Budget: 124.4},
		}},
	}
	if diff := cmp.Diff(want, tables); diff != "" {
		t.Errorf("BuildTables() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessQuarter(t *testing.T) {
	dir := writeQuarter(t, "24Q4", drugFixture("1,1,A", "2,2,B"), reacFixture("1,1,R", "2,2,R", "2,2,S"))

	res, err := NewBuilder(DefaultDelimiter).ProcessQuarter(context.Background(), dir, []string{"B", "C"})
	if err != nil {
		t.Fatalf("ProcessQuarter() error = %v", err)
	}
	if res.MergedRows != 3 {
		t.Errorf("MergedRows = %d, want 3", res.MergedRows)
	}
	if diff := cmp.Diff(QuarterCounts{"B": 2, "C": 0}, res.Counts); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
	if len(res.Files) != len(RequiredCategories) {
		t.Errorf("len(Files) = %d, want %d", len(res.Files), len(RequiredCategories))
	}
}

func TestBuildTable_NoQuarters(t *testing.T) {
	tr := NewTracker()
	tr.Track("A", 1)

	table, err := NewBuilder(DefaultDelimiter).BuildTable(context.Background(), "t", tr, nil)
	if err != nil {
		t.Fatalf("BuildTable() error = %v", err)
	}
	if diff := cmp.Diff([]OutputRow{{DrugName: "A", Budget: 1}}, table.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTables_SharedTracker(t *testing.T) {
	dir := writeQuarter(t, "24Q1", drugFixture("1,1,A"), reacFixture("1,1,R"))

	tr := NewTracker()
	tr.Track("A", 1)

	tables, err := NewBuilder(DefaultDelimiter).BuildTables(context.Background(), []string{dir},
		Series{Label: "first", Tracker: tr},
		Series{Label: "second", Tracker: tr},
	)
	if err != nil {
		t.Fatalf("BuildTables() error = %v", err)
	}

	want := []OutputTable{
		{Label: "first", Rows: []OutputRow{{DrugName: "A", Reports: 1, Budget: 1}}},
		{Label: "second", Rows: []OutputRow{{DrugName: "A", Reports: 1, Budget: 1}}},
	}
	if diff := cmp.Diff(want, tables); diff != "" {
		t.Errorf("BuildTables() mismatch (-want +got):\n%s", diff)
	}
}
