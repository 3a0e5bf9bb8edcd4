package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListDataFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "DRUG24Q1.txt"), "x")
	writeFile(t, filepath.Join(dir, "REAC24Q1.TXT"), "x")
	writeFile(t, filepath.Join(dir, "README.doc"), "x")
	writeFile(t, filepath.Join(dir, "notes.txt.bak"), "x")
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := ListDataFiles(dir)
	if err != nil {
		t.Fatalf("ListDataFiles() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "DRUG24Q1.txt"),
		filepath.Join(dir, "REAC24Q1.TXT"),
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("ListDataFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestListDataFiles_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := ListDataFiles(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrDirectoryNotFound) {
			t.Errorf("error = %v, want ErrDirectoryNotFound", err)
		}
	})

	t.Run("no txt files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "faers.xml"), "<x/>")
		_, err := ListDataFiles(dir)
		if !errors.Is(err, ErrNoFilesFound) {
			t.Errorf("error = %v, want ErrNoFilesFound", err)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("error %T is not a *ValidationError", err)
		}
	})
}

func TestValidateFileSet(t *testing.T) {
	files := []string{
		"/q/DEMO24Q1.txt",
		"/q/DRUG24Q1.txt",
		"/q/INDI24Q1.txt",
		"/q/OUTC24Q1.txt",
		"/q/REAC24Q1.txt",
		"/q/RPSR24Q1.txt",
		"/q/THER24Q1.txt",
	}

	set, err := ValidateFileSet(files)
	if err != nil {
		t.Fatalf("ValidateFileSet() error = %v", err)
	}
	if len(set) != len(RequiredCategories) {
		t.Errorf("len(set) = %d, want %d", len(set), len(RequiredCategories))
	}
	if set[CategoryDrug] != "/q/DRUG24Q1.txt" {
		t.Errorf("DRUG file = %q", set[CategoryDrug])
	}
}

func TestValidateFileSet_MissingCategory(t *testing.T) {
	files := []string{
		"/q/DEMO24Q1.txt",
		"/q/DRUG24Q1.txt",
		"/q/INDI24Q1.txt",
		"/q/OUTC24Q1.txt",
		"/q/REAC24Q1.txt",
		"/q/RPSR24Q1.txt",
	}

	_, err := ValidateFileSet(files)
	if !errors.Is(err, ErrMissingRequiredFile) {
		t.Fatalf("error = %v, want ErrMissingRequiredFile", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "THER" {
		t.Errorf("error field = %v, want THER", err)
	}
	if !strings.Contains(err.Error(), "THERxxQx.txt") {
		t.Errorf("error %q does not name the missing file", err)
	}
}

func TestValidateFileSet_MatchesBaseName(t *testing.T) {
	// The directory name contains DRUG but no file does.
	files := []string{
		"/DRUG_exports/DEMO24Q1.txt",
		"/DRUG_exports/INDI24Q1.txt",
		"/DRUG_exports/OUTC24Q1.txt",
		"/DRUG_exports/REAC24Q1.txt",
		"/DRUG_exports/RPSR24Q1.txt",
		"/DRUG_exports/THER24Q1.txt",
	}

	_, err := ValidateFileSet(files)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "DRUG" {
		t.Errorf("error = %v, want missing DRUG", err)
	}
}

func TestValidateFileSet_Ambiguous(t *testing.T) {
	files := []string{
		"/q/DEMO24Q1.txt",
		"/q/DRUG24Q1.txt",
		"/q/DRUG24Q1_copy.txt",
		"/q/INDI24Q1.txt",
		"/q/OUTC24Q1.txt",
		"/q/REAC24Q1.txt",
		"/q/RPSR24Q1.txt",
		"/q/THER24Q1.txt",
	}

	_, err := ValidateFileSet(files)
	if !errors.Is(err, ErrAmbiguousFile) {
		t.Fatalf("error = %v, want ErrAmbiguousFile", err)
	}
	if !strings.Contains(err.Error(), "DRUG24Q1_copy.txt") {
		t.Errorf("error %q does not list the candidates", err)
	}
}

func TestValidateQuarter(t *testing.T) {
	dir := writeQuarter(t, "24Q1", drugFixture("100,10,SKYRIZI"), reacFixture("100,10,Rash"))

	set, err := ValidateQuarter(dir)
	if err != nil {
		t.Fatalf("ValidateQuarter() error = %v", err)
	}
	if got, want := set[CategoryReaction], filepath.Join(dir, "REAC24Q1.txt"); got != want {
		t.Errorf("REAC file = %q, want %q", got, want)
	}

	if err := os.Remove(filepath.Join(dir, "OUTC24Q1.txt")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err = ValidateQuarter(dir)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "OUTC" {
		t.Errorf("error = %v, want missing OUTC", err)
	}
}
