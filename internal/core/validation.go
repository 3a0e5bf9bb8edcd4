package core

// validation.go checks that a quarter directory holds a complete FAERS bundle.
//
// Validation happens in two steps:
//  1. Listing: every .txt file in the directory is collected
//  2. Category check: each required category label must appear in exactly
//     one file name
//
// Errors wrap the sentinel values below so callers can test them with
// errors.Is regardless of the message text.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DataFileExt is the suffix of the ASCII data files in a FAERS bundle.
const DataFileExt = ".txt"

var (
	ErrDirectoryNotFound   = errors.New("directory not found")
	ErrNoFilesFound        = errors.New("no data files found")
	ErrMissingRequiredFile = errors.New("missing required file")
	ErrAmbiguousFile       = errors.New("ambiguous data file")
	ErrMissingColumn       = errors.New("missing column")
	ErrEmptyFile           = errors.New("empty file")
	ErrEmptyResult         = errors.New("no tables were loaded")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// ValidationError describes a problem with a quarter's file set or a table's
// columns. Err is one of the sentinel errors above.
type ValidationError struct {
	Field   string // Category label or column name
	Message string // Human-readable error message
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ListDataFiles returns the paths of all .txt files directly inside dir.
// The suffix match ignores case; subdirectories are skipped.
func ListDataFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading directory %s: %w: %w", dir, ErrDirectoryNotFound, err)
		}
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), DataFileExt) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("no data files found in %s", dir),
			Err:     ErrNoFilesFound,
		}
	}

	return files, nil
}

// ValidateFileSet assigns each required category to the file whose base name
// contains its label. It fails on the first category, in RequiredCategories
// order, that has no file or more than one.
func ValidateFileSet(files []string) (FileSet, error) {
	set := make(FileSet, len(RequiredCategories))

	for _, cat := range RequiredCategories {
		var matches []string
		for _, f := range files {
			if strings.Contains(filepath.Base(f), string(cat)) {
				matches = append(matches, f)
			}
		}

		switch len(matches) {
		case 0:
			return nil, &ValidationError{
				Field:   string(cat),
				Message: fmt.Sprintf("missing required file %s", cat.ExpectedFileName()),
				Err:     ErrMissingRequiredFile,
			}
		case 1:
			set[cat] = matches[0]
		default:
			names := make([]string, len(matches))
			for i, m := range matches {
				names[i] = filepath.Base(m)
			}
			return nil, &ValidationError{
				Field:   string(cat),
				Message: fmt.Sprintf("ambiguous data file, %d candidates: %s", len(matches), strings.Join(names, ", ")),
				Err:     ErrAmbiguousFile,
			}
		}
	}

	return set, nil
}

// ValidateQuarter lists dir and validates its file set.
func ValidateQuarter(dir string) (FileSet, error) {
	files, err := ListDataFiles(dir)
	if err != nil {
		return nil, err
	}
	return ValidateFileSet(files)
}
