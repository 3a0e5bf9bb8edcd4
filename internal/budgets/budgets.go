// Package budgets loads the tracked drug lists and their advertising budgets.
//
// A budget file is YAML with one entry per series:
//
//	series:
//	  - label: Brand-name Drugs
//	    color: blue
//	    marker: circle
//	    drugs:
//	      - {name: SKYRIZI, budget: 376.7}
//
// Drugs are a list rather than a mapping so that a repeated name is legal.
// A repeated name replaces the earlier budget; see core.Tracker.Track.
package budgets

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nmentz/FAERS-Correlation-Analysis/internal/core"
)

//go:embed budgets2024.yaml
var defaultBudgets []byte

// Drug is one tracked name with its budget.
type Drug struct {
	Name   string  `yaml:"name"`
	Budget float64 `yaml:"budget"`
}

// Series is one group of tracked drugs plotted together.
type Series struct {
	Label  string `yaml:"label"`
	Color  string `yaml:"color"`
	Marker string `yaml:"marker"` // circle or x

	// LabelColor colors the drug name annotations; defaults to Color.
	LabelColor string `yaml:"label_color"`
	Drugs      []Drug `yaml:"drugs"`
}

// File is the top-level document.
type File struct {
	Series []Series `yaml:"series"`
}

// Default returns the built-in 2024 brand-name and generic tables.
func Default() (*File, error) {
	return Parse(defaultBudgets)
}

// Load reads a budget file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read budgets %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadOrDefault loads path, or the built-in tables when path is empty.
func LoadOrDefault(path string) (*File, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates a budget document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse budgets: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every series has a label and every drug a name.
func (f *File) Validate() error {
	if len(f.Series) == 0 {
		return fmt.Errorf("budgets: no series defined")
	}
	var errs []string
	for i, s := range f.Series {
		if strings.TrimSpace(s.Label) == "" {
			errs = append(errs, fmt.Sprintf("series %d has no label", i+1))
		}
		if len(s.Drugs) == 0 {
			errs = append(errs, fmt.Sprintf("series %q has no drugs", s.Label))
		}
		for j, d := range s.Drugs {
			if d.Name == "" {
				errs = append(errs, fmt.Sprintf("series %q drug %d has no name", s.Label, j+1))
			}
			if d.Budget < 0 {
				errs = append(errs, fmt.Sprintf("series %q drug %s has a negative budget", s.Label, d.Name))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("budgets:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Tracker builds a tracker with every drug at a zero count.
func (s Series) Tracker() *core.Tracker {
	t := core.NewTracker()
	for _, d := range s.Drugs {
		t.Track(d.Name, d.Budget)
	}
	return t
}

// CoreSeries converts every series to a pipeline series with a fresh tracker.
func (f *File) CoreSeries() []core.Series {
	out := make([]core.Series, len(f.Series))
	for i, s := range f.Series {
		out[i] = core.Series{Label: s.Label, Tracker: s.Tracker()}
	}
	return out
}
