package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	wantQuarters := []string{
		"faers_ascii_2024Q1/ASCII",
		"faers_ascii_2024Q2/ASCII",
		"faers_ascii_2024Q3/ASCII",
		"faers_ascii_2024Q4/ASCII",
	}
	if diff := cmp.Diff(wantQuarters, cfg.Input.Quarters); diff != "" {
		t.Errorf("Input.Quarters mismatch (-want +got):\n%s", diff)
	}
	if cfg.Input.Delimiter != "$" {
		t.Errorf("Input.Delimiter = %q, want %q", cfg.Input.Delimiter, "$")
	}
	if cfg.Input.DelimiterRune() != '$' {
		t.Errorf("DelimiterRune() = %q, want %q", cfg.Input.DelimiterRune(), '$')
	}
	if cfg.Output.ChartPath != "faers_budget.html" {
		t.Errorf("Output.ChartPath = %q, want %q", cfg.Output.ChartPath, "faers_budget.html")
	}
	if cfg.Output.ParquetPath != "" {
		t.Errorf("Output.ParquetPath = %q, want empty", cfg.Output.ParquetPath)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{
		"FAERS_QUARTERS":     " q1/ASCII , q2/ASCII ,, ",
		"FAERS_DELIMITER":    "|",
		"FAERS_PARQUET_PATH": "out.parquet",
		"LOG_LEVEL":          "debug",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if diff := cmp.Diff([]string{"q1/ASCII", "q2/ASCII"}, cfg.Input.Quarters); diff != "" {
		t.Errorf("Input.Quarters mismatch (-want +got):\n%s", diff)
	}
	if cfg.Input.DelimiterRune() != '|' {
		t.Errorf("DelimiterRune() = %q, want %q", cfg.Input.DelimiterRune(), '|')
	}
	if cfg.Output.ParquetPath != "out.parquet" {
		t.Errorf("Output.ParquetPath = %q, want %q", cfg.Output.ParquetPath, "out.parquet")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_EmptyValueDisablesDefault(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{"FAERS_CHART_PATH": ""}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Output.ChartPath != "" {
		t.Errorf("Output.ChartPath = %q, want empty", cfg.Output.ChartPath)
	}
}

func TestLoad_AlternateName(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{"FAERS_DATA_DIRS": "a/ASCII,b/ASCII"}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a/ASCII", "b/ASCII"}, cfg.Input.Quarters); diff != "" {
		t.Errorf("Input.Quarters mismatch (-want +got):\n%s", diff)
	}

	cfg, err = LoadFrom(mapLookup(map[string]string{
		"FAERS_QUARTERS":  "primary/ASCII",
		"FAERS_DATA_DIRS": "alt/ASCII",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if diff := cmp.Diff([]string{"primary/ASCII"}, cfg.Input.Quarters); diff != "" {
		t.Errorf("primary name should win (-want +got):\n%s", diff)
	}
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("FAERS_DELIMITER", "\t")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.DelimiterRune() != '\t' {
		t.Errorf("DelimiterRune() = %q, want tab", cfg.Input.DelimiterRune())
	}
}

func TestLoad_EmptyQuarterList(t *testing.T) {
	_, err := LoadFrom(mapLookup(map[string]string{"FAERS_QUARTERS": " , "}))
	if err == nil {
		t.Fatal("LoadFrom() expected error for empty quarter list")
	}
	if !strings.Contains(err.Error(), "FAERS_QUARTERS") {
		t.Errorf("error should mention FAERS_QUARTERS: %v", err)
	}
}

func TestValidate_Delimiter(t *testing.T) {
	tests := []struct {
		name    string
		delim   string
		wantErr bool
	}{
		{"dollar", "$", false},
		{"pipe", "|", false},
		{"tab", "\t", false},
		{"comma rejected", ",", true},
		{"quote rejected", `"`, true},
		{"newline rejected", "\n", true},
		{"two characters", "$$", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Input:   InputConfig{Quarters: []string{"q"}, Delimiter: tt.delim},
				Logging: LoggingConfig{Level: "info", Format: "text"},
			}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "FAERS_DELIMITER") {
				t.Errorf("error should mention FAERS_DELIMITER: %v", err)
			}
		})
	}
}

func TestValidate_InvalidLogSettings(t *testing.T) {
	cfg := &Config{
		Input:   InputConfig{Quarters: []string{"q"}, Delimiter: "$"},
		Logging: LoggingConfig{Level: "verbose", Format: "xml"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Input:   InputConfig{Quarters: []string{"q1"}, Delimiter: "$"},
		Output:  OutputConfig{ChartPath: "chart.html"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
	str := cfg.String()
	for _, want := range []string{`"q1"`, `"chart.html"`, `"json"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, missing %s", str, want)
		}
	}
}
