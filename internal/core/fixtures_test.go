package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Minimal '$'-delimited quarter files. Each line ends with a trailing
// delimiter, as the FDA export does.
const (
	demoFixture = "primaryid$caseid$caseversion$\n100$10$1$\n200$20$1$\n300$30$1$\n"
	indiFixture = "primaryid$caseid$indi_drug_seq$indi_pt$\n100$10$1$Psoriasis$\n"
	outcFixture = "primaryid$caseid$outc_cod$\n100$10$OT$\n"
	rpsrFixture = "primaryid$caseid$rpsr_cod$\n100$10$CSM$\n"
	therFixture = "primaryid$caseid$dsg_drug_seq$start_dt$\n100$10$1$20240101$\n"
)

// drugFixture builds a DRUG file from "primaryid,caseid,drugname" triples.
func drugFixture(rows ...string) string {
	var b strings.Builder
	b.WriteString("primaryid$caseid$drug_seq$role_cod$drugname$prod_ai$\n")
	for i, r := range rows {
		p := strings.Split(r, ",")
		b.WriteString(p[0] + "$" + p[1] + "$" + string(rune('1'+i%9)) + "$PS$" + p[2] + "$ai$\n")
	}
	return b.String()
}

// reacFixture builds a REAC file from "primaryid,caseid,pt" triples.
func reacFixture(rows ...string) string {
	var b strings.Builder
	b.WriteString("primaryid$caseid$pt$drug_rec_act$\n")
	for _, r := range rows {
		p := strings.Split(r, ",")
		b.WriteString(p[0] + "$" + p[1] + "$" + p[2] + "$$\n")
	}
	return b.String()
}

// writeQuarter creates a quarter directory holding all seven files, with
// the given DRUG and REAC contents. It returns the directory path.
func writeQuarter(t *testing.T, tag, drug, reac string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "faers_ascii_"+tag, "ASCII")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[Category]string{
		CategoryDemographics: demoFixture,
		CategoryDrug:         drug,
		CategoryIndication:   indiFixture,
		CategoryOutcome:      outcFixture,
		CategoryReaction:     reac,
		CategoryReportSource: rpsrFixture,
		CategoryTherapy:      therFixture,
	}
	for cat, content := range files {
		writeFile(t, filepath.Join(dir, string(cat)+tag+".txt"), content)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
