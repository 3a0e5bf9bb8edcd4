package core

// Category identifies one of the seven files in a FAERS ASCII quarterly bundle.
// The label is matched as a substring of the file name (DEMO24Q1.txt, ...).
type Category string

const (
	CategoryDemographics Category = "DEMO"
	CategoryDrug         Category = "DRUG"
	CategoryIndication   Category = "INDI"
	CategoryOutcome      Category = "OUTC"
	CategoryReaction     Category = "REAC"
	CategoryReportSource Category = "RPSR"
	CategoryTherapy      Category = "THER"
)

// RequiredCategories lists every category a quarter directory must provide,
// in the order the FDA documents them.
var RequiredCategories = []Category{
	CategoryDemographics,
	CategoryDrug,
	CategoryIndication,
	CategoryOutcome,
	CategoryReaction,
	CategoryReportSource,
	CategoryTherapy,
}

// Description returns the human-readable name of the category.
func (c Category) Description() string {
	switch c {
	case CategoryDemographics:
		return "demographics"
	case CategoryDrug:
		return "drug"
	case CategoryIndication:
		return "indication"
	case CategoryOutcome:
		return "outcome"
	case CategoryReaction:
		return "reaction"
	case CategoryReportSource:
		return "report source"
	case CategoryTherapy:
		return "therapy"
	default:
		return string(c)
	}
}

// ExpectedFileName returns the documented file name pattern, e.g. "DRUGxxQx.txt".
func (c Category) ExpectedFileName() string {
	return string(c) + "xxQx.txt"
}

// FileSet maps each required category to the validated file path for it.
type FileSet map[Category]string

// Tables holds one loaded table per category.
type Tables map[Category]*Table

// HeaderIndex maps column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// Column names consumed from the DRUG and REAC files.
const (
	ColPrimaryID  = "primaryid"
	ColCaseID     = "caseid"
	ColDrugName   = "drugname"
	ColDrugRecAct = "drug_rec_act"
)

// ReportColumns are the merged-table columns the counting stage keeps.
var ReportColumns = []string{ColPrimaryID, ColCaseID, ColDrugName, ColDrugRecAct}

// DefaultDelimiter separates fields in the FAERS ASCII export.
const DefaultDelimiter = '$'

// QuarterCounts holds the number of matching report rows per tracked drug
// for a single quarter.
type QuarterCounts map[string]int

// OutputRow is one drug in the final table.
type OutputRow struct {
	DrugName string
	Reports  int
	Budget   float64
}

// OutputTable is the flattened tracker, one row per tracked drug in tracker order.
type OutputTable struct {
	Label string
	Rows  []OutputRow
}

// QuarterResult summarizes the processing of one quarter directory.
type QuarterResult struct {
	Dir        string
	Files      FileSet
	MergedRows int
	Counts     QuarterCounts
}
