// Package core provides the FAERS quarter pipeline: file-set validation,
// table loading, the DRUG/REAC join, and per-drug report counting.
//
// This package has no UI or output dependencies. It can be driven by the
// command in cmd/faers, by other tools, or by tests without modification.
//
// # Quarter Pipeline
//
// Each quarter directory goes through the same steps:
//
//  1. [ValidateQuarter] lists the .txt files and assigns one to each of the
//     seven [RequiredCategories]
//  2. [LoadFileSet] parses every file with the '$' delimiter into a [Table]
//  3. [ReportTable] inner-joins DRUG and REAC on primaryid/caseid and keeps
//     primaryid, caseid, drugname and drug_rec_act
//  4. [CountQuarter] counts exact drugname matches for the tracked names
//
// # Tracker
//
// A [Tracker] holds drug name → (report count, advertising budget), created
// with budgets and zero counts:
//
//	t := core.NewTracker()
//	t.Track("SKYRIZI", 376.7)
//	t.Track("RINVOQ", 337.8)
//
//	table, err := core.NewBuilder('$').BuildTable(ctx, "Brand-name Drugs", t, quarters)
//
// [Builder.BuildTable] processes quarters strictly in order and folds the
// per-quarter counts into the tracker only after every quarter succeeded.
//
// # Error Handling
//
// Failures wrap sentinel errors ([ErrDirectoryNotFound], [ErrNoFilesFound],
// [ErrMissingRequiredFile], [ErrMissingColumn], ...) and are mapped to coded
// user messages by [MapError].
package core
