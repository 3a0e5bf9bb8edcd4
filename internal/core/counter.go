package core

// CountQuarter counts the rows of merged whose drugname equals each of names
// exactly. Every name gets an entry, zero included. Drug names not in names
// are ignored.
func CountQuarter(merged *Table, names []string) (QuarterCounts, error) {
	drugs, err := merged.Values(ColDrugName)
	if err != nil {
		return nil, err
	}

	counts := make(QuarterCounts, len(names))
	for _, n := range names {
		counts[n] = 0
	}
	for _, d := range drugs {
		if _, tracked := counts[d]; tracked {
			counts[d]++
		}
	}
	return counts, nil
}

// CountReports counts merged against the tracker's names and adds the result
// to the tracker. Existing counts are never reset: calling it twice with the
// same table counts that table twice.
func CountReports(merged *Table, tracker *Tracker) error {
	counts, err := CountQuarter(merged, tracker.Names())
	if err != nil {
		return err
	}
	tracker.Accumulate(counts)
	return nil
}
