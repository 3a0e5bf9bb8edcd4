package core

// TrackedDrug is the running state for one drug name.
type TrackedDrug struct {
	Name    string
	Reports int
	Budget  float64
}

// Tracker maps drug names to a cumulative report count and an advertising
// budget. Names are matched exactly and case-sensitively. Iteration follows
// the order in which names were first tracked.
//
// Tracking a name that is already present overwrites its budget in place;
// its position and count are kept. Entries are never merged.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	order   []string
	entries map[string]*TrackedDrug
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]*TrackedDrug)}
}

// Track adds name with a zero count, or replaces the budget of an existing entry.
func (t *Tracker) Track(name string, budget float64) {
	if d, ok := t.entries[name]; ok {
		d.Budget = budget
		return
	}
	t.entries[name] = &TrackedDrug{Name: name, Budget: budget}
	t.order = append(t.order, name)
}

// Len returns the number of tracked names.
func (t *Tracker) Len() int {
	return len(t.order)
}

// Names returns the tracked names in tracking order.
func (t *Tracker) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Get returns the entry for name.
func (t *Tracker) Get(name string) (TrackedDrug, bool) {
	d, ok := t.entries[name]
	if !ok {
		return TrackedDrug{}, false
	}
	return *d, true
}

// Accumulate adds the counts for tracked names. Untracked names are ignored.
// Counts are only ever added, so folding quarters in any order gives the
// same totals.
func (t *Tracker) Accumulate(counts QuarterCounts) {
	for name, n := range counts {
		if d, ok := t.entries[name]; ok {
			d.Reports += n
		}
	}
}

// Table flattens the tracker into an output table, one row per tracked name.
func (t *Tracker) Table(label string) OutputTable {
	rows := make([]OutputRow, 0, len(t.order))
	for _, name := range t.order {
		d := t.entries[name]
		rows = append(rows, OutputRow{DrugName: d.Name, Reports: d.Reports, Budget: d.Budget})
	}
	return OutputTable{Label: label, Rows: rows}
}
