package score

import "sort"

// TableSize is the number of entries kept in a high-score table.
const TableSize = 5

// Entry is one high-score line.
type Entry struct {
	Name  string
	Score int
}

// Table is a ranked high-score list, best first.
type Table struct {
	entries []Entry
}

// DefaultEntries is the table used when nothing has been saved yet.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "Tim", Score: 1100},
		{Name: "Kim", Score: 1000},
		{Name: "Jim", Score: 900},
		{Name: "Zim", Score: 800},
		{Name: "Qim", Score: 700},
	}
}

// NewTable builds a table from entries, sorted and trimmed to TableSize.
func NewTable(entries []Entry) *Table {
	t := &Table{entries: append([]Entry(nil), entries...)}
	t.normalize()
	return t
}

// DefaultTable returns a table filled with DefaultEntries.
func DefaultTable() *Table {
	return NewTable(DefaultEntries())
}

// Entries returns a copy of the ranked entries.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Qualifies reports whether value would enter the table.
func (t *Table) Qualifies(value int) bool {
	if len(t.entries) < TableSize {
		return true
	}
	return value > t.entries[len(t.entries)-1].Score
}

// Submit adds an entry if it qualifies and reports whether it was kept.
func (t *Table) Submit(name string, value int) bool {
	if !t.Qualifies(value) {
		return false
	}
	t.entries = append(t.entries, Entry{Name: name, Score: value})
	t.normalize()
	return true
}

// Best returns the top entry, or a zero Entry for an empty table.
func (t *Table) Best() Entry {
	if len(t.entries) == 0 {
		return Entry{}
	}
	return t.entries[0]
}

func (t *Table) normalize() {
	// Stable so earlier entries win ties
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	if len(t.entries) > TableSize {
		t.entries = t.entries[:TableSize]
	}
}
