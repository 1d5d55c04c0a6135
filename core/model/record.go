package model

// CategoryUnknown is assigned when no category code can be derived from a
// record identifier.
const CategoryUnknown = "UNKNOWN"

// Record represents one roster entry. Records are immutable once built:
// allocators move them between groups but never modify them.
type Record struct {
	ID       string // roll code, e.g. "2511AI57"
	Name     string
	Contact  string // email address
	Category string // derived from ID, CategoryUnknown when underivable
}

// Roster is the ordered input list for one run. The order is significant:
// it is the tie-break for every queue operation downstream.
type Roster []Record

// Group is one output bucket of records.
type Group []Record

// Partition is the full set of groups produced by one allocator run.
type Partition []Group

// DeriveCategory extracts the category code from an identifier: the first
// two consecutive uppercase ASCII letters, anywhere in the string. An empty
// identifier or one without such a pair yields CategoryUnknown.
func DeriveCategory(id string) string {
	for i := 0; i+1 < len(id); i++ {
		if isUpper(id[i]) && isUpper(id[i+1]) {
			return id[i : i+2]
		}
	}
	return CategoryUnknown
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// NewRecord builds a record with its category derived from the identifier.
func NewRecord(id, name, contact string) Record {
	return Record{ID: id, Name: name, Contact: contact, Category: DeriveCategory(id)}
}

// Size returns the total number of records across all groups.
func (p Partition) Size() int {
	n := 0
	for _, g := range p {
		n += len(g)
	}
	return n
}

// Categories returns the set of categories present in the roster, keyed by
// category code with per-category counts as values.
func (r Roster) Categories() map[string]int {
	counts := make(map[string]int)
	for _, rec := range r {
		counts[rec.Category]++
	}
	return counts
}
