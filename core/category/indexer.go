// Package category indexes a roster by derived category code and hands out
// records in original roster order through per-category FIFO queues.
package category

import (
	"sort"

	"github.com/acadkit/cohort/core/model"
)

// queue is a FIFO over a fixed record slice. Popping advances a cursor
// instead of reslicing so the backing array is shared, never copied.
type queue struct {
	records []model.Record
	head    int
}

func (q *queue) len() int { return len(q.records) - q.head }

func (q *queue) pop() (model.Record, bool) {
	if q.head >= len(q.records) {
		return model.Record{}, false
	}
	rec := q.records[q.head]
	q.head++
	return rec, true
}

// Index holds the deterministic category ordering for a roster together
// with one FIFO queue per category. Build a fresh Index per allocation run;
// popping consumes it.
type Index struct {
	order  []string
	queues map[string]*queue
}

// Build indexes the roster. The resulting order lists categories present in
// the roster: entries of the priority catalog first, in catalog order, then
// any remaining categories in first-seen roster order. Unknown categories
// are ordinary categories here, not failures.
func Build(roster model.Roster, priority []string) *Index {
	queues := make(map[string]*queue)
	var seen []string
	for _, rec := range roster {
		q, ok := queues[rec.Category]
		if !ok {
			q = &queue{}
			queues[rec.Category] = q
			seen = append(seen, rec.Category)
		}
		q.records = append(q.records, rec)
	}

	order := make([]string, 0, len(seen))
	inCatalog := make(map[string]bool, len(priority))
	for _, cat := range priority {
		if _, present := queues[cat]; present {
			order = append(order, cat)
			inCatalog[cat] = true
		}
	}
	for _, cat := range seen {
		if !inCatalog[cat] {
			order = append(order, cat)
		}
	}

	return &Index{order: order, queues: queues}
}

// Order returns the deterministic category ordering. Callers must not
// modify the returned slice.
func (ix *Index) Order() []string { return ix.order }

// OrderByPopulation returns the categories ordered by descending record
// count, ties broken by Order position. The stable sort makes the tie-break
// explicit rather than an accident of the sort implementation.
func (ix *Index) OrderByPopulation() []string {
	out := make([]string, len(ix.order))
	copy(out, ix.order)
	sort.SliceStable(out, func(i, j int) bool {
		return len(ix.queues[out[i]].records) > len(ix.queues[out[j]].records)
	})
	return out
}

// Pop removes and returns the front record of the category's queue.
func (ix *Index) Pop(cat string) (model.Record, bool) {
	q, ok := ix.queues[cat]
	if !ok {
		return model.Record{}, false
	}
	return q.pop()
}

// Remaining reports how many records are still queued for the category.
func (ix *Index) Remaining(cat string) int {
	q, ok := ix.queues[cat]
	if !ok {
		return 0
	}
	return q.len()
}

// Drain removes and returns all remaining records of the category.
func (ix *Index) Drain(cat string) []model.Record {
	q, ok := ix.queues[cat]
	if !ok || q.len() == 0 {
		return nil
	}
	out := q.records[q.head:]
	q.head = len(q.records)
	return out
}

// DrainN removes and returns up to n records from the front of the
// category's queue.
func (ix *Index) DrainN(cat string, n int) []model.Record {
	q, ok := ix.queues[cat]
	if !ok || n <= 0 || q.len() == 0 {
		return nil
	}
	if n > q.len() {
		n = q.len()
	}
	out := q.records[q.head : q.head+n]
	q.head += n
	return out
}
