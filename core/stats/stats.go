// Package stats summarizes the category composition of a partition.
package stats

import (
	"sort"
	"strconv"

	"github.com/acadkit/cohort/core/model"
)

// Table is the per-group category count matrix. Rows follow group index
// order; Categories lists every category present anywhere in the partition,
// sorted. Every (row, category) cell is populated, zeros included.
type Table struct {
	Categories []string
	Rows       []Row
}

// Row holds the counts for one group.
type Row struct {
	Group  string // "G1".."GN"
	Counts map[string]int
	Total  int
}

// Summarize builds the statistics table for a partition. An empty
// partition yields a table with no category columns and all-zero totals.
func Summarize(p model.Partition) Table {
	present := make(map[string]struct{})
	for _, g := range p {
		for _, rec := range g {
			present[rec.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(present))
	for cat := range present {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	rows := make([]Row, len(p))
	for i, g := range p {
		counts := make(map[string]int, len(categories))
		for _, cat := range categories {
			counts[cat] = 0
		}
		for _, rec := range g {
			counts[rec.Category]++
		}
		rows[i] = Row{Group: groupLabel(i), Counts: counts, Total: len(g)}
	}

	return Table{Categories: categories, Rows: rows}
}

func groupLabel(i int) string { return "G" + strconv.Itoa(i+1) }

// Header returns the CSV/worksheet header row: Group, categories, Total.
func (t Table) Header() []string {
	h := make([]string, 0, len(t.Categories)+2)
	h = append(h, "Group")
	h = append(h, t.Categories...)
	h = append(h, "Total")
	return h
}

// Record returns one row in Header order with counts rendered as ints.
func (t Table) Record(r Row) []int {
	vals := make([]int, 0, len(t.Categories)+1)
	for _, cat := range t.Categories {
		vals = append(vals, r.Counts[cat])
	}
	vals = append(vals, r.Total)
	return vals
}
