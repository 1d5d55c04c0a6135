package alloc

import (
	"github.com/acadkit/cohort/core/category"
	"github.com/acadkit/cohort/core/model"
)

// RoundRobin distributes records across groups so that group sizes differ
// by at most one and categories are interleaved as evenly as possible
// within each group, in priority order.
type RoundRobin struct {
	// Priority is the category catalog driving the sweep order. Categories
	// absent from the catalog follow in first-seen roster order.
	Priority []string
}

// Name implements Allocator.
func (RoundRobin) Name() string { return "balanced" }

// Allocate fills groups in index order. Group i targets base+1 records
// when i < total%n, base otherwise, so targets sum to the roster size
// exactly and the earlier groups absorb the remainder.
func (a RoundRobin) Allocate(roster model.Roster, n int) (model.Partition, error) {
	if err := validateGroupCount(n); err != nil {
		return nil, err
	}

	total := len(roster)
	base := total / n
	remainder := total % n

	ix := category.Build(roster, a.Priority)
	order := ix.Order()

	partition := make(model.Partition, n)
	for i := range partition {
		target := base
		if i < remainder {
			target++
		}
		group := make(model.Group, 0, target)

		// Sweep the category list once per pass, taking at most one record
		// per category, until the group is full. A pass with no assignment
		// means every queue is empty; bail out rather than spin.
		for len(group) < target {
			progressed := false
			for _, cat := range order {
				if len(group) >= target {
					break
				}
				rec, ok := ix.Pop(cat)
				if !ok {
					continue
				}
				group = append(group, rec)
				progressed = true
			}
			if !progressed {
				break
			}
		}
		partition[i] = group
	}

	return partition, nil
}
