package alloc

import (
	"fmt"
	"sort"

	"github.com/acadkit/cohort/core/category"
	"github.com/acadkit/cohort/core/model"
)

// BlockCluster keeps same-category records together: it first carves full
// homogeneous groups of size ceil(total/n) per category, then merges the
// per-category leftovers into mixed groups.
type BlockCluster struct {
	// Priority is the category catalog used to break population ties.
	Priority []string
}

// Name implements Allocator.
func (BlockCluster) Name() string { return "clustered" }

// block is a same-category run of records too small to fill a homogeneous
// group on its own.
type block struct {
	category string
	records  []model.Record
}

// Allocate carves homogeneous groups then packs leftovers. Returns
// ErrTooManyGroups when the two phases emit more than n groups; when they
// emit fewer, the partition is padded with empty groups up to n.
func (a BlockCluster) Allocate(roster model.Roster, n int) (model.Partition, error) {
	if err := validateGroupCount(n); err != nil {
		return nil, err
	}

	total := len(roster)
	if total == 0 {
		return make(model.Partition, n), nil
	}
	capacity := (total + n - 1) / n // ceil(total/n)

	ix := category.Build(roster, a.Priority)

	// Phase 1: slice full capacity-sized runs off the front of each
	// category, most populated category first. Population ties keep the
	// priority-then-first-seen order from the index.
	var partition model.Partition
	var leftovers []block
	for _, cat := range ix.OrderByPopulation() {
		for ix.Remaining(cat) >= capacity {
			partition = append(partition, model.Group(ix.DrainN(cat, capacity)))
		}
		if rest := ix.Drain(cat); len(rest) > 0 {
			leftovers = append(leftovers, block{category: cat, records: rest})
		}
	}

	// Phase 2: merge leftovers, largest block first. The stable sort keeps
	// equal-sized blocks in phase 1 category order, which is the mandated
	// tie-break. The block list acts as a deque: a split block's suffix
	// goes back to the front so it is considered for the very next group.
	sort.SliceStable(leftovers, func(i, j int) bool {
		return len(leftovers[i].records) > len(leftovers[j].records)
	})
	for len(leftovers) > 0 {
		group := make(model.Group, 0, capacity)
		group = append(group, leftovers[0].records...)
		leftovers = leftovers[1:]
		space := capacity - len(group)

		for space > 0 && len(leftovers) > 0 {
			next := leftovers[0]
			leftovers = leftovers[1:]
			if len(next.records) <= space {
				group = append(group, next.records...)
				space -= len(next.records)
				continue
			}
			group = append(group, next.records[:space]...)
			next.records = next.records[space:]
			leftovers = append([]block{next}, leftovers...)
			space = 0
		}
		partition = append(partition, group)
	}

	return finalize(partition, n, capacity)
}

// finalize enforces the group-count contract: more than n emitted groups is
// a capacity/n mismatch surfaced as ErrTooManyGroups, fewer are padded with
// empty groups. No partial partition escapes on error.
func finalize(partition model.Partition, n, capacity int) (model.Partition, error) {
	if len(partition) > n {
		return nil, fmt.Errorf("%w: %d groups for n=%d (capacity %d)", ErrTooManyGroups, len(partition), n, capacity)
	}
	for len(partition) < n {
		partition = append(partition, model.Group{})
	}
	return partition, nil
}
