// Package alloc implements the partitioning strategies: a balanced
// round-robin distribution and a homogeneous block-clustering scheme.
// Both are pure, deterministic transforms of (roster, group count) into a
// partition; they hold no state between calls.
package alloc

import (
	"errors"
	"fmt"

	"github.com/acadkit/cohort/core/model"
)

// Allocator partitions a roster into exactly n groups.
type Allocator interface {
	// Allocate returns a partition of exactly n groups covering every
	// roster record exactly once, or an error with no partial result.
	Allocate(roster model.Roster, n int) (model.Partition, error)

	// Name identifies the strategy in logs, metrics and export paths.
	Name() string
}

// ErrInvalidGroupCount is returned when the requested group count is
// below one.
var ErrInvalidGroupCount = errors.New("group count must be at least 1")

// ErrTooManyGroups is returned by BlockCluster when the category skew of
// the roster cannot be packed into the requested number of groups. The
// requested count is too small for the computed capacity; callers must
// treat this as a configuration error.
var ErrTooManyGroups = errors.New("clustering produced more groups than requested")

func validateGroupCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidGroupCount, n)
	}
	return nil
}
