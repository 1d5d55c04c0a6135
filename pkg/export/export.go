// Package export serializes partitions and statistics tables. All writers
// operate on io.Writer so callers decide whether output lands in files, an
// archive entry or an HTTP body.
package export

import (
	"github.com/acadkit/cohort/core/model"
	"github.com/acadkit/cohort/core/stats"
)

// Report bundles the artifacts of one full run: the ingested roster and
// the partition plus statistics table per strategy.
type Report struct {
	Roster model.Roster

	Balanced      model.Partition
	BalancedStats stats.Table

	Clustered      model.Partition
	ClusteredStats stats.Table
}
