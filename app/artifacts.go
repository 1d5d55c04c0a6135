package app

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/acadkit/cohort/core/model"
	"github.com/acadkit/cohort/core/stats"
	"github.com/acadkit/cohort/pkg/export"
)

type artifact struct {
	path string
	data []byte
}

// csvArtifacts renders the full CSV file set for a report, mirroring the
// bundle layout: per-category roster files, per-group files for both
// strategies and the two statistics tables. The list is sorted by path so
// directory writes and pushes are deterministic.
func csvArtifacts(rep *export.Report) ([]artifact, error) {
	var out []artifact

	byCat := make(map[string][]model.Record)
	for _, rec := range rep.Roster {
		if rec.Category == model.CategoryUnknown {
			continue
		}
		byCat[rec.Category] = append(byCat[rec.Category], rec)
	}
	for cat, recs := range byCat {
		data, err := renderRoster(recs)
		if err != nil {
			return nil, err
		}
		out = append(out, artifact{path: "department_wise/" + cat + ".csv", data: data})
	}

	for _, part := range []struct {
		folder string
		p      model.Partition
	}{
		{"balanced", rep.Balanced},
		{"clustered", rep.Clustered},
	} {
		for i, g := range part.p {
			if len(g) == 0 {
				continue
			}
			data, err := renderRoster(g)
			if err != nil {
				return nil, err
			}
			out = append(out, artifact{path: fmt.Sprintf("%s/G%d.csv", part.folder, i+1), data: data})
		}
	}

	for _, st := range []struct {
		path  string
		table stats.Table
	}{
		{"statistics_balanced.csv", rep.BalancedStats},
		{"statistics_clustered.csv", rep.ClusteredStats},
	} {
		var buf bytes.Buffer
		if err := export.WriteStatsCSV(&buf, st.table); err != nil {
			return nil, err
		}
		out = append(out, artifact{path: st.path, data: buf.Bytes()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out, nil
}

func renderRoster(recs []model.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := export.WriteRosterCSV(&buf, recs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
