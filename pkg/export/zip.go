package export

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"

	"github.com/acadkit/cohort/core/model"
)

// WriteBundle writes the full CSV package as a ZIP archive: per-category
// roster files, per-group files for both strategies and both statistics
// tables. It returns the number of files written.
func WriteBundle(w io.Writer, rep Report) (int, error) {
	zw := zip.NewWriter(w)
	files := 0

	// Per-category files, sorted for a stable archive layout. Records with
	// no derivable category are left out, matching the per-department view.
	byCat := make(map[string][]model.Record)
	for _, rec := range rep.Roster {
		if rec.Category == model.CategoryUnknown {
			continue
		}
		byCat[rec.Category] = append(byCat[rec.Category], rec)
	}
	cats := make([]string, 0, len(byCat))
	for cat := range byCat {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		ew, err := zw.Create("department_wise/" + cat + ".csv")
		if err != nil {
			return files, err
		}
		if err := WriteRosterCSV(ew, byCat[cat]); err != nil {
			return files, err
		}
		files++
	}

	n, err := addGroups(zw, "balanced", rep.Balanced)
	files += n
	if err != nil {
		return files, err
	}
	n, err = addGroups(zw, "clustered", rep.Clustered)
	files += n
	if err != nil {
		return files, err
	}

	ew, err := zw.Create("statistics_balanced.csv")
	if err != nil {
		return files, err
	}
	if err := WriteStatsCSV(ew, rep.BalancedStats); err != nil {
		return files, err
	}
	files++
	ew, err = zw.Create("statistics_clustered.csv")
	if err != nil {
		return files, err
	}
	if err := WriteStatsCSV(ew, rep.ClusteredStats); err != nil {
		return files, err
	}
	files++

	if err := zw.Close(); err != nil {
		return files, err
	}
	return files, nil
}

func addGroups(zw *zip.Writer, folder string, p model.Partition) (int, error) {
	files := 0
	for i, g := range p {
		if len(g) == 0 {
			continue
		}
		ew, err := zw.Create(fmt.Sprintf("%s/G%d.csv", folder, i+1))
		if err != nil {
			return files, err
		}
		if err := WriteGroupCSV(ew, g); err != nil {
			return files, err
		}
		files++
	}
	return files, nil
}
