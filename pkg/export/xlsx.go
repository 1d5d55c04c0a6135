package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/acadkit/cohort/core/model"
	"github.com/acadkit/cohort/core/stats"
)

// WriteWorkbook writes an Excel report to w: one statistics sheet per
// strategy followed by one sheet per non-empty group.
func WriteWorkbook(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const first = "Balanced_Stats"
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		return err
	}
	if err := writeStatsSheet(f, first, rep.BalancedStats); err != nil {
		return err
	}
	if _, err := f.NewSheet("Clustered_Stats"); err != nil {
		return err
	}
	if err := writeStatsSheet(f, "Clustered_Stats", rep.ClusteredStats); err != nil {
		return err
	}

	if err := writeGroupSheets(f, "Balanced", rep.Balanced); err != nil {
		return err
	}
	if err := writeGroupSheets(f, "Clustered", rep.Clustered); err != nil {
		return err
	}

	return f.Write(w)
}

func writeStatsSheet(f *excelize.File, sheet string, t stats.Table) error {
	header := make([]any, 0, len(t.Categories)+2)
	for _, h := range t.Header() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		vals := []any{row.Group}
		for _, v := range t.Record(row) {
			vals = append(vals, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return err
		}
	}
	return nil
}

func writeGroupSheets(f *excelize.File, prefix string, p model.Partition) error {
	for i, g := range p {
		if len(g) == 0 {
			continue
		}
		sheet := fmt.Sprintf("%s_G%d", prefix, i+1)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		header := make([]any, len(recordHeader))
		for j, h := range recordHeader {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		for j, rec := range g {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			vals := []any{rec.ID, rec.Name, rec.Contact, rec.Category}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return err
			}
		}
	}
	return nil
}
