package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/acadkit/cohort/core/model"
	"github.com/acadkit/cohort/core/stats"
)

var recordHeader = []string{"Roll", "Name", "Email", "Category"}

// WriteRosterCSV writes records to w in CSV form with the standard header.
func WriteRosterCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.ID, r.Name, r.Contact, r.Category}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGroupCSV writes one group to w in CSV form.
func WriteGroupCSV(w io.Writer, g model.Group) error {
	return WriteRosterCSV(w, g)
}

// WriteStatsCSV writes a statistics table to w: one row per group, one
// column per category plus the total.
func WriteStatsCSV(w io.Writer, t stats.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rec := make([]string, 0, len(t.Categories)+2)
		rec = append(rec, row.Group)
		for _, v := range t.Record(row) {
			rec = append(rec, strconv.Itoa(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
