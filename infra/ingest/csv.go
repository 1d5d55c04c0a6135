package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/acadkit/cohort/core/model"
)

// ReadCSV parses a roster from CSV input. Rows may have uneven field
// counts; short rows default the missing fields to empty strings.
func ReadCSV(r io.Reader) (model.Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(rows), nil
}
