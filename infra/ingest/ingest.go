// Package ingest parses uploaded roster tables into the engine's input
// form. Readers preserve row order, default missing columns to empty
// strings and derive each record's category; they never fail on content,
// only on unreadable input.
package ingest

import (
	"strings"

	"github.com/acadkit/cohort/core/model"
)

// Expected header names, matched case-insensitively.
const (
	colRoll  = "roll"
	colName  = "name"
	colEmail = "email"
)

// fromRows converts a raw table into a roster. The first row is the
// header; columns not present default every record's field to "".
func fromRows(rows [][]string) model.Roster {
	if len(rows) == 0 {
		return model.Roster{}
	}

	rollIdx, nameIdx, emailIdx := -1, -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case colRoll:
			rollIdx = i
		case colName:
			nameIdx = i
		case colEmail:
			emailIdx = i
		}
	}

	roster := make(model.Roster, 0, len(rows)-1)
	for _, row := range rows[1:] {
		roster = append(roster, model.NewRecord(
			cell(row, rollIdx),
			cell(row, nameIdx),
			cell(row, emailIdx),
		))
	}
	return roster
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
