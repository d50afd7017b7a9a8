package service

import (
	"errors"
	"strings"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/storage"
)

var ErrNoHeader = errors.New("sheet has no header row")

const (
	userIDHeader = "User ID"
	dateHeader   = "Date"
	weekHeader   = "Week Number"
)

// findOrCreateRow returns the 1-based index of the row keyed by (userID,
// dateStr), appending a freshly initialized row when none exists. The scan
// guarantees at most one row per (userID, dateStr): appends only happen after
// every existing row has been checked, and at most one row is appended per
// call. zero fills the metric cells of a new row ("" for flag sheets, 0 for
// counter sheets).
func findOrCreateRow(sheet storage.Sheet, userID, dateStr, weekLabel string, zero any) (int, error) {
	rows, err := sheet.AllRows()
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, ErrNoHeader
	}

	header := rows[0]
	userCol := headerIndex(header, userIDHeader)
	dateCol := headerIndex(header, dateHeader)
	if userCol == 0 || dateCol == 0 {
		return 0, ErrNoHeader
	}

	for i, row := range rows[1:] {
		// Short rows read as empty cells, never as a scan failure
		if cellAt(row, userCol) == userID && cellAt(row, dateCol) == dateStr {
			return i + 2, nil
		}
	}

	newRow := make([]any, len(header))
	for i, label := range header {
		switch strings.TrimSpace(label) {
		case userIDHeader:
			newRow[i] = userID
		case dateHeader:
			newRow[i] = dateStr
		case weekHeader:
			newRow[i] = weekLabel
		default:
			newRow[i] = zero
		}
	}

	err = sheet.AppendRow(newRow)
	if err != nil {
		return 0, err
	}
	return len(rows) + 1, nil
}

// findOrCreateColumn returns the 1-based index of the header cell whose
// trimmed text equals label, appending the label after the last header cell
// when absent. Re-reads the header on every call, so repeated calls for the
// same label never create a duplicate column.
func findOrCreateColumn(sheet storage.Sheet, label string) (int, error) {
	header, err := sheet.HeaderRow()
	if err != nil {
		return 0, err
	}

	col := headerIndex(header, label)
	if col > 0 {
		return col, nil
	}

	col = len(header) + 1
	err = sheet.SetCell(1, col, label)
	if err != nil {
		return 0, err
	}
	return col, nil
}

// headerIndex returns the 1-based index of label in header, or 0.
func headerIndex(header []string, label string) int {
	for i, cell := range header {
		if strings.TrimSpace(cell) == label {
			return i + 1
		}
	}
	return 0
}

// cellAt reads the trimmed 1-based cell of a possibly short row.
func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}
