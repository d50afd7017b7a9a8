package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/clock"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/habit"
)

// RecordActivity marks a numbered activity as done today. Set-once per day:
// a second call for the same habit and day reports it as already recorded
// instead of double-recording.
func (t *Tracker) RecordActivity(userID string, habitID int) (bool, string) {
	h, ok := habit.ActivityByID(habitID)
	if !ok {
		return false, "Invalid habit number. Use 1-5."
	}

	now := t.now()
	sheet := t.store.Sheet(t.activitySheet)

	row, err := findOrCreateRow(sheet, userID, clock.Date(now), clock.WeekStart(now), "")
	if err != nil {
		slog.Error("failed to resolve activity row", "error", err, "habit", h.Name)
		return false, "Failed to record activity"
	}

	col, err := findOrCreateColumn(sheet, h.Column)
	if err != nil {
		slog.Error("failed to resolve activity column", "error", err, "habit", h.Name)
		return false, "Failed to record activity"
	}

	current, err := sheet.Cell(row, col)
	if err != nil {
		slog.Error("failed to read activity cell", "error", err, "habit", h.Name)
		return false, "Failed to record activity"
	}
	if strings.TrimSpace(current) != "" {
		return false, fmt.Sprintf("%s already recorded today", h.Name)
	}

	stamp := clock.Stamp(now)
	err = sheet.SetCell(row, col, fmt.Sprintf("✓ (%s)", stamp))
	if err != nil {
		slog.Error("failed to write activity cell", "error", err, "habit", h.Name)
		return false, "Failed to record activity"
	}

	slog.Info("activity recorded", "habit", h.Name, "date", clock.Date(now))
	return true, fmt.Sprintf("✓ %s recorded at %s!", h.Name, stamp)
}
