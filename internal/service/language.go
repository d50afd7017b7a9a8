package service

import (
	"fmt"
	"log/slog"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/clock"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/habit"
)

// RecordLanguage increments today's session counter for a language practice
// code by exactly one.
func (t *Tracker) RecordLanguage(userID, code string) (bool, string) {
	lang, ok := habit.LanguageByCode(code)
	if !ok {
		return false, "Invalid language code. Use: ch, he, ta"
	}

	now := t.now()
	sheet := t.store.Sheet(t.languageSheet)

	row, err := findOrCreateRow(sheet, userID, clock.Date(now), clock.WeekStart(now), 0)
	if err != nil {
		slog.Error("failed to resolve language row", "error", err, "language", lang.Name)
		return false, "Failed to record language session"
	}

	col, err := findOrCreateColumn(sheet, lang.Column)
	if err != nil {
		slog.Error("failed to resolve language column", "error", err, "language", lang.Name)
		return false, "Failed to record language session"
	}

	current, err := sheet.Cell(row, col)
	if err != nil {
		slog.Error("failed to read language cell", "error", err, "language", lang.Name)
		return false, "Failed to record language session"
	}

	sessions := counterValue(current) + 1
	err = sheet.SetCell(row, col, sessions)
	if err != nil {
		slog.Error("failed to write language cell", "error", err, "language", lang.Name)
		return false, "Failed to record language session"
	}

	slog.Info("language session recorded", "language", lang.Name, "session", sessions)
	return true, fmt.Sprintf("✓ %s session #%d recorded at %s!", lang.Name, sessions, clock.Stamp(now))
}
