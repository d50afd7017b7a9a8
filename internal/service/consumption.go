package service

import (
	"fmt"
	"log/slog"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/clock"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/habit"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/validation"
)

// RecordConsumption accumulates a consumption count and its optional cost
// from a message like "xx 150". Both cells are always written back, the cost
// cell included even when the cost increment is zero.
func (t *Tracker) RecordConsumption(userID, text string) (bool, string) {
	cmd, err := validation.ParseConsumption(text)
	if err != nil {
		return false, "Invalid format. Use: x, xx, xx 150, y 75, z"
	}
	kind, ok := habit.ConsumptionByLetter(cmd.Letter)
	if !ok {
		return false, "Invalid type. Use x, y, or z"
	}

	now := t.now()
	sheet := t.store.Sheet(t.consumptionSheet)

	row, err := findOrCreateRow(sheet, userID, clock.Date(now), clock.WeekStart(now), 0)
	if err != nil {
		slog.Error("failed to resolve consumption row", "error", err, "kind", kind.Name)
		return false, "Failed to record consumption"
	}

	// The two columns are resolved independently; the second lookup re-reads
	// the header, so a fresh cost column lands after a fresh count column
	countCol, err := findOrCreateColumn(sheet, kind.CountColumn)
	if err != nil {
		slog.Error("failed to resolve count column", "error", err, "kind", kind.Name)
		return false, "Failed to record consumption"
	}
	costCol, err := findOrCreateColumn(sheet, kind.CostColumn)
	if err != nil {
		slog.Error("failed to resolve cost column", "error", err, "kind", kind.Name)
		return false, "Failed to record consumption"
	}

	currentCount, err := sheet.Cell(row, countCol)
	if err != nil {
		slog.Error("failed to read count cell", "error", err, "kind", kind.Name)
		return false, "Failed to record consumption"
	}
	currentCost, err := sheet.Cell(row, costCol)
	if err != nil {
		slog.Error("failed to read cost cell", "error", err, "kind", kind.Name)
		return false, "Failed to record consumption"
	}

	newCount := counterValue(currentCount) + cmd.Count
	newCost := counterValue(currentCost) + cmd.Cost

	err = sheet.SetCell(row, countCol, newCount)
	if err != nil {
		slog.Error("failed to write count cell", "error", err, "kind", kind.Name)
		return false, "Failed to record consumption"
	}
	err = sheet.SetCell(row, costCol, newCost)
	if err != nil {
		slog.Error("failed to write cost cell", "error", err, "kind", kind.Name)
		return false, "Failed to record consumption"
	}

	slog.Info("consumption recorded",
		"kind", kind.Name, "count", cmd.Count, "cost", cmd.Cost, "total", newCount)

	costText := ""
	if cmd.Cost > 0 {
		costText = fmt.Sprintf(" (%d rub)", cmd.Cost)
	}
	return true, fmt.Sprintf("✓ %s x%d recorded%s! Total today: %d", kind.Name, cmd.Count, costText, newCount)
}
