package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/clock"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/config"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/storage"
)

// Tracker records habits into the backing store. It is stateless across
// invocations: every record is one synchronous sequence of store reads and
// writes, and all state lives in the store itself.
type Tracker struct {
	store            storage.Store
	activitySheet    string
	consumptionSheet string
	languageSheet    string

	// now is swapped in tests to pin the calendar date
	now func() time.Time
}

func NewTracker(store storage.Store, cfg *config.Config) *Tracker {
	return &Tracker{
		store:            store,
		activitySheet:    cfg.ActivitySheet,
		consumptionSheet: cfg.ConsumptionSheet,
		languageSheet:    cfg.LanguageSheet,
		now:              clock.Now,
	}
}

// SetNow overrides the tracker's clock. Used by tests to pin the date.
func (t *Tracker) SetNow(now func() time.Time) {
	t.now = now
}

// counterValue reads a numeric cell: blank or non-numeric reads as 0.
func counterValue(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err == nil {
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err == nil {
		return int(f)
	}
	return 0
}
