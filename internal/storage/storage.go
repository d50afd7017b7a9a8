// Package storage models the backing spreadsheet as a grid of string cells
// addressable by 1-based row and column, grouped into named sheets. Three
// backends implement the same contract: Google Sheets, a SQL cell table and
// an in-process grid for development and tests.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/config"
	"github.com/johnaaiton-art/sambo-habit-tracker/internal/db"
)

// BaseHeader is the fixed leading header of every sheet. Metric columns are
// appended after it lazily, the first time each metric is recorded.
var BaseHeader = []string{"User ID", "Date", "Week Number"}

// Sheet is one grid of cells. Row 1 is the header row. Implementations must
// preserve column order and row append order and must not truncate ragged
// rows (rows with fewer cells than the header).
type Sheet interface {
	// HeaderRow returns row 1.
	HeaderRow() ([]string, error)

	// AllRows returns every row including the header.
	AllRows() ([][]string, error)

	// Cell returns the value at (row, col), or "" when the cell is empty
	// or beyond the current grid.
	Cell(row, col int) (string, error)

	// SetCell writes a single cell. value may be a string or a number.
	SetCell(row, col int, value any) error

	// AppendRow adds a full-width row after the last existing row.
	AppendRow(values []any) error
}

// Store groups the named sheets of one backing spreadsheet.
type Store interface {
	Sheet(name string) Sheet
	Close() error
}

// New creates the store selected by cfg.StoreDriver.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "sheets":
		slog.Info("initializing store", "driver", "sheets", "spreadsheet_id", cfg.GoogleSheetID)
		return NewSheetsStore(context.Background(), cfg.GoogleSheetID, []byte(cfg.GoogleCredentialsJSON))
	case "sqlite", "pgx":
		database, err := db.Init(cfg.StoreDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize grid database: %w", err)
		}
		err = db.RunMigrations(database.DB, cfg.StoreDriver)
		if err != nil {
			return nil, fmt.Errorf("failed to run grid migrations: %w", err)
		}
		return NewGridStore(database), nil
	case "memory":
		slog.Info("initializing store", "driver", "memory")
		return NewMemoryStore(map[string][]string{
			cfg.ActivitySheet:    BaseHeader,
			cfg.ConsumptionSheet: BaseHeader,
			cfg.LanguageSheet:    BaseHeader,
		}), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}
}

// cellString renders a cell value the way the grid stores it.
func cellString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		// JSON numbers and spreadsheet numerics arrive as float64
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
