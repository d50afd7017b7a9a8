package storage

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/db"
)

func newTestGridStore(t *testing.T) *GridStore {
	t.Helper()

	database, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// One connection, or each pooled conn would see its own empty memory DB
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return NewGridStore(database)
}

func TestGridMigrationSeedsHeaders(t *testing.T) {
	store := newTestGridStore(t)

	for _, name := range []string{"Activity", "Consumption", "Language"} {
		header, err := store.Sheet(name).HeaderRow()
		require.NoError(t, err)
		assert.Equal(t, []string{"User ID", "Date", "Week Number"}, header, name)
	}
}

func TestGridAppendAndReadBack(t *testing.T) {
	store := newTestGridStore(t)
	sheet := store.Sheet("Activity")

	require.NoError(t, sheet.AppendRow([]any{"42", "2024-01-08", "2024-01-08"}))
	require.NoError(t, sheet.AppendRow([]any{"42", "2024-01-09", "2024-01-08"}))

	rows, err := sheet.AllRows()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"User ID", "Date", "Week Number"}, rows[0])
	assert.Equal(t, []string{"42", "2024-01-08", "2024-01-08"}, rows[1])
	assert.Equal(t, []string{"42", "2024-01-09", "2024-01-08"}, rows[2])

	value, err := sheet.Cell(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-09", value)
}

func TestGridSetCellUpserts(t *testing.T) {
	store := newTestGridStore(t)
	sheet := store.Sheet("Consumption")

	require.NoError(t, sheet.SetCell(1, 4, "Coffee (x)"))
	require.NoError(t, sheet.SetCell(2, 4, 1))
	require.NoError(t, sheet.SetCell(2, 4, 3))

	value, err := sheet.Cell(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "3", value)

	header, err := sheet.HeaderRow()
	require.NoError(t, err)
	assert.Equal(t, []string{"User ID", "Date", "Week Number", "Coffee (x)"}, header)
}

func TestGridEmptyCellReadsEmptyString(t *testing.T) {
	store := newTestGridStore(t)

	value, err := store.Sheet("Language").Cell(9, 9)
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestGridSheetsAreIsolated(t *testing.T) {
	store := newTestGridStore(t)

	require.NoError(t, store.Sheet("Activity").AppendRow([]any{"42", "2024-01-08", "2024-01-08"}))

	rows, err := store.Sheet("Language").AllRows()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
