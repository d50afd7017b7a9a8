package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// GridStore keeps the grid in a SQL cell table (one row per non-empty cell,
// keyed by sheet, row and column). It serves self-hosted deployments that
// want the tracker's data next to the process instead of in Google Sheets.
type GridStore struct {
	db *sqlx.DB
}

func NewGridStore(db *sqlx.DB) *GridStore {
	return &GridStore{db: db}
}

func (s *GridStore) Sheet(name string) Sheet {
	return &gridSheet{db: s.db, name: name}
}

func (s *GridStore) Close() error {
	return s.db.Close()
}

type gridSheet struct {
	db   *sqlx.DB
	name string
}

type gridCell struct {
	Row   int    `db:"row_index"`
	Col   int    `db:"col_index"`
	Value string `db:"value"`
}

func (s *gridSheet) HeaderRow() ([]string, error) {
	return s.rowValues(1)
}

func (s *gridSheet) AllRows() ([][]string, error) {
	var cells []gridCell
	query := `SELECT row_index, col_index, value FROM cells
	          WHERE sheet = $1 ORDER BY row_index ASC, col_index ASC`

	err := s.db.Select(&cells, query, s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", s.name, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	lastRow := cells[len(cells)-1].Row
	rows := make([][]string, lastRow)
	for _, cell := range cells {
		row := rows[cell.Row-1]
		for len(row) < cell.Col {
			row = append(row, "")
		}
		row[cell.Col-1] = cell.Value
		rows[cell.Row-1] = row
	}
	return rows, nil
}

func (s *gridSheet) Cell(row, col int) (string, error) {
	var value string
	query := `SELECT value FROM cells WHERE sheet = $1 AND row_index = $2 AND col_index = $3`

	err := s.db.Get(&value, query, s.name, row, col)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cell: %w", err)
	}
	return value, nil
}

func (s *gridSheet) SetCell(row, col int, value any) error {
	query := `INSERT INTO cells (sheet, row_index, col_index, value) VALUES ($1, $2, $3, $4)
	          ON CONFLICT (sheet, row_index, col_index) DO UPDATE SET value = excluded.value`

	_, err := s.db.Exec(query, s.name, row, col, cellString(value))
	if err != nil {
		return fmt.Errorf("failed to write cell: %w", err)
	}
	return nil
}

func (s *gridSheet) AppendRow(values []any) error {
	// Transaction so the new row index stays consistent with the insert
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lastRow int
	err = tx.Get(&lastRow, `SELECT COALESCE(MAX(row_index), 0) FROM cells WHERE sheet = $1`, s.name)
	if err != nil {
		return fmt.Errorf("failed to find last row: %w", err)
	}

	query := `INSERT INTO cells (sheet, row_index, col_index, value) VALUES ($1, $2, $3, $4)`
	for i, v := range values {
		_, err = tx.Exec(query, s.name, lastRow+1, i+1, cellString(v))
		if err != nil {
			return fmt.Errorf("failed to append cell %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func (s *gridSheet) rowValues(row int) ([]string, error) {
	var cells []gridCell
	query := `SELECT row_index, col_index, value FROM cells
	          WHERE sheet = $1 AND row_index = $2 ORDER BY col_index ASC`

	err := s.db.Select(&cells, query, s.name, row)
	if err != nil {
		return nil, fmt.Errorf("failed to read row %d: %w", row, err)
	}

	var values []string
	for _, cell := range cells {
		for len(values) < cell.Col {
			values = append(values, "")
		}
		values[cell.Col-1] = cell.Value
	}
	return values, nil
}
