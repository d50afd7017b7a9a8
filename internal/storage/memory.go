package storage

// MemoryStore is an in-process grid backend. It backs the test suite and the
// "memory" driver for running the bot without external credentials.
type MemoryStore struct {
	sheets map[string]*MemorySheet
}

// NewMemoryStore creates a store with one sheet per map entry, each seeded
// with the given header row.
func NewMemoryStore(headers map[string][]string) *MemoryStore {
	sheets := make(map[string]*MemorySheet, len(headers))
	for name, header := range headers {
		sheets[name] = NewMemorySheet(header)
	}
	return &MemoryStore{sheets: sheets}
}

func (s *MemoryStore) Sheet(name string) Sheet {
	sheet, ok := s.sheets[name]
	if !ok {
		sheet = NewMemorySheet(nil)
		s.sheets[name] = sheet
	}
	return sheet
}

func (s *MemoryStore) Close() error {
	return nil
}

// MemorySheet is a single in-memory grid. Rows keep whatever width they were
// written with; reads beyond the grid return "".
type MemorySheet struct {
	rows [][]string
}

func NewMemorySheet(header []string) *MemorySheet {
	sheet := &MemorySheet{}
	if len(header) > 0 {
		sheet.rows = append(sheet.rows, append([]string(nil), header...))
	}
	return sheet
}

func (s *MemorySheet) HeaderRow() ([]string, error) {
	if len(s.rows) == 0 {
		return nil, nil
	}
	return append([]string(nil), s.rows[0]...), nil
}

func (s *MemorySheet) AllRows() ([][]string, error) {
	rows := make([][]string, len(s.rows))
	for i, row := range s.rows {
		rows[i] = append([]string(nil), row...)
	}
	return rows, nil
}

func (s *MemorySheet) Cell(row, col int) (string, error) {
	if row < 1 || row > len(s.rows) {
		return "", nil
	}
	cells := s.rows[row-1]
	if col < 1 || col > len(cells) {
		return "", nil
	}
	return cells[col-1], nil
}

func (s *MemorySheet) SetCell(row, col int, value any) error {
	for len(s.rows) < row {
		s.rows = append(s.rows, nil)
	}
	cells := s.rows[row-1]
	for len(cells) < col {
		cells = append(cells, "")
	}
	cells[col-1] = cellString(value)
	s.rows[row-1] = cells
	return nil
}

func (s *MemorySheet) AppendRow(values []any) error {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = cellString(v)
	}
	s.rows = append(s.rows, row)
	return nil
}

// RowCount reports the number of rows including the header. Test helper.
func (s *MemorySheet) RowCount() int {
	return len(s.rows)
}
