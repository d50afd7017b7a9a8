package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2/google"
)

const (
	sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	sheetsScope   = "https://www.googleapis.com/auth/spreadsheets"
)

// SheetsStore talks to the Google Sheets v4 values API, authorized with a
// service account key. One SheetsStore covers one spreadsheet; its worksheets
// are addressed by name.
type SheetsStore struct {
	client        *http.Client
	spreadsheetID string
}

// NewSheetsStore builds a store for the given spreadsheet from a service
// account key JSON. The returned client refreshes its token automatically.
func NewSheetsStore(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*SheetsStore, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, sheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	return &SheetsStore{
		client:        jwtConfig.Client(ctx),
		spreadsheetID: spreadsheetID,
	}, nil
}

func (s *SheetsStore) Sheet(name string) Sheet {
	return &sheetsSheet{store: s, name: name}
}

func (s *SheetsStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

type sheetsSheet struct {
	store *SheetsStore
	name  string
}

// valueRange mirrors the values API payload.
type valueRange struct {
	Values [][]any `json:"values"`
}

func (s *sheetsSheet) HeaderRow() ([]string, error) {
	vr, err := s.store.getValues(fmt.Sprintf("%s!1:1", s.name))
	if err != nil {
		return nil, err
	}
	if len(vr.Values) == 0 {
		return nil, nil
	}
	return stringRow(vr.Values[0]), nil
}

func (s *sheetsSheet) AllRows() ([][]string, error) {
	vr, err := s.store.getValues(s.name)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(vr.Values))
	for i, row := range vr.Values {
		rows[i] = stringRow(row)
	}
	return rows, nil
}

func (s *sheetsSheet) Cell(row, col int) (string, error) {
	vr, err := s.store.getValues(s.cellRange(row, col))
	if err != nil {
		return "", err
	}
	if len(vr.Values) == 0 || len(vr.Values[0]) == 0 {
		return "", nil
	}
	return cellString(vr.Values[0][0]), nil
}

func (s *sheetsSheet) SetCell(row, col int, value any) error {
	body := valueRange{Values: [][]any{{value}}}
	path := fmt.Sprintf("/values/%s?valueInputOption=RAW", url.PathEscape(s.cellRange(row, col)))
	return s.store.call(http.MethodPut, path, body, nil)
}

func (s *sheetsSheet) AppendRow(values []any) error {
	body := valueRange{Values: [][]any{values}}
	path := fmt.Sprintf("/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS",
		url.PathEscape(fmt.Sprintf("%s!A1", s.name)))
	return s.store.call(http.MethodPost, path, body, nil)
}

func (s *sheetsSheet) cellRange(row, col int) string {
	return fmt.Sprintf("%s!%s%d", s.name, columnName(col), row)
}

func (s *SheetsStore) getValues(rng string) (*valueRange, error) {
	var vr valueRange
	err := s.call(http.MethodGet, "/values/"+url.PathEscape(rng), nil, &vr)
	if err != nil {
		return nil, err
	}
	return &vr, nil
}

func (s *SheetsStore) call(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := fmt.Sprintf("%s/%s%s", sheetsBaseURL, s.spreadsheetID, path)
	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sheets api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sheets api %s %s: status %d: %s", method, path, resp.StatusCode, detail)
	}

	if out != nil {
		err = json.NewDecoder(resp.Body).Decode(out)
		if err != nil {
			return fmt.Errorf("failed to decode sheets response: %w", err)
		}
	}
	return nil
}

// columnName converts a 1-based column index to its A1 letter form (1 -> A,
// 27 -> AA).
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

func stringRow(row []any) []string {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = cellString(v)
	}
	return cells
}
