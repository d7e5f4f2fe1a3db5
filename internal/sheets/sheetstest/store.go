// Package sheetstest provides an in-memory stand-in for the remote tabular
// store, with per-call failure injection for exercising partial-failure paths.
package sheetstest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-hrfms/internal/sheets"
)

type Store struct {
	mu     sync.Mutex
	sheetz map[string][][]string

	// FailFetch, FailInsert, FailUpdateRow, FailUpdateCell and FailUpload
	// force the corresponding call to fail for the named sheet ("*" matches
	// every sheet). FailUpload matches on file name.
	FailFetch      map[string]error
	FailInsert     map[string]error
	FailUpdateRow  map[string]error
	FailUpdateCell map[string]error
	FailUpload     map[string]error

	// UploadURL maps file name to the URL returned on success.
	UploadURL map[string]string

	Inserts     []InsertCall
	RowUpdates  []RowUpdateCall
	CellUpdates []CellUpdateCall
	Uploads     []string
}

type InsertCall struct {
	Sheet string
	Row   []string
}

type RowUpdateCall struct {
	Sheet    string
	RowIndex int
	Row      []string
}

type CellUpdateCall struct {
	Sheet    string
	RowIndex int
	ColIndex int
	Value    string
}

func New() *Store {
	return &Store{
		sheetz:         make(map[string][][]string),
		FailFetch:      make(map[string]error),
		FailInsert:     make(map[string]error),
		FailUpdateRow:  make(map[string]error),
		FailUpdateCell: make(map[string]error),
		FailUpload:     make(map[string]error),
		UploadURL:      make(map[string]string),
	}
}

var _ sheets.Client = (*Store)(nil)

// Seed replaces the full contents of a sheet.
func (s *Store) Seed(sheet string, data [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([][]string, len(data))
	for i, row := range data {
		cp[i] = append([]string(nil), row...)
	}
	s.sheetz[sheet] = cp
}

// Rows returns a copy of the current contents of a sheet.
func (s *Store) Rows(sheet string) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.sheetz[sheet]
	cp := make([][]string, len(data))
	for i, row := range data {
		cp[i] = append([]string(nil), row...)
	}
	return cp
}

func (s *Store) failure(m map[string]error, key string) error {
	if err, ok := m[key]; ok {
		return err
	}
	if err, ok := m["*"]; ok {
		return err
	}
	return nil
}

func (s *Store) Fetch(_ context.Context, sheet string) (sheets.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(s.FailFetch, sheet); err != nil {
		return sheets.Snapshot{}, err
	}
	data, ok := s.sheetz[sheet]
	if !ok {
		return sheets.Snapshot{}, fmt.Errorf("sheetstest: unknown sheet %q", sheet)
	}
	cp := make([][]string, len(data))
	for i, row := range data {
		cp[i] = append([]string(nil), row...)
	}
	return sheets.Snapshot{Sheet: sheet, Data: cp}, nil
}

func (s *Store) Insert(_ context.Context, sheet string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(s.FailInsert, sheet); err != nil {
		return err
	}
	s.sheetz[sheet] = append(s.sheetz[sheet], append([]string(nil), row...))
	s.Inserts = append(s.Inserts, InsertCall{Sheet: sheet, Row: append([]string(nil), row...)})
	return nil
}

func (s *Store) UpdateRow(_ context.Context, sheet string, rowIndex int, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(s.FailUpdateRow, sheet); err != nil {
		return err
	}
	data := s.sheetz[sheet]
	if rowIndex < 1 || rowIndex > len(data) {
		return fmt.Errorf("sheetstest: row %d out of range for sheet %q", rowIndex, sheet)
	}
	data[rowIndex-1] = append([]string(nil), row...)
	s.RowUpdates = append(s.RowUpdates, RowUpdateCall{Sheet: sheet, RowIndex: rowIndex, Row: append([]string(nil), row...)})
	return nil
}

func (s *Store) UpdateCell(_ context.Context, sheet string, rowIndex, colIndex int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(s.FailUpdateCell, sheet); err != nil {
		return err
	}
	data := s.sheetz[sheet]
	if rowIndex < 1 || rowIndex > len(data) {
		return fmt.Errorf("sheetstest: row %d out of range for sheet %q", rowIndex, sheet)
	}
	row := data[rowIndex-1]
	for len(row) < colIndex {
		row = append(row, "")
	}
	row[colIndex-1] = value
	data[rowIndex-1] = row
	s.CellUpdates = append(s.CellUpdates, CellUpdateCall{Sheet: sheet, RowIndex: rowIndex, ColIndex: colIndex, Value: value})
	return nil
}

func (s *Store) UploadFile(_ context.Context, req sheets.UploadRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(s.FailUpload, req.FileName); err != nil {
		return "", err
	}
	s.Uploads = append(s.Uploads, req.FileName)
	if url, ok := s.UploadURL[req.FileName]; ok {
		return url, nil
	}
	return "https://files.example/" + req.FileName, nil
}

// ErrForced is a convenient injected failure.
var ErrForced = errors.New("sheetstest: forced failure")
