package sheet

import (
	"context"
	"slices"
	"sync"

	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/errors"
)

// MemoryStore is an in-process RowStore. It backs the "memory" driver, the
// fallback used when the sheet backend is unconfigured, and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

// NewMemoryStore creates a store whose worksheets are seeded with the given headers.
func NewMemoryStore(headers map[string][]string) *MemoryStore {
	sheets := make(map[string][][]string, len(headers))
	for name, header := range headers {
		if len(header) == 0 {
			sheets[name] = nil
			continue
		}
		sheets[name] = [][]string{slices.Clone(header)}
	}

	return &MemoryStore{sheets: sheets}
}

// Header implements RowStore.
func (s *MemoryStore) Header(_ context.Context, sheet string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.worksheet(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	return slices.Clone(rows[0]), nil
}

// ReadAll implements RowStore.
func (s *MemoryStore) ReadAll(_ context.Context, sheet string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.worksheet(sheet)
	if err != nil {
		return nil, err
	}

	return toRecords(rows), nil
}

// AppendRow implements RowStore.
func (s *MemoryStore) AppendRow(_ context.Context, sheet string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.worksheet(sheet)
	if err != nil {
		return err
	}
	s.sheets[sheet] = append(rows, slices.Clone(values))

	return nil
}

// FindRow implements RowStore.
func (s *MemoryStore) FindRow(_ context.Context, sheet, key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.worksheet(sheet)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) > 0 && row[0] == key {
			return i + 1, nil
		}
	}

	return 0, ErrRowNotFound
}

// WriteCell implements RowStore.
func (s *MemoryStore) WriteCell(_ context.Context, sheet string, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.worksheet(sheet)
	if err != nil {
		return err
	}
	if row < 1 || row > len(rows) || col < 1 {
		return errors.Errorf("cell %s%d is outside %s", ColumnName(col), row, sheet)
	}

	cells := rows[row-1]
	for len(cells) < col {
		cells = append(cells, "")
	}
	cells[col-1] = value
	rows[row-1] = cells

	return nil
}

func (s *MemoryStore) worksheet(sheet string) ([][]string, error) {
	rows, ok := s.sheets[sheet]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrStoreUnreachable.WithDetails("worksheet not found: "+sheet), "open worksheet %s", sheet)
	}

	return rows, nil
}
