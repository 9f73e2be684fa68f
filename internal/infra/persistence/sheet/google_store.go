package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"nutriledger/config"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw     = "RAW"
	insertDataRows    = "INSERT_ROWS"
	valueRenderFormat = "UNFORMATTED_VALUE"
)

// GoogleStore is a RowStore backed by a Google Sheets spreadsheet. Each
// worksheet is one collection.
type GoogleStore struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	logger        *slog.Logger
}

// NewGoogleStore connects to the spreadsheet named in cfg. A missing
// spreadsheet ID or credential yields ErrStoreUnconfigured.
func NewGoogleStore(ctx context.Context, cfg *config.SheetsConfig, logger *slog.Logger) (*GoogleStore, error) {
	if !cfg.Configured() {
		return nil, domainerrors.ErrStoreUnconfigured.WithDetails("store.sheets needs spreadsheetId and credentials")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnconfigured.WithDetails(err.Error()), "create sheets service")
	}

	return &GoogleStore{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// Header implements RowStore.
func (s *GoogleStore) Header(ctx context.Context, sheet string) ([]string, error) {
	resp, err := s.values.Get(s.spreadsheetID, quoteSheet(sheet)+"!1:1").
		ValueRenderOption(valueRenderFormat).
		Context(ctx).
		Do()
	if err != nil {
		return nil, s.unreachable(err, sheet, "read header")
	}
	if len(resp.Values) == 0 {
		return []string{}, nil
	}

	return cellsToStrings(resp.Values[0]), nil
}

// ReadAll implements RowStore.
func (s *GoogleStore) ReadAll(ctx context.Context, sheet string) ([]Record, error) {
	resp, err := s.values.Get(s.spreadsheetID, quoteSheet(sheet)).
		ValueRenderOption(valueRenderFormat).
		Context(ctx).
		Do()
	if err != nil {
		return nil, s.unreachable(err, sheet, "read rows")
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		rows = append(rows, cellsToStrings(row))
	}

	return toRecords(rows), nil
}

// AppendRow implements RowStore.
func (s *GoogleStore) AppendRow(ctx context.Context, sheet string, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	_, err := s.values.Append(s.spreadsheetID, quoteSheet(sheet), &sheets.ValueRange{
		Values: [][]any{cells},
	}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataRows).
		Context(ctx).
		Do()
	if err != nil {
		return s.unreachable(err, sheet, "append row")
	}

	return nil
}

// FindRow implements RowStore.
func (s *GoogleStore) FindRow(ctx context.Context, sheet, key string) (int, error) {
	resp, err := s.values.Get(s.spreadsheetID, quoteSheet(sheet)+"!A:A").
		ValueRenderOption(valueRenderFormat).
		Context(ctx).
		Do()
	if err != nil {
		return 0, s.unreachable(err, sheet, "scan keys")
	}

	for i, row := range resp.Values {
		if i == 0 || len(row) == 0 {
			continue
		}
		if cellString(row[0]) == key {
			return i + 1, nil
		}
	}

	return 0, ErrRowNotFound
}

// WriteCell implements RowStore.
func (s *GoogleStore) WriteCell(ctx context.Context, sheet string, row, col int, value string) error {
	cell := fmt.Sprintf("%s!%s%d", quoteSheet(sheet), ColumnName(col), row)

	_, err := s.values.Update(s.spreadsheetID, cell, &sheets.ValueRange{
		Values: [][]any{{value}},
	}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return s.unreachable(err, sheet, "write "+cell)
	}

	return nil
}

func (s *GoogleStore) unreachable(err error, sheet, op string) error {
	details := err.Error()

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest:
			if strings.Contains(apiErr.Message, "Unable to parse range") {
				details = "worksheet not found: " + sheet
			}
		case http.StatusUnauthorized, http.StatusForbidden:
			details = "spreadsheet access denied: " + apiErr.Message
		case http.StatusNotFound:
			details = "spreadsheet not found: " + s.spreadsheetID
		}
	}

	s.logger.Warn("Sheets request failed",
		slog.String("sheet", sheet),
		slog.String("op", op),
		slog.Any("error", err),
	)

	return errors.Wrapf(domainerrors.ErrStoreUnreachable.WithDetails(details), "%s on %s", op, sheet)
}

func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func cellsToStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = cellString(v)
	}

	return out
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return nutrition.FormatFloat(t)
	case bool:
		return repository.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
