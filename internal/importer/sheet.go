package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/xuri/excelize/v2"
)

// Row is one data row of a statement, keyed by normalized header.
type Row struct {
	Line   int // 1-based, header excluded
	Values map[string]string
}

// Get returns the first non-empty value among the given header names
// and whether any of the columns exists at all.
func (r Row) Get(names ...string) (string, bool) {
	present := false
	for _, name := range names {
		v, ok := r.Values[name]
		if !ok {
			continue
		}
		present = true
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", present
}

// Sheet is a parsed spreadsheet: normalized headers and data rows in file order.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// HasHeader reports whether any of names is among the sheet headers.
func (s *Sheet) HasHeader(names ...string) bool {
	for _, h := range s.Headers {
		for _, n := range names {
			if h == n {
				return true
			}
		}
	}
	return false
}

// NormalizeHeader lower-cases a header and collapses its whitespace,
// so " Amount " and "AMOUNT" compare equal.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// ReadFile selects a reader by the file extension.
func ReadFile(fileName string, r io.Reader) (*Sheet, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		return ReadCSV(r)
	case ".xlsx", ".xlsm":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: unsupported statement file type %q", apperrors.ErrValidation, filepath.Ext(fileName))
	}
}

// ReadCSV reads a comma separated statement export. Ragged rows are allowed.
func ReadCSV(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", apperrors.ErrValidation, err)
	}
	return newSheet(records)
}

// ReadXLSX reads the first worksheet of an Excel workbook.
func ReadXLSX(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrValidation)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", apperrors.ErrValidation, sheets[0], err)
	}
	return newSheet(records)
}

func newSheet(records [][]string) (*Sheet, error) {
	start := 0
	for start < len(records) && isBlank(records[start]) {
		start++
	}
	if start == len(records) {
		return nil, fmt.Errorf("%w: statement has no header row", apperrors.ErrValidation)
	}

	headers := make([]string, len(records[start]))
	for i, h := range records[start] {
		headers[i] = NormalizeHeader(h)
	}

	sheet := &Sheet{Headers: headers}
	for i, rec := range records[start+1:] {
		if isBlank(rec) {
			continue
		}
		values := make(map[string]string, len(headers))
		for col, h := range headers {
			if h == "" || col >= len(rec) {
				continue
			}
			if _, dup := values[h]; dup {
				continue
			}
			values[h] = rec[col]
		}
		sheet.Rows = append(sheet.Rows, Row{Line: i + 1, Values: values})
	}
	return sheet, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
