package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// table is a header row plus string cells. Rows may be shorter than the
// header; missing trailing cells read as blank.
type table struct {
	name   string
	header []string
	rows   [][]string
}

// column returns the index of a header, matched exactly after trimming.
func (t *table) column(name string) (int, error) {
	for i, h := range t.header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q in %s", ErrMissingColumn, name, t.name)
}

func (t *table) cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// readTable picks a reader from the file extension.
func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".csv":
		return readCSV(path, ',')
	case ".tsv":
		return readCSV(path, '\t')
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// readXLSX reads the first worksheet; its first row is the header.
func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("[Dataset] failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("[Dataset] %s has no worksheets: %w", path, ErrEmptyTable)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("[Dataset] failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("[Dataset] %s: %w", path, ErrEmptyTable)
	}

	return &table{name: path, header: rows[0], rows: rows[1:]}, nil
}

func readCSV(path string, delimiter rune) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Dataset] failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("[Dataset] %s: %w", path, ErrEmptyTable)
	}
	if err != nil {
		return nil, fmt.Errorf("[Dataset] failed to read %s: %w", path, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("[Dataset] failed to read %s: %w", path, err)
		}
		rows = append(rows, rec)
	}

	return &table{name: path, header: header, rows: rows}, nil
}
