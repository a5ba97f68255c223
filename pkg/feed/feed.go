// Package feed parses the exported name spreadsheet into untyped rows.
// The spreadsheet can be exported as CSV or XLSX; both produce the
// same rows, keyed by the canonical header names of the names package.
package feed

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/namenest/namenest/pkg/names"
	"github.com/xuri/excelize/v2"
)

// Format of the exported feed.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ParseFormat converts a format name to Format, defaulting to CSV.
func ParseFormat(s string) Format {
	if Format(strings.ToLower(strings.TrimSpace(s))) == XLSX {
		return XLSX
	}
	return CSV
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse converts feed content to rows. The first non-blank line is
// the header; every following non-blank line becomes one row.
func Parse(data []byte, format Format) ([]names.Row, error) {
	switch format {
	case XLSX:
		return parseXLSX(data)
	default:
		return parseCSV(data)
	}
}

func parseCSV(data []byte) ([]names.Row, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ParseError(string(CSV), err)
		}
		records = append(records, rec)
	}
	return toRows(records), nil
}

func parseXLSX(data []byte) ([]names.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, ParseError(string(XLSX), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ParseError(string(XLSX), err)
	}
	return toRows(records), nil
}

func toRows(records [][]string) []names.Row {
	var headers []string
	var res []names.Row
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		if headers == nil {
			headers = rec
			continue
		}
		res = append(res, names.NewRow(headers, rec))
	}
	return res
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
