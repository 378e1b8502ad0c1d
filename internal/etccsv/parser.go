// Package etccsv parses ETC usage-history CSV exports. The exports come as
// Shift_JIS more often than UTF-8, use Japanese column headers, and vary in
// field count per row, so the parser decodes defensively and resolves
// columns strictly by header name.
package etccsv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"tollbook/internal/model"
	"tollbook/internal/service"
)

// Column headers as they appear in the exports. A header that does not match
// exactly leaves its column absent; dependent fields stay empty.
const (
	colDepartureDate = "利用年月日（自）"
	colDepartureTime = "時分（自）"
	colOrigin        = "利用ＩＣ（自）"
	colDestination   = "利用ＩＣ（至）"
	colFare          = "通行料金"
	colDeferredFare  = "後納料金"
	colRemark        = "備考"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser reads ETC usage-history CSV files.
type Parser struct{}

var _ service.RecordSource = (*Parser)(nil)

// NewParser creates a new ETC CSV parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads one CSV export and returns its raw trip records.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.RawTripRecord, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	decoded, encoding, err := decode(raw)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(decoded))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	header := headerIndex(rows[0])
	if _, ok := header[colDepartureDate]; !ok {
		slog.Warn("CSV header has no departure date column; all records will be dropped",
			"expected", colDepartureDate)
	}

	records := make([]model.RawTripRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.RawTripRecord{
			DepartureDate: field(row, header, colDepartureDate),
			DepartureTime: field(row, header, colDepartureTime),
			Origin:        field(row, header, colOrigin),
			Destination:   field(row, header, colDestination),
			Fare:          fareField(row, header),
			Remark:        field(row, header, colRemark),
		})
	}

	slog.Info("Parsed ETC CSV",
		"records", len(records),
		"encoding", encoding)

	return records, nil
}

// decode sniffs the byte stream: a UTF-8 BOM or valid UTF-8 is taken as-is,
// anything else is decoded as Shift_JIS.
func decode(raw []byte) (decoded []byte, encoding string, err error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		return raw[len(utf8BOM):], "utf-8", nil
	}
	if utf8.Valid(raw) {
		return raw, "utf-8", nil
	}

	decoded, _, err = transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode Shift_JIS: %w", err)
	}
	return decoded, "shift_jis", nil
}

// headerIndex maps exact header names to their column positions.
func headerIndex(headerRow []string) map[string]int {
	index := make(map[string]int, len(headerRow))
	for i, name := range headerRow {
		index[name] = i
	}
	return index
}

// field returns the named column's value for a row, or "" when the column is
// absent or the row is short.
func field(row []string, header map[string]int, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// fareField prefers the toll fare column and falls back to the deferred
// payment column some card issuers use instead.
func fareField(row []string, header map[string]int) string {
	if v := field(row, header, colFare); v != "" {
		return v
	}
	return field(row, header, colDeferredFare)
}
