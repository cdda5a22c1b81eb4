// Package csvio decodes transaction records from CSV input and encodes final
// account state as CSV output.
//
// The reader is a parse-don't-validate boundary: every row it returns is a
// structurally valid record.Record. Invalid rows come back as RowError so the
// caller can report and skip them; only stream-level failures are fatal.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hameerabbasi/payment-engine/record"
)

// RowError reports a single undecodable row. The stream remains usable; the
// caller skips the row and keeps reading.
type RowError struct {
	// Line is the 1-based input line the row started on.
	Line int
	Err  error
}

// Error returns the formatted row error string.
func (e RowError) Error() string {
	return fmt.Sprintf("row at line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying decode error.
func (e RowError) Unwrap() error { return e.Err }

// Reader decodes transaction records from a CSV stream with a header row of
// `type, client, tx, amount`. The tx column may also be named id, the amount
// column may be absent for lifecycle rows, and all fields are
// whitespace-trimmed.
type Reader struct {
	csv *csv.Reader

	// Column indices resolved from the header row; -1 when absent.
	kindCol, clientCol, txCol, amountCol int

	headerRead bool
}

// NewReader creates a record reader on r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr, amountCol: -1}
}

// Read returns the next structurally valid record. It returns io.EOF at end
// of stream, a RowError for a skippable invalid row, and any other error for
// a fatal stream failure.
func (r *Reader) Read() (record.Record, error) {
	if !r.headerRead {
		if err := r.readHeader(); err != nil {
			return record.Record{}, err
		}
	}

	row, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return record.Record{}, io.EOF
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return record.Record{}, RowError{Line: parseErr.Line, Err: parseErr.Err}
		}

		return record.Record{}, err
	}

	rec, err := r.decodeRow(row)
	if err != nil {
		line, _ := r.csv.FieldPos(0)
		return record.Record{}, RowError{Line: line, Err: err}
	}

	return rec, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Do not wrap the sentinel: a missing header is a fatal stream
			// failure, not end of input.
			return errors.New("missing header row")
		}

		return fmt.Errorf("failed to read header row: %w", err)
	}

	r.kindCol, r.clientCol, r.txCol = -1, -1, -1

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "type":
			r.kindCol = i
		case "client":
			r.clientCol = i
		case "tx", "id":
			r.txCol = i
		case "amount":
			r.amountCol = i
		}
	}

	if r.kindCol < 0 || r.clientCol < 0 || r.txCol < 0 {
		return fmt.Errorf("header row must name the type, client, and tx columns, got %q", header)
	}

	r.headerRead = true

	return nil
}

func (r *Reader) decodeRow(row []string) (record.Record, error) {
	kindField, err := r.field(row, r.kindCol, "type")
	if err != nil {
		return record.Record{}, err
	}

	kind, err := record.ParseKind(kindField)
	if err != nil {
		return record.Record{}, err
	}

	clientField, err := r.field(row, r.clientCol, "client")
	if err != nil {
		return record.Record{}, err
	}

	client, err := strconv.ParseUint(clientField, 10, 16)
	if err != nil {
		return record.Record{}, fmt.Errorf("invalid client id %q: %w", clientField, err)
	}

	txField, err := r.field(row, r.txCol, "tx")
	if err != nil {
		return record.Record{}, err
	}

	tx, err := strconv.ParseUint(txField, 10, 32)
	if err != nil {
		return record.Record{}, fmt.Errorf("invalid transaction id %q: %w", txField, err)
	}

	var amount *decimal.Decimal

	if r.amountCol >= 0 && r.amountCol < len(row) {
		if field := strings.TrimSpace(row[r.amountCol]); field != "" {
			parsed, err := decimal.NewFromString(field)
			if err != nil {
				return record.Record{}, fmt.Errorf("invalid amount %q: %w", field, err)
			}

			amount = &parsed
		}
	}

	return record.New(kind, uint16(client), uint32(tx), amount)
}

func (r *Reader) field(row []string, col int, name string) (string, error) {
	if col >= len(row) {
		return "", fmt.Errorf("missing %s column", name)
	}

	field := strings.TrimSpace(row[col])
	if field == "" {
		return "", fmt.Errorf("empty %s column", name)
	}

	return field, nil
}
