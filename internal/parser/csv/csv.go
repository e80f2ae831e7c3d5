// Package csv reads CSV input into a tabular.Frame for bulk insertion.
//
// The reader handles the usual real-world wrinkles of exported data: a UTF-8
// BOM on the first header cell, localized or inconsistent header names
// (optional normalization folds diacritics and maps to snake_case), and
// per-cell whitespace trimming. All cell values are kept as strings; the
// literal insert path maps the "nan"/"None" sentinels to NULL downstream.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"relstore/internal/tabular"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Options configures the CSV reader. All fields are optional; sensible
// defaults are applied when a field is zero.
type Options struct {
	// HasHeader indicates whether the first row contains column headers.
	// Without a header, Columns must name the columns positionally.
	HasHeader bool

	// Columns names the columns when HasHeader is false.
	Columns []string

	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// TrimSpace trims leading/trailing spaces from each field value.
	TrimSpace bool

	// HeaderMap maps source header names to canonical column names. It is
	// applied after NormalizeHeaders.
	HeaderMap map[string]string

	// NormalizeHeaders lowercases headers, folds diacritics, and replaces
	// whitespace runs with underscores, so "Platnost Do" and "Plátnost do"
	// both become "platnost_do".
	NormalizeHeaders bool
}

// Reader parses CSV input according to Options. It is safe to reuse across
// inputs, but Reader itself is not concurrency-safe.
type Reader struct{ opt Options }

// NewReader constructs a Reader with the provided Options.
func NewReader(opt Options) *Reader { return &Reader{opt: opt} }

// foldDiacritics removes combining marks after NFD decomposition, so "á"
// becomes "a".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader canonicalizes one header cell: BOM stripped, diacritics
// folded, lowercased, whitespace runs replaced with a single underscore.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, utf8BOM)
	if folded, _, err := transform.String(foldDiacritics, h); err == nil {
		h = folded
	}
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.Fields(h), "_")
}

// ReadFrame reads the entire CSV stream into a Frame. Every row must have
// the same field count as the header (encoding/csv enforces this).
func (r *Reader) ReadFrame(in io.Reader) (*tabular.Frame, error) {
	cr := csv.NewReader(in)
	if r.opt.Comma != 0 {
		cr.Comma = r.opt.Comma
	}

	cols := r.opt.Columns
	if r.opt.HasHeader {
		header, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("csv: read header: %w", err)
		}
		cols = r.headers(header)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("csv: no columns: set HasHeader or Columns")
	}

	f := tabular.New(cols...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}
		if len(rec) != len(cols) {
			return nil, fmt.Errorf("csv: row has %d fields; want %d", len(rec), len(cols))
		}
		row := make([]any, len(rec))
		for i, cell := range rec {
			if r.opt.TrimSpace {
				cell = strings.TrimSpace(cell)
			}
			row[i] = cell
		}
		if err := f.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("csv: append row: %w", err)
		}
	}
	return f, nil
}

// headers canonicalizes the raw header row.
func (r *Reader) headers(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		if r.opt.NormalizeHeaders {
			h = NormalizeHeader(h)
		} else if r.opt.TrimSpace {
			h = strings.TrimSpace(h)
		}
		if mapped, ok := r.opt.HeaderMap[h]; ok {
			h = mapped
		}
		out[i] = h
	}
	return out
}
