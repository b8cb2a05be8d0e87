// Package tabular decodes uploaded delimiter-separated files into ordered
// records with named string fields. Type coercion and row validation are the
// caller's concern; the decoder only maps cells to header names.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Record is one data row keyed by header name. Missing cells map to "".
type Record map[string]string

// Decode reads the whole input. The first row is the header; repeated header
// names get ".1", ".2", ... suffixes so every column stays addressable
// (organizer exports repeat the incorrect-answer column three times).
func Decode(r io.Reader, separator rune) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, raw := range header {
		name := raw
		if n, dup := seen[raw]; dup {
			name = raw + "." + strconv.Itoa(n)
		}
		seen[raw]++
		names[i] = name
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading data row: %w", err)
		}
		rec := make(Record, len(names))
		for i, name := range names {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
