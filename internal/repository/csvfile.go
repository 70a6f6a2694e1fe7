package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoRecord marks the absence of a record in a store. Services translate
// it into the caller-facing not-found taxonomy.
var ErrNoRecord = errors.New("record not found")

// readRows loads all data rows from the CSV file at path, skipping the
// header line and any row that does not carry exactly fieldCount fields.
// A missing file is not an error; it yields an empty set.
func readRows(path string, fieldCount int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed lines are dropped, not fatal.
			continue
		}
		if first {
			first = false
			continue
		}
		if len(record) != fieldCount {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// writeRows rewrites the file at path in full: header line, then one line
// per row in the given order.
func writeRows(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
