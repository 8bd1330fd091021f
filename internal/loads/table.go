// Package loads provides the read-only load reference table served by the
// load lookup endpoint. The table is built once at startup and never
// mutated afterwards, so handlers may read it concurrently without locks.
package loads

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/freightline/backend/internal/models"
)

var (
	// ErrNotFound means the table has no entry for the requested key.
	ErrNotFound = errors.New("load not found")

	// ErrUnavailable means the table is empty, either because the source
	// file failed to load or because it held no rows.
	ErrUnavailable = errors.New("no load data available")
)

// fieldsPerRow is the fixed column count of the source file:
// reference_number, origin, destination, equipment_type, rate, commodity.
const fieldsPerRow = 6

// Table maps reference numbers to load records.
type Table struct {
	records map[string]models.LoadRecord
}

// Load reads the reference table from a comma-delimited file. The first
// line is a header and is skipped. Rows are split on every comma with no
// quoting support; a comma inside a field value shifts the remaining
// columns for that row. This is a documented constraint on the input
// file, not something the parser detects.
//
// On any read or parse failure Load returns an empty (but usable) table
// together with the error, so the caller can log the failure and keep
// serving. Duplicate reference numbers are last-write-wins.
func Load(path string) (*Table, error) {
	empty := &Table{records: make(map[string]models.LoadRecord)}

	file, err := os.Open(path)
	if err != nil {
		return empty, err
	}
	defer file.Close()

	records := make(map[string]models.LoadRecord)

	scanner := bufio.NewScanner(file)
	header := true
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if header {
			header = false
			continue
		}
		if line == "" {
			continue
		}

		values := strings.Split(line, ",")
		if len(values) < fieldsPerRow {
			return empty, fmt.Errorf("line %d: expected %d fields, got %d", lineNum, fieldsPerRow, len(values))
		}

		records[values[0]] = models.LoadRecord{
			ReferenceNumber: values[0],
			Origin:          values[1],
			Destination:     values[2],
			EquipmentType:   values[3],
			Rate:            values[4],
			Commodity:       values[5],
		}
	}
	if err := scanner.Err(); err != nil {
		return empty, err
	}

	return &Table{records: records}, nil
}

// Lookup returns the record for a reference number. An empty table fails
// with ErrUnavailable so callers can distinguish "load failed at startup"
// from "key absent".
func (t *Table) Lookup(referenceNumber string) (models.LoadRecord, error) {
	if len(t.records) == 0 {
		return models.LoadRecord{}, ErrUnavailable
	}
	record, ok := t.records[referenceNumber]
	if !ok {
		return models.LoadRecord{}, ErrNotFound
	}
	return record, nil
}

// Len reports the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}
