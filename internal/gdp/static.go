package gdp

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
)

// CountryCodeColumn is the identifier column of the wide-format source table.
const CountryCodeColumn = "Country Code"

// RawTable is the wide-format source table as parsed from CSV: one header row
// and one data row per country, with one column per calendar year.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

func rawCSVData(source string, isLocalFile bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GDP file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GDP data: %w", err)
		}
		defer resp.Body.Close() // nolint

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("error downloading GDP data: unexpected status %s", resp.Status)
		}

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GDP data: %w", err)
		}
	}
	return b, nil
}

func parseRawTable(b []byte) (*RawTable, error) {
	reader := csv.NewReader(bytes.NewReader(b))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing GDP CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("error parsing GDP CSV: file is empty")
	}

	return &RawTable{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// loadRawTable loads and parses the wide-format GDP table from either a URL
// or a local file.
func loadRawTable(source string, isLocalFile bool) (*RawTable, error) {
	b, err := rawCSVData(source, isLocalFile)
	if err != nil {
		return nil, fmt.Errorf("error reading GDP data: %w", err)
	}

	return parseRawTable(b)
}
