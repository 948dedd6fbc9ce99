package gdp

import (
	"strconv"
	"strings"
)

// Reshape pivots a wide-format table (one column per year) into tidy
// observations, one per (country, year) pair. Cell values are copied
// verbatim: an empty cell becomes the missing sentinel, never zero.
//
// Every integer year in [yearMin, yearMax] must be present as a column named
// by its decimal representation, alongside the country code column; anything
// else in the header fails with *MalformedSchemaError. Output is
// country-major, year-ascending, but callers must not depend on the order.
func Reshape(raw *RawTable, yearMin, yearMax int) ([]Observation, error) {
	codeIdx := -1
	yearIdx := make(map[int]int, len(raw.Headers))

	for i, header := range raw.Headers {
		header = strings.TrimSpace(header)
		if header == CountryCodeColumn {
			codeIdx = i
			continue
		}

		year, err := strconv.Atoi(header)
		if err != nil {
			return nil, &MalformedSchemaError{Column: header, Reason: "header is not a year"}
		}
		yearIdx[year] = i
	}

	if codeIdx < 0 {
		return nil, &MalformedSchemaError{Column: CountryCodeColumn, Reason: "column is absent"}
	}
	for year := yearMin; year <= yearMax; year++ {
		if _, ok := yearIdx[year]; !ok {
			return nil, &MalformedSchemaError{Column: strconv.Itoa(year), Reason: "year column is absent"}
		}
	}

	observations := make([]Observation, 0, len(raw.Rows)*(yearMax-yearMin+1))
	for _, row := range raw.Rows {
		if codeIdx >= len(row) {
			continue
		}
		code := strings.TrimSpace(row[codeIdx])

		for year := yearMin; year <= yearMax; year++ {
			observations = append(observations, Observation{
				CountryCode: code,
				Year:        year,
				GDP:         cellValue(row, yearIdx[year]),
			})
		}
	}

	return observations, nil
}

// cellValue parses one table cell. Empty and unparsable cells both propagate
// as the missing sentinel; the loader performs no validation beyond what the
// reshape itself requires.
func cellValue(row []string, col int) Value {
	if col >= len(row) {
		return Missing
	}

	cell := strings.TrimSpace(row[col])
	if cell == "" {
		return Missing
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return Missing
	}
	return NewValue(f)
}
