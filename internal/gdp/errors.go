package gdp

import "fmt"

// MalformedSchemaError indicates that the source table does not match the
// expected wide-format schema: a year column is absent, a header fails to
// parse as a year, or the country code column is missing. It is fatal at load
// time.
type MalformedSchemaError struct {
	Column string
	Reason string
}

func (e *MalformedSchemaError) Error() string {
	return fmt.Sprintf("malformed schema: column %q: %s", e.Column, e.Reason)
}

// MissingObservationError indicates that a (country, year) row the dataset
// contract guarantees is absent from the tidy table. It fails the single
// metric computation that needed the row, not the whole request.
type MissingObservationError struct {
	CountryCode string
	Year        int
}

func (e *MissingObservationError) Error() string {
	return fmt.Sprintf("missing observation for country %q at year %d", e.CountryCode, e.Year)
}
