package models

// Observation is one tidy (country, year) GDP reading. Gdp is null when the
// source cell was empty.
type Observation struct {
	CountryCode string   `json:"countryCode"`
	Year        int      `json:"year"`
	Gdp         *float64 `json:"gdp"`
}

// NewObservation creates a new Observation instance with the provided values
func NewObservation(countryCode string, year int, gdp *float64) Observation {
	return Observation{
		CountryCode: countryCode,
		Year:        year,
		Gdp:         gdp,
	}
}
