package models

// YearBounds is the inclusive year coverage of the dataset.
type YearBounds struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

// NewYearBounds creates a new YearBounds instance with the provided values
func NewYearBounds(minYear, maxYear int) YearBounds {
	return YearBounds{
		MinYear: minYear,
		MaxYear: maxYear,
	}
}
