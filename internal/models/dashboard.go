package models

// SeriesPoint is one chart point of a country's GDP line.
type SeriesPoint struct {
	Year int      `json:"year"`
	Gdp  *float64 `json:"gdp"`
}

// CountrySeries is the line-chart series for one country over the selected
// year range.
type CountrySeries struct {
	CountryCode string        `json:"countryCode"`
	Points      []SeriesPoint `json:"points"`
}

// DashboardData is the combined feed the presentation layer renders as one
// page: chart series for the filtered range, metric cards for the boundary
// years, and an advisory warning when the selection is empty.
type DashboardData struct {
	YearFrom int             `json:"yearFrom"`
	YearTo   int             `json:"yearTo"`
	Series   []CountrySeries `json:"series"`
	Metrics  []GrowthMetric  `json:"metrics"`
	Warning  string          `json:"warning,omitempty"`
}
