package models

// GrowthMetric reports GDP growth for one country between two boundary years.
// Raw values are nullable; the Value and Growth fields carry the
// display-formatted versions (billions scaling, "4.50x" ratio, "N/A" when not
// available).
type GrowthMetric struct {
	CountryCode   string   `json:"countryCode"`
	YearFrom      int      `json:"yearFrom"`
	YearTo        int      `json:"yearTo"`
	GdpAtYearFrom *float64 `json:"gdpAtYearFrom"`
	GdpAtYearTo   *float64 `json:"gdpAtYearTo"`
	Value         string   `json:"value"`
	Growth        string   `json:"growth"`
}

// NewGrowthMetric creates a new GrowthMetric instance with the provided raw
// values, deriving the formatted display fields.
func NewGrowthMetric(countryCode string, yearFrom, yearTo int, gdpAtYearFrom, gdpAtYearTo, ratio *float64) GrowthMetric {
	return GrowthMetric{
		CountryCode:   countryCode,
		YearFrom:      yearFrom,
		YearTo:        yearTo,
		GdpAtYearFrom: gdpAtYearFrom,
		GdpAtYearTo:   gdpAtYearTo,
		Value:         FormatBillions(gdpAtYearTo),
		Growth:        FormatGrowthRatio(ratio),
	}
}

// NewUnavailableGrowthMetric creates a GrowthMetric whose values could not be
// computed at all, rendered as "N/A" throughout.
func NewUnavailableGrowthMetric(countryCode string, yearFrom, yearTo int) GrowthMetric {
	return NewGrowthMetric(countryCode, yearFrom, yearTo, nil, nil, nil)
}
