package gdp

// ComputeGrowth computes the growth metric for one country between two
// boundary years. It must be given the full tidy table, not a filtered view:
// growth reflects the true boundary years regardless of what the chart
// currently displays.
//
// A (country, year) pair with no row at all fails with
// *MissingObservationError. A row whose value is the missing sentinel is the
// normal path: the ratio is reported as not available when either boundary
// value is absent. A valid zero at yearFrom is a numeric case and divides
// through as usual.
func ComputeGrowth(observations []Observation, countryCode string, yearFrom, yearTo int) (GrowthMetric, error) {
	from, ok := findObservation(observations, countryCode, yearFrom)
	if !ok {
		return GrowthMetric{}, &MissingObservationError{CountryCode: countryCode, Year: yearFrom}
	}

	to, ok := findObservation(observations, countryCode, yearTo)
	if !ok {
		return GrowthMetric{}, &MissingObservationError{CountryCode: countryCode, Year: yearTo}
	}

	metric := GrowthMetric{
		CountryCode:   countryCode,
		YearFrom:      yearFrom,
		YearTo:        yearTo,
		GDPAtYearFrom: from.GDP,
		GDPAtYearTo:   to.GDP,
	}

	if from.GDP.Valid && to.GDP.Valid {
		metric.Ratio = NewValue(to.GDP.Float64 / from.GDP.Float64)
	}

	return metric, nil
}

func findObservation(observations []Observation, countryCode string, year int) (Observation, bool) {
	for _, obs := range observations {
		if obs.CountryCode == countryCode && obs.Year == year {
			return obs, true
		}
	}
	return Observation{}, false
}
