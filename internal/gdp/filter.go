package gdp

// FilterObservations returns the observations matching the selection: country
// code in the selected set and year within the inclusive range. An empty
// country set yields an empty result, not an error; surfacing a user-facing
// warning for that case is the presentation layer's job. Input order is
// preserved, nothing more is guaranteed.
func FilterObservations(observations []Observation, selection Selection) []Observation {
	filtered := []Observation{}
	if len(selection.CountryCodes) == 0 {
		return filtered
	}

	codes := make(map[string]bool, len(selection.CountryCodes))
	for _, code := range selection.CountryCodes {
		codes[code] = true
	}

	for _, obs := range observations {
		if codes[obs.CountryCode] && obs.Year >= selection.YearFrom && obs.Year <= selection.YearTo {
			filtered = append(filtered, obs)
		}
	}

	return filtered
}
