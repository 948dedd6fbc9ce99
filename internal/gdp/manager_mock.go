package gdp

// MockAddObservation appends a (country, year) reading to the cached tidy
// table for use in tests. No-op if the pair already exists.
func (m *Manager) MockAddObservation(countryCode string, year int, value Value) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, obs := range m.observations {
		if obs.CountryCode == countryCode && obs.Year == year {
			return
		}
	}

	observations := append(m.observations, Observation{
		CountryCode: countryCode,
		Year:        year,
		GDP:         value,
	})
	m.populateLocked(observations)
}
