package gdp

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Manager owns the GDP dataset and the process-lifetime cache of its tidy
// form. The tidy table is populated at most once per source load and is
// read-only afterwards; the mutex only matters for the first populate after a
// cache invalidation, when concurrent requests could otherwise race.
type Manager struct {
	dataSource  string
	isLocalFile bool
	config      Config

	mu           sync.RWMutex
	observations []Observation
	countries    []string
	minYear      int
	maxYear      int
	lastUpdated  time.Time
	reloadErr    error
}

// InitManager loads the GDP dataset from the configured source, which can be
// either a URL or a local file path, and reshapes it into the tidy table.
func InitManager(config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.DataPath, "http://") && !strings.HasPrefix(config.DataPath, "https://")

	manager := &Manager{
		dataSource:  config.DataPath,
		isLocalFile: isLocalFile,
		config:      config,
	}

	if err := manager.Reload(); err != nil {
		return nil, err
	}

	return manager, nil
}

// Reload re-reads the source file and rebuilds the tidy table. A cold start
// always recomputes.
func (manager *Manager) Reload() error {
	raw, err := loadRawTable(manager.dataSource, manager.isLocalFile)
	if err != nil {
		manager.setReloadErr(err)
		return err
	}

	observations, err := Reshape(raw, manager.config.MinYear, manager.config.MaxYear)
	if err != nil {
		err = fmt.Errorf("error reshaping GDP data: %w", err)
		manager.setReloadErr(err)
		return err
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.reloadErr = nil
	manager.populateLocked(observations)
	return nil
}

func (manager *Manager) setReloadErr(err error) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.reloadErr = err
}

// LastError returns the error from the most recent reload attempt, or nil if
// it succeeded. When a repopulate after InvalidateCache fails, readers see an
// empty dataset and this is the record of why.
func (manager *Manager) LastError() error {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.reloadErr
}

// InvalidateCache drops the cached tidy table. The next read repopulates it
// from the source.
func (manager *Manager) InvalidateCache() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.observations = nil
	manager.countries = nil
}

func (manager *Manager) populateLocked(observations []Observation) {
	manager.observations = observations
	manager.lastUpdated = time.Now()

	seen := make(map[string]bool)
	manager.countries = nil
	manager.minYear, manager.maxYear = 0, 0
	for _, obs := range observations {
		if !seen[obs.CountryCode] {
			seen[obs.CountryCode] = true
			manager.countries = append(manager.countries, obs.CountryCode)
		}
		if manager.minYear == 0 || obs.Year < manager.minYear {
			manager.minYear = obs.Year
		}
		if obs.Year > manager.maxYear {
			manager.maxYear = obs.Year
		}
	}
	sort.Strings(manager.countries)
}

// Observations returns the cached tidy table, repopulating it from the source
// if the cache was invalidated. Callers must treat the returned slice as
// read-only.
func (manager *Manager) Observations() []Observation {
	manager.mu.RLock()
	observations := manager.observations
	manager.mu.RUnlock()

	if observations != nil {
		return observations
	}

	// Cache miss after invalidation. Reload holds the write lock while
	// repopulating, so concurrent first-readers do the work at most twice
	// and never see a partial table. A failed repopulate serves an empty
	// dataset and records the cause for LastError.
	if err := manager.Reload(); err != nil {
		return nil
	}

	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.observations
}

// Countries returns the sorted set of country codes present in the dataset.
func (manager *Manager) Countries() []string {
	manager.Observations()

	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.countries
}

// YearBounds returns the minimum and maximum year observed in the dataset.
func (manager *Manager) YearBounds() (int, int) {
	manager.Observations()

	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.minYear, manager.maxYear
}

// HasCountry reports whether the dataset contains the given country code.
func (manager *Manager) HasCountry(countryCode string) bool {
	for _, code := range manager.Countries() {
		if code == countryCode {
			return true
		}
	}
	return false
}

// FilterObservations returns the tidy rows matching the selection.
func (manager *Manager) FilterObservations(selection Selection) []Observation {
	return FilterObservations(manager.Observations(), selection)
}

// ComputeGrowth computes the growth metric for one country against the full
// tidy table.
func (manager *Manager) ComputeGrowth(countryCode string, yearFrom, yearTo int) (GrowthMetric, error) {
	return ComputeGrowth(manager.Observations(), countryCode, yearFrom, yearTo)
}

func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

func (manager *Manager) DataSource() string {
	return manager.dataSource
}

func (manager *Manager) PrintStatistics() {
	minYear, maxYear := manager.YearBounds()
	fmt.Printf("Source: %s (Local File: %v)\n", manager.dataSource, manager.isLocalFile)
	fmt.Printf("Last Updated: %s\n", manager.LastUpdated())
	fmt.Println("Observations Count: ", len(manager.Observations()))
	fmt.Println("Countries Count: ", len(manager.Countries()))
	fmt.Printf("Year Coverage: %d-%d\n", minYear, maxYear)
	if err := manager.LastError(); err != nil {
		fmt.Printf("Last Reload Error: %v\n", err)
	}
}
