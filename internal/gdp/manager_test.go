package gdp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gdpdash.opengdp.org/internal/models"
)

func testManager(t *testing.T) *Manager {
	t.Helper()

	manager, err := InitManager(NewConfig(models.GetFixturePath(t, "gdp_sample.csv"), false))
	require.NoError(t, err)

	return manager
}

func TestManagerObservations(t *testing.T) {
	manager := testManager(t)

	observations := manager.Observations()
	assert.Len(t, observations, 6*63)
}

func TestManagerCountries(t *testing.T) {
	manager := testManager(t)

	assert.Equal(t, []string{"BRA", "DEU", "FRA", "GBR", "JPN", "MEX"}, manager.Countries())
	assert.True(t, manager.HasCountry("DEU"))
	assert.False(t, manager.HasCountry("XYZ"))
}

func TestManagerYearBounds(t *testing.T) {
	manager := testManager(t)

	minYear, maxYear := manager.YearBounds()
	assert.Equal(t, 1960, minYear)
	assert.Equal(t, 2022, maxYear)
}

func TestManagerFilterObservations(t *testing.T) {
	manager := testManager(t)

	filtered := manager.FilterObservations(Selection{
		YearFrom:     2020,
		YearTo:       2022,
		CountryCodes: []string{"DEU", "FRA"},
	})
	assert.Len(t, filtered, 6)
}

func TestManagerComputeGrowth(t *testing.T) {
	manager := testManager(t)

	metric, err := manager.ComputeGrowth("DEU", 1960, 2022)
	require.NoError(t, err)
	require.True(t, metric.Ratio.Valid)
	assert.InDelta(t, 4.5, metric.Ratio.Float64, 1e-12)
}

func TestManagerComputeGrowthMissingStartIsNotAvailable(t *testing.T) {
	manager := testManager(t)

	// BRA has empty cells for 1960-1964 in the fixture.
	metric, err := manager.ComputeGrowth("BRA", 1960, 2022)
	require.NoError(t, err)
	assert.False(t, metric.GDPAtYearFrom.Valid)
	assert.False(t, metric.Ratio.Valid)
}

func TestManagerInvalidateCacheRepopulates(t *testing.T) {
	manager := testManager(t)

	first := manager.LastUpdated()
	manager.InvalidateCache()

	observations := manager.Observations()
	assert.Len(t, observations, 6*63)
	assert.True(t, manager.LastUpdated().After(first) || manager.LastUpdated().Equal(first))
}

func TestManagerFailedRepopulateRecordsError(t *testing.T) {
	fixture, err := os.ReadFile(models.GetFixturePath(t, "gdp_sample.csv"))
	require.NoError(t, err)

	dataPath := filepath.Join(t.TempDir(), "gdp.csv")
	require.NoError(t, os.WriteFile(dataPath, fixture, 0o644))

	manager, err := InitManager(NewConfig(dataPath, false))
	require.NoError(t, err)
	require.NoError(t, manager.LastError())

	// The source disappears after the cache is dropped, so the repopulate
	// fails and readers see an empty dataset with the cause recorded.
	require.NoError(t, os.Remove(dataPath))
	manager.InvalidateCache()

	assert.Empty(t, manager.Observations())
	assert.Error(t, manager.LastError())

	// Restoring the source lets the next read recover.
	require.NoError(t, os.WriteFile(dataPath, fixture, 0o644))
	assert.Len(t, manager.Observations(), 6*63)
	assert.NoError(t, manager.LastError())
}

func TestManagerMockAddObservation(t *testing.T) {
	manager := testManager(t)

	manager.MockAddObservation("USA", 2022, NewValue(25e12))
	assert.True(t, manager.HasCountry("USA"))

	// Adding the same pair again is a no-op.
	count := len(manager.Observations())
	manager.MockAddObservation("USA", 2022, NewValue(1))
	assert.Len(t, manager.Observations(), count)
}
