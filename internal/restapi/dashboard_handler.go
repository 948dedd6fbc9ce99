package restapi

import (
	"log/slog"
	"net/http"

	"gdpdash.opengdp.org/internal/logging"
	"gdpdash.opengdp.org/internal/models"
)

// emptySelectionWarning mirrors the advisory the dashboard shows when no
// country is selected. An empty selection is not an error.
const emptySelectionWarning = "Please select at least one country."

// dashboardHandler returns everything one dashboard render needs: the
// filtered chart series plus a metric card per selected country for the
// boundary years.
func (api *RestAPI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	selection, fieldErrors := api.parseSelectionParams(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	entry := models.DashboardData{
		YearFrom: selection.YearFrom,
		YearTo:   selection.YearTo,
		Series:   []models.CountrySeries{},
		Metrics:  []models.GrowthMetric{},
	}

	if len(selection.CountryCodes) == 0 {
		entry.Warning = emptySelectionWarning
		api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
		return
	}

	points := make(map[string][]models.SeriesPoint)
	for _, obs := range api.GdpManager.FilterObservations(selection) {
		points[obs.CountryCode] = append(points[obs.CountryCode], models.SeriesPoint{
			Year: obs.Year,
			Gdp:  obs.GDP.Ptr(),
		})
	}

	for _, code := range selection.CountryCodes {
		series := points[code]
		if series == nil {
			series = []models.SeriesPoint{}
		}
		entry.Series = append(entry.Series, models.CountrySeries{
			CountryCode: code,
			Points:      series,
		})

		// A metric card that cannot be computed degrades to "N/A" instead
		// of failing the whole render.
		metric, err := api.GdpManager.ComputeGrowth(code, selection.YearFrom, selection.YearTo)
		if err != nil {
			logging.LogError(api.Logger, "failed to compute growth metric", err,
				slog.String("country_code", code),
				slog.String("component", "dashboard"))
			entry.Metrics = append(entry.Metrics, models.NewUnavailableGrowthMetric(code, selection.YearFrom, selection.YearTo))
			continue
		}

		entry.Metrics = append(entry.Metrics, models.NewGrowthMetric(
			metric.CountryCode,
			metric.YearFrom,
			metric.YearTo,
			metric.GDPAtYearFrom.Ptr(),
			metric.GDPAtYearTo.Ptr(),
			metric.Ratio.Ptr(),
		))
	}

	response := models.NewEntryResponse(entry, models.NewCountryReferences(selection.CountryCodes))
	api.sendResponse(w, r, response)
}
