package restapi

import (
	"errors"
	"net/http"
	"strings"

	"gdpdash.opengdp.org/internal/gdp"
	"gdpdash.opengdp.org/internal/models"
	"gdpdash.opengdp.org/internal/utils"
)

func (api *RestAPI) growthHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(utils.ExtractIDFromParams(r, "id"))
	if err := utils.ValidateCountryCode(code); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	selection, fieldErrors := api.parseSelectionParams(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if !api.GdpManager.HasCountry(code) {
		api.sendNotFound(w, r)
		return
	}

	// Growth is always computed against the full table, never the filtered
	// chart view.
	metric, err := api.GdpManager.ComputeGrowth(code, selection.YearFrom, selection.YearTo)
	if err != nil {
		var missingErr *gdp.MissingObservationError
		if errors.As(err, &missingErr) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewGrowthMetric(
		metric.CountryCode,
		metric.YearFrom,
		metric.YearTo,
		metric.GDPAtYearFrom.Ptr(),
		metric.GDPAtYearTo.Ptr(),
		metric.Ratio.Ptr(),
	)

	response := models.NewEntryResponse(entry, models.NewCountryReferences([]string{code}))
	api.sendResponse(w, r, response)
}
