package restapi

import (
	"net/http"

	"gdpdash.opengdp.org/internal/models"
)

func (api *RestAPI) observationsHandler(w http.ResponseWriter, r *http.Request) {
	selection, fieldErrors := api.parseSelectionParams(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	observations := api.GdpManager.FilterObservations(selection)

	list := make([]models.Observation, 0, len(observations))
	for _, obs := range observations {
		list = append(list, models.NewObservation(obs.CountryCode, obs.Year, obs.GDP.Ptr()))
	}

	response := models.NewListResponse(list, models.NewCountryReferences(selection.CountryCodes))
	api.sendResponse(w, r, response)
}
