package restapi

import (
	"net/http"

	"gdpdash.opengdp.org/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	codes := api.GdpManager.Countries()

	list := make([]models.CountryReference, 0, len(codes))
	for _, code := range codes {
		list = append(list, models.NewCountryReference(code))
	}

	response := models.NewListResponse(list, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
