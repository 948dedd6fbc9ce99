package restapi

import (
	"net/http"

	"gdpdash.opengdp.org/internal/models"
)

func (api *RestAPI) yearBoundsHandler(w http.ResponseWriter, r *http.Request) {
	minYear, maxYear := api.GdpManager.YearBounds()

	response := models.NewEntryResponse(models.NewYearBounds(minYear, maxYear), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
