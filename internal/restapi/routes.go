package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/gdp/observations.json", validateAPIKey(api, api.observationsHandler))
	router.Handler(http.MethodGet, "/api/gdp/countries.json", validateAPIKey(api, api.countriesHandler))
	router.Handler(http.MethodGet, "/api/gdp/year-bounds.json", validateAPIKey(api, api.yearBoundsHandler))
	router.Handler(http.MethodGet, "/api/gdp/dashboard.json", validateAPIKey(api, api.dashboardHandler))
	router.Handler(http.MethodGet, "/api/gdp/growth/:id", validateAPIKey(api, api.growthHandler))
}
