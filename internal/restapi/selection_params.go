package restapi

import (
	"net/http"

	"gdpdash.opengdp.org/internal/gdp"
	"gdpdash.opengdp.org/internal/utils"
)

// parseSelectionParams decodes the countries/fromYear/toYear query parameters
// shared by the observations and dashboard endpoints. Omitted years default
// to the dataset bounds. The second return value holds field errors; the
// selection is only valid when it is empty.
func (api *RestAPI) parseSelectionParams(r *http.Request) (gdp.Selection, map[string][]string) {
	query := r.URL.Query()
	minYear, maxYear := api.GdpManager.YearBounds()
	fieldErrors := map[string][]string{}

	countries, err := utils.ParseCountriesParam(query.Get("countries"))
	if err != nil {
		fieldErrors["countries"] = append(fieldErrors["countries"], err.Error())
	}

	yearFrom, err := utils.ParseYearParam(query.Get("fromYear"), minYear)
	if err != nil {
		fieldErrors["fromYear"] = append(fieldErrors["fromYear"], err.Error())
	}

	yearTo, err := utils.ParseYearParam(query.Get("toYear"), maxYear)
	if err != nil {
		fieldErrors["toYear"] = append(fieldErrors["toYear"], err.Error())
	}

	if len(fieldErrors) == 0 {
		if err := utils.ValidateYearRange(yearFrom, yearTo, minYear, maxYear); err != nil {
			fieldErrors["fromYear"] = append(fieldErrors["fromYear"], err.Error())
		}
	}

	return gdp.Selection{
		YearFrom:     yearFrom,
		YearTo:       yearTo,
		CountryCodes: countries,
	}, fieldErrors
}
