package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearBoundsHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/gdp/year-bounds.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestYearBoundsHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/gdp/year-bounds.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := retrieveEntry(t, model)
	assert.InDelta(t, 1960, entry["minYear"], 0)
	assert.InDelta(t, 2022, entry["maxYear"], 0)
}
