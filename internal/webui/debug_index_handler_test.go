package webui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gdpdash.opengdp.org/internal/app"
	"gdpdash.opengdp.org/internal/gdp"
	"gdpdash.opengdp.org/internal/models"
)

func createTestWebUI(t *testing.T) *WebUI {
	manager, err := gdp.InitManager(gdp.NewConfig(models.GetFixturePath(t, "gdp_sample.csv"), false))
	require.NoError(t, err)

	return &WebUI{Application: &app.Application{GdpManager: manager}}
}

func serveDebugEndpoint(t *testing.T, endpoint string) *httptest.ResponseRecorder {
	webUI := createTestWebUI(t)
	router := httprouter.New()
	webUI.SetRoutes(router)

	req := httptest.NewRequest("GET", endpoint, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestDebugIndexCountries(t *testing.T) {
	rec := serveDebugEndpoint(t, "/debug/?dataType=countries")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "DEU")
	assert.Contains(t, rec.Body.String(), "GDP Dataset - Countries")
}

func TestDebugIndexBounds(t *testing.T) {
	rec := serveDebugEndpoint(t, "/debug/?dataType=bounds")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1960")
	assert.Contains(t, rec.Body.String(), "2022")
}

func TestDebugIndexUnknownDataType(t *testing.T) {
	rec := serveDebugEndpoint(t, "/debug/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Choose a data type")
}
