package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"gdpdash.opengdp.org/internal/app"
	"gdpdash.opengdp.org/internal/appconf"
	"gdpdash.opengdp.org/internal/gdp"
	"gdpdash.opengdp.org/internal/logging"
	"gdpdash.opengdp.org/internal/models"
)

// createTestApi creates a new RestAPI instance with a GDP manager initialized for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	gdpConfig := gdp.NewConfig(models.GetFixturePath(t, "gdp_sample.csv"), false)
	gdpManager, err := gdp.InitManager(gdpConfig)
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		GdpConfig:  gdpConfig,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		GdpManager: gdpManager,
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// retrieveEntry unwraps the {entry, references} data block of a response model.
func retrieveEntry(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	return entry
}

// retrieveList unwraps the {list, references} data block of a response model.
func retrieveList(t *testing.T, model models.ResponseModel) []interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)

	return list
}
