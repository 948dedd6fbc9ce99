package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"gdpdash.opengdp.org/internal/app"
	"gdpdash.opengdp.org/internal/appconf"
	"gdpdash.opengdp.org/internal/gdp"
	"gdpdash.opengdp.org/internal/logging"
	"gdpdash.opengdp.org/internal/restapi"
	"gdpdash.opengdp.org/internal/webui"
)

func main() {
	// Optional .env file; flags still win over environment values.
	_ = godotenv.Load()

	var (
		port        int
		envFlag     string
		apiKeysFlag string
		dataPath    string
		rateLimit   int
		verbose     bool
	)

	flag.IntVar(&port, "port", envInt("GDP_PORT", 4000), "API server port")
	flag.StringVar(&envFlag, "env", envString("GDP_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envString("GDP_API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	flag.StringVar(&dataPath, "data-path", envString("GDP_DATA_PATH", "testdata/gdp_sample.csv"), "Path or URL for the wide-format GDP CSV")
	flag.IntVar(&rateLimit, "rate-limit", envInt("GDP_RATE_LIMIT", 100), "Requests per second per API key (0 disables limiting)")
	flag.BoolVar(&verbose, "verbose", false, "Print dataset statistics on startup")
	flag.Parse()

	var apiKeys []string
	for _, key := range strings.Split(apiKeysFlag, ",") {
		if key = strings.TrimSpace(key); key != "" {
			apiKeys = append(apiKeys, key)
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	gdpConfig := gdp.NewConfig(dataPath, verbose)
	gdpManager, err := gdp.InitManager(gdpConfig)
	if err != nil {
		// A malformed source schema is fatal; there is no degraded load.
		logging.LogError(logger, "failed to initialize GDP manager", err,
			slog.String("data_path", dataPath))
		os.Exit(1)
	}

	if verbose {
		gdpManager.PrintStatistics()
	}

	application := &app.Application{
		Config: appconf.Config{
			Port:      port,
			Env:       appconf.EnvFlagToEnvironment(envFlag),
			ApiKeys:   apiKeys,
			RateLimit: rateLimit,
			Verbose:   verbose,
		},
		GdpConfig:  gdpConfig,
		Logger:     logger,
		GdpManager: gdpManager,
	}

	router := httprouter.New()

	restAPI := restapi.NewRestAPI(application)
	restAPI.SetRoutes(router)

	webUI := &webui.WebUI{Application: application}
	webUI.SetRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      restAPI.ApplyMiddleware(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", envFlag)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func envString(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	if value := os.Getenv(name); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
