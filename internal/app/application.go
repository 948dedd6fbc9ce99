package app

import (
	"log/slog"

	"gdpdash.opengdp.org/internal/appconf"
	"gdpdash.opengdp.org/internal/gdp"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the server configuration, the GDP dataset configuration,
// a structured logger, and the dataset manager.
type Application struct {
	Config     appconf.Config
	GdpConfig  gdp.Config
	Logger     *slog.Logger
	GdpManager *gdp.Manager
}
