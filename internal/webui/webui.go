package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"gdpdash.opengdp.org/internal/app"
)

type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/debug/", http.HandlerFunc(webUI.debugIndexHandler))
}
