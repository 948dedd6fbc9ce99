package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.GdpManager

	switch dataType {
	case "observations":
		data = manager.Observations()
		title = "GDP Dataset - Tidy Observations"
	case "countries":
		data = manager.Countries()
		title = "GDP Dataset - Countries"
	case "bounds":
		minYear, maxYear := manager.YearBounds()
		data = map[string]int{"minYear": minYear, "maxYear": maxYear}
		title = "GDP Dataset - Year Bounds"
	case "source":
		data = map[string]interface{}{
			"dataSource":  manager.DataSource(),
			"lastUpdated": manager.LastUpdated(),
		}
		title = "GDP Dataset - Source"
	default:
		data = map[string]string{
			"error": "Please use one of the following: observations, countries, bounds, source.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
