// Package web holds the server-rendered pages: home, scanner, dashboard and
// the save-step result views. Templates are embedded so the binary is
// self-contained.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render writes one of the embedded templates. Render errors after the status
// line has gone out can only be logged.
func Render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Println("web: render failed:", err)
	}
}
