package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"idscan/internal/handlers"
	"idscan/internal/middleware"
)

func RegisterRouter(h *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)

	// pages
	r.Get("/", h.Home)
	r.Get("/scan", h.ScanPage)
	r.Get("/dashboard", h.DashboardPage)

	// ingest workflow
	r.Post("/extract", h.Extract)
	r.Post("/ingest", h.Ingest)

	// record store
	r.Get("/records", h.SaveRecord)
	r.Get("/records/list", h.ListRecords)
	r.Get("/records/{idNumber}/qrcode", h.RecordQRCode)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	return r
}
