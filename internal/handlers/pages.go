package handlers

import (
	"net/http"

	"idscan/internal/web"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	web.Render(w, http.StatusOK, "home.html", nil)
}

func (h *Handler) ScanPage(w http.ResponseWriter, r *http.Request) {
	web.Render(w, http.StatusOK, "scan.html", nil)
}

func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	web.Render(w, http.StatusOK, "dashboard.html", nil)
}
