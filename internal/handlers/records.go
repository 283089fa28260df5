package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"

	"idscan/internal/models"
	"idscan/internal/store"
	"idscan/internal/web"
)

// SaveRecord handles GET /records: the save step driven by the review form.
// Query parameters instead of a body keep the form a plain browser
// navigation, so the result pages render directly.
func (h *Handler) SaveRecord(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("name"))
	id := strings.TrimSpace(q.Get("id"))
	dob := strings.TrimSpace(q.Get("dob"))
	expiry := strings.TrimSpace(q.Get("expiry"))
	address := strings.TrimSpace(q.Get("address"))

	log.Println("save: received name:", name, "id:", id, "dob:", dob)

	var missing []string
	if name == "" {
		missing = append(missing, "Full Name")
	}
	if id == "" {
		missing = append(missing, "ID Number")
	}
	if dob == "" {
		missing = append(missing, "Date of Birth")
	}
	if len(missing) > 0 {
		web.Render(w, http.StatusBadRequest, "save_missing.html", map[string]any{"Missing": missing})
		return
	}

	// Advisory duplicate check for a friendly page. The store's uniqueness
	// constraint below remains the final authority.
	existing, err := h.store.FindByIDNumber(r.Context(), id)
	if err == nil {
		h.renderDuplicate(w, existing, name)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Println("save: lookup failed:", err)
		web.Render(w, http.StatusInternalServerError, "save_error.html", map[string]any{"Message": "Database error while checking for duplicates."})
		return
	}

	rec := models.NewRecord{FullName: name, IDNumber: id, DateOfBirth: dob}
	if expiry != "" {
		rec.ExpiryDate = &expiry
	}
	if address != "" {
		rec.Address = &address
	}

	saved, err := h.store.Insert(r.Context(), rec)
	if errors.Is(err, store.ErrDuplicateIDNumber) {
		// lost the race between the advisory check and the insert
		if existing, lerr := h.store.FindByIDNumber(r.Context(), id); lerr == nil {
			h.renderDuplicate(w, existing, name)
			return
		}
		web.Render(w, http.StatusConflict, "save_error.html", map[string]any{"Message": "A record with this ID number already exists."})
		return
	} else if err != nil {
		log.Println("save: insert failed:", err)
		web.Render(w, http.StatusInternalServerError, "save_error.html", map[string]any{"Message": "Failed to save the record. Please try again."})
		return
	}

	log.Println("save: successful, ID:", saved.ID)

	recent, err := h.store.ListRecent(r.Context(), 5)
	if err != nil {
		log.Println("save: listing recent records failed:", err)
		recent = []models.IdentityRecord{*saved}
	}
	web.Render(w, http.StatusOK, "save_success.html", map[string]any{"Record": saved, "Recent": recent})
}

// renderDuplicate shows the conflicting record along with a fuzzy name-match
// score: a high score suggests the same person re-submitting, a low one an ID
// number collision worth a closer look.
func (h *Handler) renderDuplicate(w http.ResponseWriter, existing *models.IdentityRecord, submittedName string) {
	metric := metrics.NewJaroWinkler()
	conf := strutil.Similarity(strings.ToLower(submittedName), strings.ToLower(existing.FullName), metric)
	web.Render(w, http.StatusConflict, "save_duplicate.html", map[string]any{
		"Existing":         existing,
		"NameMatchPercent": conf * 100,
	})
}

// ListRecords handles GET /records/list, feeding the dashboard table.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListAll(r.Context())
	if err != nil {
		log.Println("list: query failed:", err)
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to fetch records",
			"records": []models.IdentityRecord{},
		})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]any{
		"records": records,
		"count":   len(records),
	})
}

// RecordQRCode handles GET /records/{idNumber}/qrcode with a PNG encoding of
// the saved record's summary.
func (h *Handler) RecordQRCode(w http.ResponseWriter, r *http.Request) {
	idNumber := chi.URLParam(r, "idNumber")
	rec, err := h.store.FindByIDNumber(r.Context(), idNumber)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONResp(w, http.StatusNotFound, map[string]any{"error": "record not found"})
		return
	} else if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "database error"})
		return
	}

	data := "idscan:" + rec.IDNumber + "|" + rec.FullName + "|" + rec.DateOfBirth
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "Failed to generate QR code"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
