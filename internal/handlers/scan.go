package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"idscan/internal/extract"
	"idscan/internal/models"
	"idscan/internal/store"
)

type scanRequest struct {
	Image string `json:"image"`
}

// Extract handles POST /extract: image in, the five identity fields out.
// Persistence is deferred to the save step after the user has reviewed the
// fields in the browser.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var body scanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "Invalid request format"})
		return
	}
	if strings.TrimSpace(body.Image) == "" {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "Image data is required"})
		return
	}

	log.Println("extract: processing image, length:", len(body.Image))

	if fields, ok := h.cache.Get(r.Context(), body.Image); ok {
		log.Println("extract: cache hit")
		writeJSONResp(w, http.StatusOK, fields)
		return
	}

	fields := h.extractor.Extract(r.Context(), body.Image)
	h.cache.Put(r.Context(), body.Image, fields)

	writeJSONResp(w, http.StatusOK, fields)
}

// Ingest handles POST /ingest: extract and persist in one call, for API
// clients that skip the browser review step. A duplicate id number downgrades
// to returning the extracted fields unpersisted; it is not an error to the
// caller, and the record's id number is never silently rewritten to force the
// insert through.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	var body scanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "Invalid request format"})
		return
	}
	if strings.TrimSpace(body.Image) == "" {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"error": "Image data is required"})
		return
	}

	fields, ok := h.cache.Get(r.Context(), body.Image)
	if !ok {
		fields = h.extractor.Extract(r.Context(), body.Image)
		h.cache.Put(r.Context(), body.Image, fields)
	}

	rec, err := h.store.Insert(r.Context(), newRecordFromFields(fields))
	if errors.Is(err, store.ErrDuplicateIDNumber) {
		log.Println("ingest: duplicate id number, returning fields unpersisted")
		writeJSONResp(w, http.StatusOK, map[string]any{"saved": false, "fields": fields, "simulated": fields.Simulated})
		return
	} else if err != nil {
		log.Println("ingest: insert failed:", err)
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"error": "failed to save record"})
		return
	}

	log.Println("ingest: record saved, ID:", rec.ID)
	writeJSONResp(w, http.StatusOK, map[string]any{"saved": true, "record": rec, "simulated": fields.Simulated})
}

// newRecordFromFields backfills the required columns the way the original
// flow did: unreadable fields get placeholder values rather than blocking
// the ingest.
func newRecordFromFields(fields models.ExtractedFields) models.NewRecord {
	rec := models.NewRecord{
		FullName:    "Unknown",
		IDNumber:    extract.SimulatedIDNumber(),
		DateOfBirth: "1900-01-01",
		ExpiryDate:  fields.ExpiryDate,
		Address:     fields.Address,
	}
	if fields.FullName != nil {
		rec.FullName = *fields.FullName
	}
	if fields.IDNumber != nil {
		rec.IDNumber = *fields.IDNumber
	}
	if fields.DateOfBirth != nil {
		rec.DateOfBirth = *fields.DateOfBirth
	}
	return rec
}
