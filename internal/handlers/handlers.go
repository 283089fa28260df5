package handlers

import (
	"encoding/json"
	"net/http"

	"idscan/internal/cache"
	"idscan/internal/extract"
	"idscan/internal/store"
)

// Handler owns the ingest workflow's dependencies. Everything is constructed
// at startup and injected; handlers hold no package-level state.
type Handler struct {
	store     store.RecordStore
	extractor extract.Extractor
	cache     *cache.Extraction
}

func New(s store.RecordStore, e extract.Extractor, c *cache.Extraction) *Handler {
	return &Handler{store: s, extractor: e, cache: c}
}

func writeJSONResp(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
