// Package cache keeps extraction results in Redis so re-scanning the same
// image does not burn another model call. The cache is optional: a nil
// *Extraction is a valid pass-through.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"idscan/internal/models"
)

const extractionTTL = time.Hour

type Extraction struct {
	rdb *redis.Client
}

func NewExtraction(rdb *redis.Client) *Extraction {
	return &Extraction{rdb: rdb}
}

func key(image string) string {
	sum := sha256.Sum256([]byte(image))
	return "extract:" + hex.EncodeToString(sum[:])
}

// Get returns a previously cached extraction for this exact image payload.
// Cache failures are logged and treated as a miss.
func (c *Extraction) Get(ctx context.Context, image string) (models.ExtractedFields, bool) {
	var fields models.ExtractedFields
	if c == nil || c.rdb == nil {
		return fields, false
	}
	raw, err := c.rdb.Get(ctx, key(image)).Result()
	if errors.Is(err, redis.Nil) {
		return fields, false
	} else if err != nil {
		log.Println("cache: get failed:", err)
		return fields, false
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		log.Println("cache: corrupt entry, ignoring:", err)
		return models.ExtractedFields{}, false
	}
	return fields, true
}

// Put stores an extraction result. Simulated results are never cached: they
// carry no information about the image.
func (c *Extraction) Put(ctx context.Context, image string, fields models.ExtractedFields) {
	if c == nil || c.rdb == nil || fields.Simulated {
		return
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(image), raw, extractionTTL).Err(); err != nil {
		log.Println("cache: set failed:", err)
	}
}
