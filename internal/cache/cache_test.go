package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idscan/internal/models"
)

func strPtr(s string) *string { return &s }

func janeFields() models.ExtractedFields {
	return models.ExtractedFields{
		FullName:    strPtr("Jane Doe"),
		IDNumber:    strPtr("ID12345678"),
		DateOfBirth: strPtr("1985-04-12"),
	}
}

func newTestCache(t *testing.T) (*Extraction, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewExtraction(rdb), mr
}

func TestExtractionRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "image-a")
	assert.False(t, ok, "empty cache must miss")

	c.Put(ctx, "image-a", janeFields())

	got, ok := c.Get(ctx, "image-a")
	require.True(t, ok)
	require.NotNil(t, got.FullName)
	assert.Equal(t, "Jane Doe", *got.FullName)
	require.NotNil(t, got.IDNumber)
	assert.Equal(t, "ID12345678", *got.IDNumber)

	// a different image payload keys a different entry
	_, ok = c.Get(ctx, "image-b")
	assert.False(t, ok)
}

func TestEntriesExpireAfterAnHour(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Put(ctx, "image-a", janeFields())
	assert.Equal(t, time.Hour, mr.TTL(key("image-a")))

	mr.FastForward(time.Hour + time.Minute)
	_, ok := c.Get(ctx, "image-a")
	assert.False(t, ok, "expired entry must miss")
}

func TestSimulatedResultsAreNotCached(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	fields := janeFields()
	fields.Simulated = true
	c.Put(ctx, "image-a", fields)

	_, ok := c.Get(ctx, "image-a")
	assert.False(t, ok)
	assert.Empty(t, mr.Keys(), "simulated results must not reach Redis")
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(key("image-a"), "not valid json"))

	fields, ok := c.Get(ctx, "image-a")
	assert.False(t, ok)
	assert.Nil(t, fields.FullName)
}

func TestBackendErrorsAreTreatedAsMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Put(ctx, "image-a", janeFields())
	mr.Close()

	// both paths must degrade silently once Redis is gone
	_, ok := c.Get(ctx, "image-a")
	assert.False(t, ok)
	c.Put(ctx, "image-b", janeFields())
}

func TestNilCacheIsAPassThrough(t *testing.T) {
	var c *Extraction
	ctx := context.Background()

	_, ok := c.Get(ctx, "image-a")
	assert.False(t, ok)
	c.Put(ctx, "image-a", janeFields())
}
