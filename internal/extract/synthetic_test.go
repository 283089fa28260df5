package extract

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idNumberRe = regexp.MustCompile(`^ID\d{8}$`)

func TestSimulatedIsWellFormed(t *testing.T) {
	dateRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	for i := 0; i < 50; i++ {
		fields := Simulated()

		require.NotNil(t, fields.FullName)
		require.NotNil(t, fields.IDNumber)
		require.NotNil(t, fields.DateOfBirth)
		require.NotNil(t, fields.ExpiryDate)
		require.NotNil(t, fields.Address)
		assert.True(t, fields.Simulated)

		assert.Regexp(t, idNumberRe, *fields.IDNumber)
		assert.Regexp(t, dateRe, *fields.DateOfBirth)
		assert.Regexp(t, dateRe, *fields.ExpiryDate)

		dob, err := time.Parse("2006-01-02", *fields.DateOfBirth)
		require.NoError(t, err)
		expiry, err := time.Parse("2006-01-02", *fields.ExpiryDate)
		require.NoError(t, err)
		assert.True(t, expiry.After(dob), "expiry must be after date of birth")
		assert.True(t, expiry.After(time.Now()), "expiry must be in the future")
	}
}

func TestSimulatedIDNumber(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, idNumberRe, SimulatedIDNumber())
	}
}

// A client without an API key must never error out; it substitutes simulated
// data for every call.
func TestClientWithoutKeyFallsBack(t *testing.T) {
	c, err := NewClient(context.Background(), "", "gemini-2.0-flash", time.Second)
	require.NoError(t, err)
	defer c.Close()

	fields := c.Extract(context.Background(), "aGVsbG8=")
	assert.True(t, fields.Simulated)
	require.NotNil(t, fields.FullName)
	require.NotNil(t, fields.IDNumber)
	require.NotNil(t, fields.DateOfBirth)
}
