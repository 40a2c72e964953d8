package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	c := Cursor{
		Date:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 1, 1, 14, 30, 45, 123456789, time.UTC),
		ID:        "7f1c2a9e-5b7d-4e0f-9a51-3c2d8e6b1a40",
	}

	token := EncodeCursor(c)
	assert.NotEmpty(t, token)

	got, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, c.Date.Equal(got.Date))
	assert.True(t, c.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, c.ID, got.ID)

	zero := Cursor{ID: "t-1"}
	got, err = DecodeCursor(EncodeCursor(zero))
	require.NoError(t, err)
	assert.True(t, got.Date.IsZero())
	assert.True(t, got.CreatedAt.IsZero())
}

func TestDecodeCursorErrors(t *testing.T) {
	_, err := DecodeCursor("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noID := base64.RawURLEncoding.EncodeToString([]byte("2025-01-01T00:00:00Z|2025-01-01T00:00:00Z"))
	_, err = DecodeCursor(noID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	emptyID := base64.RawURLEncoding.EncodeToString([]byte("2025-01-01T00:00:00Z|2025-01-01T00:00:00Z|"))
	_, err = DecodeCursor(emptyID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.RawURLEncoding.EncodeToString([]byte("notadate|2025-01-01T00:00:00Z|t-1"))
	_, err = DecodeCursor(badDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	badCreated := base64.RawURLEncoding.EncodeToString([]byte("2025-01-01T00:00:00Z|nope|t-1"))
	_, err = DecodeCursor(badCreated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
