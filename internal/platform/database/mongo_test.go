package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tokoapi/internal/platform/config"
)

func TestNextBackoff(t *testing.T) {
	t.Run("Doubles until the ceiling", func(t *testing.T) {
		assert.Equal(t, 2*time.Second, nextBackoff(1*time.Second))
		assert.Equal(t, 16*time.Second, nextBackoff(8*time.Second))
	})

	t.Run("Capped at the fixed ceiling", func(t *testing.T) {
		assert.Equal(t, maxBackoff, nextBackoff(16*time.Second))
		assert.Equal(t, maxBackoff, nextBackoff(maxBackoff))
	})
}

func TestConnect_StopsOnlyOnContextCancellation(t *testing.T) {
	// Retry berjalan terus selama store belum siap; pembatalan ctx adalah
	// satu-satunya cara keluar tanpa koneksi.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.MongoConfig{URI: "mongodb://127.0.0.1:1", Database: "toko_db"}
	client, err := Connect(ctx, cfg)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, context.Canceled)
}
