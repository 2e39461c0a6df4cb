package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tokoapi/internal/platform/config"
	"tokoapi/internal/platform/logger"
)

const (
	CollectionPosts  = "posts"
	CollectionProduk = "produk"

	pingTimeout    = 5 * time.Second
	initialBackoff = 1 * time.Second
	maxBackoff     = 30 * time.Second
)

// Connect membuka koneksi Mongo dengan retry + exponential backoff (dibatasi
// maxBackoff) sampai ping berhasil. Proses tidak menyerah selama store belum
// siap; satu-satunya jalan keluar adalah pembatalan ctx. Driver yang
// mengelola connection pool; satu client dipakai bersama seluruh request.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	backoff := initialBackoff

	for attempt := 1; ; attempt++ {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				logger.Info("Successfully connected to MongoDB")
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		logger.Warn(fmt.Sprintf("MongoDB connect attempt %d failed (%v), retrying in %s",
			attempt, err, backoff))

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff = nextBackoff(backoff)
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

// EnsureIndexes menyiapkan index yang dibutuhkan aplikasi. Unique index pada
// kode_produk adalah penjaga terakhir terhadap duplikasi saat race.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionProduk).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "kode_produk", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "tanggal_dibuat", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create produk indexes: %w", err)
	}

	_, err = db.Collection(CollectionPosts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create posts index: %w", err)
	}
	return nil
}

func Disconnect(ctx context.Context, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect MongoDB client", err)
	}
}
