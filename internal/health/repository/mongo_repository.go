package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tokoapi/internal/platform/database"
	"tokoapi/internal/platform/logger"
)

type StatsRepository interface {
	Ping(ctx context.Context) error
	CollectionCounts(ctx context.Context) (map[string]int64, error)
}

type mongoStatsRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStatsRepository(client *mongo.Client, db *mongo.Database) StatsRepository {
	return &mongoStatsRepository{client: client, db: db}
}

func (r *mongoStatsRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *mongoStatsRepository) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, name := range []string{database.CollectionPosts, database.CollectionProduk} {
		total, err := r.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			logger.Error("StatsRepo.CollectionCounts: count failed for "+name, err)
			return nil, err
		}
		counts[name] = total
	}
	return counts, nil
}
