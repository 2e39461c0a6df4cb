package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tokoapi/internal/platform/database"
	"tokoapi/internal/platform/logger"
	"tokoapi/internal/platform/query"
	"tokoapi/internal/post/domain"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	List(ctx context.Context, filter query.Filter, p query.Pagination, sort query.Sort) ([]domain.Post, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error)
	Insert(ctx context.Context, doc domain.Post) (primitive.ObjectID, error)
	// SetFields men-apply $set parsial dan mengembalikan jumlah field yang
	// benar-benar berubah. ErrPostNotFound jika tidak ada dokumen yang cocok.
	SetFields(ctx context.Context, id primitive.ObjectID, fields domain.Post) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.Post, error)
}

type mongoPostRepository struct {
	coll *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{coll: db.Collection(database.CollectionPosts)}
}

func (r *mongoPostRepository) List(ctx context.Context, filter query.Filter, p query.Pagination, sort query.Sort) ([]domain.Post, int64, error) {
	mongoFilter := database.BuildFilter(filter)

	total, err := r.coll.CountDocuments(ctx, mongoFilter)
	if err != nil {
		logger.Error("PostRepo.List: count failed", err)
		return nil, 0, err
	}

	order := 1
	if sort.Desc {
		order = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sort.Field, Value: order}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cursor, err := r.coll.Find(ctx, mongoFilter, opts)
	if err != nil {
		logger.Error("PostRepo.List: find failed", err)
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	posts := []domain.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		logger.Error("PostRepo.List: decode failed", err)
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *mongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	var post domain.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		logger.Error("PostRepo.GetByID: query failed", err)
		return nil, err
	}
	return post, nil
}

func (r *mongoPostRepository) Insert(ctx context.Context, doc domain.Post) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		logger.Error("PostRepo.Insert: insert failed", err)
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *mongoPostRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields domain.Post) (int64, error) {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M(fields)})
	if err != nil {
		logger.Error("PostRepo.SetFields: update failed", err)
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, ErrPostNotFound
	}
	return res.ModifiedCount, nil
}

func (r *mongoPostRepository) Delete(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	var removed domain.Post
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		logger.Error("PostRepo.Delete: delete failed", err)
		return nil, err
	}
	return removed, nil
}
