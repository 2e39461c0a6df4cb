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
	"tokoapi/internal/product/domain"
)

var (
	ErrProdukNotFound = errors.New("produk not found")
	// ErrDuplicateKodeProduk dikembalikan ketika unique index kode_produk
	// menolak insert/replace (penjaga terakhir saat race).
	ErrDuplicateKodeProduk = errors.New("kode_produk already exists")
)

type ProdukRepository interface {
	List(ctx context.Context, filter query.Filter, p query.Pagination, sort query.Sort) ([]domain.Produk, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Produk, error)
	GetByKode(ctx context.Context, kodeProduk string) (*domain.Produk, error)
	Insert(ctx context.Context, produk *domain.Produk) error
	// Replace mengganti seluruh dokumen dan mengembalikan jumlah dokumen
	// yang benar-benar berubah. ErrProdukNotFound jika tidak ada yang cocok.
	Replace(ctx context.Context, id primitive.ObjectID, produk *domain.Produk) (int64, error)
	SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Produk, error)
}

type mongoProdukRepository struct {
	coll *mongo.Collection
}

func NewMongoProdukRepository(db *mongo.Database) ProdukRepository {
	return &mongoProdukRepository{coll: db.Collection(database.CollectionProduk)}
}

func (r *mongoProdukRepository) List(ctx context.Context, filter query.Filter, p query.Pagination, sort query.Sort) ([]domain.Produk, int64, error) {
	mongoFilter := database.BuildFilter(filter)

	total, err := r.coll.CountDocuments(ctx, mongoFilter)
	if err != nil {
		logger.Error("ProdukRepo.List: count failed", err)
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
		logger.Error("ProdukRepo.List: find failed", err)
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	produk := []domain.Produk{}
	if err := cursor.All(ctx, &produk); err != nil {
		logger.Error("ProdukRepo.List: decode failed", err)
		return nil, 0, err
	}
	return produk, total, nil
}

func (r *mongoProdukRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Produk, error) {
	var p domain.Produk
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProdukNotFound
		}
		logger.Error("ProdukRepo.GetByID: query failed", err)
		return nil, err
	}
	return &p, nil
}

func (r *mongoProdukRepository) GetByKode(ctx context.Context, kodeProduk string) (*domain.Produk, error) {
	var p domain.Produk
	err := r.coll.FindOne(ctx, bson.M{"kode_produk": kodeProduk}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProdukNotFound
		}
		logger.Error("ProdukRepo.GetByKode: query failed", err)
		return nil, err
	}
	return &p, nil
}

func (r *mongoProdukRepository) Insert(ctx context.Context, produk *domain.Produk) error {
	res, err := r.coll.InsertOne(ctx, produk)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKodeProduk
		}
		logger.Error("ProdukRepo.Insert: insert failed", err)
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		produk.ID = id
	}
	return nil
}

func (r *mongoProdukRepository) Replace(ctx context.Context, id primitive.ObjectID, produk *domain.Produk) (int64, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, produk)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, ErrDuplicateKodeProduk
		}
		logger.Error("ProdukRepo.Replace: replace failed", err)
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, ErrProdukNotFound
	}
	return res.ModifiedCount, nil
}

func (r *mongoProdukRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M(fields)})
	if err != nil {
		logger.Error("ProdukRepo.SetFields: update failed", err)
	}
	return err
}

func (r *mongoProdukRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Produk, error) {
	var removed domain.Produk
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProdukNotFound
		}
		logger.Error("ProdukRepo.Delete: delete failed", err)
		return nil, err
	}
	return &removed, nil
}
