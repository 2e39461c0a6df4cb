package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tokoapi/internal/platform/logger"
	"tokoapi/internal/platform/query"
	"tokoapi/internal/post/domain"
	"tokoapi/internal/post/repository"
)

var (
	ErrInvalidPostID  = errors.New("invalid post id")
	ErrEmptyBody      = errors.New("request body must not be empty")
	ErrNoChange       = errors.New("no fields were changed")
	ErrNoSearchParams = errors.New("at least one search parameter is required")
	ErrInvalidDate    = errors.New("invalid date format, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// Field teks yang dicocokkan oleh parameter pencarian bebas.
var postSearchFields = []string{"title", "content", "author"}

type PostService interface {
	ListPosts(ctx context.Context, search string, p query.Pagination) ([]domain.Post, query.PageInfo, error)
	SearchPosts(ctx context.Context, params domain.SearchPostParams, p query.Pagination) ([]domain.Post, query.PageInfo, error)
	GetPost(ctx context.Context, id string) (domain.Post, error)
	CreatePost(ctx context.Context, body domain.Post) (domain.Post, error)
	UpdatePost(ctx context.Context, id string, body domain.Post) (domain.Post, error)
	DeletePost(ctx context.Context, id string) (domain.Post, error)
}

type postServiceImpl struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) PostService {
	return &postServiceImpl{repo: repo}
}

func (s *postServiceImpl) ListPosts(ctx context.Context, search string, p query.Pagination) ([]domain.Post, query.PageInfo, error) {
	filter := &query.Filter{}
	if search != "" {
		filter.Any(containsAny(postSearchFields, search)...)
	}

	posts, total, err := s.repo.List(ctx, *filter, p, query.Sort{Field: "_id", Desc: true})
	if err != nil {
		return nil, query.PageInfo{}, err
	}
	return posts, query.NewPageInfo(p, total), nil
}

func (s *postServiceImpl) SearchPosts(ctx context.Context, params domain.SearchPostParams, p query.Pagination) ([]domain.Post, query.PageInfo, error) {
	if params.IsEmpty() {
		return nil, query.PageInfo{}, ErrNoSearchParams
	}

	filter := &query.Filter{}
	if params.Title != "" {
		filter.Where("title", query.OpContains, params.Title)
	}
	if params.Content != "" {
		filter.Where("content", query.OpContains, params.Content)
	}
	if params.Author != "" {
		filter.Where("author", query.OpContains, params.Author)
	}
	if params.Query != "" {
		filter.Any(containsAny(postSearchFields, params.Query)...)
	}
	if params.StartDate != "" {
		start, err := time.Parse(dateLayout, params.StartDate)
		if err != nil {
			return nil, query.PageInfo{}, fmt.Errorf("%w: start_date %q", ErrInvalidDate, params.StartDate)
		}
		filter.Where("created_at", query.OpGte, start)
	}
	if params.EndDate != "" {
		end, err := time.Parse(dateLayout, params.EndDate)
		if err != nil {
			return nil, query.PageInfo{}, fmt.Errorf("%w: end_date %q", ErrInvalidDate, params.EndDate)
		}
		// Batas atas inklusif sampai akhir hari
		filter.Where("created_at", query.OpLte, end.Add(24*time.Hour-time.Nanosecond))
	}

	posts, total, err := s.repo.List(ctx, *filter, p, query.Sort{Field: "_id", Desc: true})
	if err != nil {
		return nil, query.PageInfo{}, err
	}
	return posts, query.NewPageInfo(p, total), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id string) (domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *postServiceImpl) CreatePost(ctx context.Context, body domain.Post) (domain.Post, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	stripReservedFields(body)

	now := time.Now()
	body["created_at"] = now
	body["updated_at"] = now

	id, err := s.repo.Insert(ctx, body)
	if err != nil {
		logger.Error("Svc.CreatePost: repo error", err)
		return nil, err
	}
	body["_id"] = id
	return body, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, id string, body domain.Post) (domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}
	stripReservedFields(body)
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}

	modified, err := s.repo.SetFields(ctx, oid, body)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, ErrNoChange
	}
	if _, err := s.repo.SetFields(ctx, oid, domain.Post{"updated_at": time.Now()}); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, id string) (domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}
	return s.repo.Delete(ctx, oid)
}

// stripReservedFields membuang field yang hanya boleh diisi server.
func stripReservedFields(body domain.Post) {
	delete(body, "_id")
	delete(body, "created_at")
	delete(body, "updated_at")
}

func containsAny(fields []string, value string) []query.Condition {
	conditions := make([]query.Condition, 0, len(fields))
	for _, f := range fields {
		conditions = append(conditions, query.Condition{Field: f, Op: query.OpContains, Value: value})
	}
	return conditions
}
