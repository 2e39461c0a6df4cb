package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tokoapi/internal/platform/query"
	"tokoapi/internal/post/domain"
	"tokoapi/internal/post/repository"
	"tokoapi/internal/post/repository/mocks"
)

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.TODO()

	t.Run("Empty body is rejected before the store is touched", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		_, err := service.CreatePost(ctx, domain.Post{})
		assert.ErrorIs(t, err, ErrEmptyBody)
		mockRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("Timestamps are stamped and client-supplied id is dropped", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		newID := primitive.NewObjectID()
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(doc domain.Post) bool {
			_, hasCreated := doc["created_at"]
			_, hasUpdated := doc["updated_at"]
			_, hasID := doc["_id"]
			return hasCreated && hasUpdated && !hasID && doc["title"] == "Halo"
		})).Return(newID, nil).Once()

		created, err := service.CreatePost(ctx, domain.Post{"title": "Halo", "_id": "spoofed"})
		assert.NoError(t, err)
		assert.Equal(t, newID, created["_id"])
		mockRepo.AssertExpectations(t)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.TODO()

	t.Run("Malformed id never reaches the repository", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		_, err := service.GetPost(ctx, "bukan-objectid")
		assert.ErrorIs(t, err, ErrInvalidPostID)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Not found propagates", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		oid := primitive.NewObjectID()
		mockRepo.On("GetByID", ctx, oid).Return(nil, repository.ErrPostNotFound).Once()

		_, err := service.GetPost(ctx, oid.Hex())
		assert.ErrorIs(t, err, repository.ErrPostNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.TODO()
	oid := primitive.NewObjectID()

	t.Run("Zero modified fields is a no-change error", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("SetFields", ctx, oid, domain.Post{"title": "Sama"}).Return(int64(0), nil).Once()

		_, err := service.UpdatePost(ctx, oid.Hex(), domain.Post{"title": "Sama"})
		assert.ErrorIs(t, err, ErrNoChange)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Successful update re-stamps updated_at and returns the document", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		updated := domain.Post{"_id": oid, "title": "Baru"}
		mockRepo.On("SetFields", ctx, oid, domain.Post{"title": "Baru"}).Return(int64(1), nil).Once()
		mockRepo.On("SetFields", ctx, oid, mock.MatchedBy(func(fields domain.Post) bool {
			_, ok := fields["updated_at"]
			return ok && len(fields) == 1
		})).Return(int64(1), nil).Once()
		mockRepo.On("GetByID", ctx, oid).Return(updated, nil).Once()

		got, err := service.UpdatePost(ctx, oid.Hex(), domain.Post{"title": "Baru"})
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Body with only reserved fields is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		_, err := service.UpdatePost(ctx, oid.Hex(), domain.Post{"_id": "x", "created_at": "y"})
		assert.ErrorIs(t, err, ErrEmptyBody)
		mockRepo.AssertNotCalled(t, "SetFields")
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.TODO()

	t.Run("Returns the removed document", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		oid := primitive.NewObjectID()
		removed := domain.Post{"_id": oid, "title": "Hapus"}
		mockRepo.On("Delete", ctx, oid).Return(removed, nil).Once()

		got, err := service.DeletePost(ctx, oid.Hex())
		assert.NoError(t, err)
		assert.Equal(t, removed, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found for an id never created", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		oid := primitive.NewObjectID()
		mockRepo.On("Delete", ctx, oid).Return(nil, repository.ErrPostNotFound).Once()

		_, err := service.DeletePost(ctx, oid.Hex())
		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})
}

func TestPostService_SearchPosts(t *testing.T) {
	ctx := context.TODO()
	p := query.Pagination{Page: 1, Limit: 10}

	t.Run("Zero recognized parameters fails before the store", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		_, _, err := service.SearchPosts(ctx, domain.SearchPostParams{}, p)
		assert.ErrorIs(t, err, ErrNoSearchParams)
		mockRepo.AssertNotCalled(t, "List")
	})

	t.Run("Invalid date propagates as a parse failure", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		_, _, err := service.SearchPosts(ctx, domain.SearchPostParams{StartDate: "31-12-2024"}, p)
		assert.ErrorIs(t, err, ErrInvalidDate)
		mockRepo.AssertNotCalled(t, "List")
	})

	t.Run("Recognized parameters compose into one filter", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("List", ctx, mock.MatchedBy(func(f query.Filter) bool {
			return len(f.Conditions) == 2 && !f.IsEmpty() // author + start_date
		}), p, query.Sort{Field: "_id", Desc: true}).Return([]domain.Post{}, int64(0), nil).Once()

		_, _, err := service.SearchPosts(ctx, domain.SearchPostParams{Author: "budi", StartDate: "2024-01-01"}, p)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("List", ctx, mock.Anything, p, mock.Anything).Return(nil, int64(0), errors.New("db error")).Once()

		_, _, err := service.SearchPosts(ctx, domain.SearchPostParams{Title: "go"}, p)
		assert.Error(t, err)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.TODO()

	t.Run("Search text becomes an OR group over the text fields", func(t *testing.T) {
		mockRepo := new(mocks.MockPostRepository)
		service := NewPostService(mockRepo)

		p := query.Pagination{Page: 2, Limit: 10}
		mockRepo.On("List", ctx, mock.MatchedBy(func(f query.Filter) bool {
			return len(f.OrGroups) == 1 && len(f.OrGroups[0]) == 3
		}), p, query.Sort{Field: "_id", Desc: true}).Return([]domain.Post{{"title": "a"}}, int64(25), nil).Once()

		posts, info, err := service.ListPosts(ctx, "golang", p)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, 3, info.TotalPages)
		assert.True(t, info.HasNext)
		assert.True(t, info.HasPrev)
		mockRepo.AssertExpectations(t)
	})
}
