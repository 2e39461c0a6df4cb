package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokoapi/internal/platform/logger"
	"tokoapi/internal/platform/query"
	"tokoapi/internal/platform/response"
	"tokoapi/internal/post/domain"
	"tokoapi/internal/post/repository"
	"tokoapi/internal/post/service"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(ps service.PostService) *PostHandler {
	return &PostHandler{postService: ps}
}

func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	postRoutes := router.Group("/posts")
	{
		postRoutes.GET("", h.ListPosts)
		postRoutes.GET("/search/advanced", h.SearchPosts)
		postRoutes.GET("/:id", h.GetPost)
		postRoutes.POST("", h.CreatePost)
		postRoutes.PUT("/:id", h.UpdatePost)
		postRoutes.DELETE("/:id", h.DeletePost)
	}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	p := query.ParsePagination(c.Query("page"), c.Query("limit"))

	posts, info, err := h.postService.ListPosts(c.Request.Context(), c.Query("search"), p)
	if err != nil {
		logger.Error("Hdl.ListPosts: service error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve posts")
		return
	}
	response.Page(c, "Posts retrieved successfully", posts, info)
}

func (h *PostHandler) SearchPosts(c *gin.Context) {
	params := domain.SearchPostParams{
		Title:     c.Query("title"),
		Content:   c.Query("content"),
		Author:    c.Query("author"),
		Query:     c.Query("q"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	p := query.ParsePagination(c.Query("page"), c.Query("limit"))

	posts, info, err := h.postService.SearchPosts(c.Request.Context(), params, p)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSearchParams):
			response.Error(c, http.StatusBadRequest, "At least one search parameter is required")
		case errors.Is(err, service.ErrInvalidDate):
			response.ErrorDetail(c, http.StatusBadRequest, "Invalid date parameter", err.Error())
		default:
			logger.Error("Hdl.SearchPosts: service error", err)
			response.Error(c, http.StatusInternalServerError, "Failed to search posts")
		}
		return
	}
	response.Page(c, "Search results retrieved successfully", posts, info)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "Hdl.GetPost", "Failed to retrieve post", err)
		return
	}
	response.OK(c, "Post retrieved successfully", post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var body domain.Post
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ErrorDetail(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.postService.CreatePost(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBody) {
			response.Error(c, http.StatusBadRequest, "Request body must not be empty")
			return
		}
		logger.Error("Hdl.CreatePost: service error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	response.Created(c, "Post created successfully", created)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var body domain.Post
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ErrorDetail(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	updated, err := h.postService.UpdatePost(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyBody):
			response.Error(c, http.StatusBadRequest, "Request body must not be empty")
		case errors.Is(err, service.ErrNoChange):
			response.Error(c, http.StatusBadRequest, "No fields were changed")
		default:
			h.writeError(c, "Hdl.UpdatePost", "Failed to update post", err)
		}
		return
	}
	response.OK(c, "Post updated successfully", updated)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	removed, err := h.postService.DeletePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "Hdl.DeletePost", "Failed to delete post", err)
		return
	}
	response.OK(c, "Post deleted successfully", removed)
}

// writeError memetakan error umum (invalid id / not found / internal).
func (h *PostHandler) writeError(c *gin.Context, op, fallback string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPostID):
		response.Error(c, http.StatusBadRequest, "Invalid post id")
	case errors.Is(err, repository.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "Post not found")
	default:
		logger.Error(op+": service error", err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
