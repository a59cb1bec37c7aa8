package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"devconnect/internal/service"
	"devconnect/internal/validation"
)

// PostHandler mantiene dependencias para endpoints de posts.
type PostHandler struct {
	logger   *zap.Logger
	postServ *service.PostService
}

// NewPostHandler crea una instancia de PostHandler.
func NewPostHandler(logger *zap.Logger, postServ *service.PostService) *PostHandler {
	return &PostHandler{
		logger:   logger,
		postServ: postServ,
	}
}

// Create maneja POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := validation.ValidatePostInput(req.Text)
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	post, err := h.postServ.Create(c.Request.Context(), service.PostInput{
		UserID: claims.UserID,
		Text:   req.Text,
		Name:   claims.Name,
		Avatar: claims.Avatar,
	})
	if err != nil {
		h.logger.Error("create post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List maneja GET /api/posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get maneja GET /api/posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postServ.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
			return
		}
		h.logger.Error("get post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete maneja DELETE /api/posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	err := h.postServ.Delete(c.Request.Context(), c.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
		case errors.Is(err, service.ErrNotPostOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"notauthorized": "User not authorized"})
		default:
			h.logger.Error("delete post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Like maneja POST /api/posts/like/:id.
func (h *PostHandler) Like(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	post, err := h.postServ.Like(c.Request.Context(), c.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
		case errors.Is(err, service.ErrAlreadyLiked):
			c.JSON(http.StatusBadRequest, gin.H{"alreadyliked": "User already liked this post"})
		default:
			h.logger.Error("like post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not like post"})
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

// Unlike maneja POST /api/posts/unlike/:id.
func (h *PostHandler) Unlike(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	post, err := h.postServ.Unlike(c.Request.Context(), c.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
		case errors.Is(err, service.ErrNotLiked):
			c.JSON(http.StatusBadRequest, gin.H{"notliked": "You have not yet liked this post"})
		default:
			h.logger.Error("unlike post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unlike post"})
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

// AddComment maneja POST /api/posts/comment/:id.
func (h *PostHandler) AddComment(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid comment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := validation.ValidatePostInput(req.Text)
	if !result.IsValid {
		c.JSON(http.StatusBadRequest, result.Errors)
		return
	}

	post, err := h.postServ.AddComment(c.Request.Context(), c.Param("id"), service.CommentInput{
		UserID: claims.UserID,
		Text:   req.Text,
		Name:   claims.Name,
		Avatar: claims.Avatar,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
			return
		}
		h.logger.Error("add comment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add comment"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// RemoveComment maneja DELETE /api/posts/comment/:id/:comment_id.
func (h *PostHandler) RemoveComment(c *gin.Context) {
	if _, ok := GetAuthClaims(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	post, err := h.postServ.RemoveComment(c.Request.Context(), c.Param("id"), c.Param("comment_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"commentnotexists": "Comment does not exist"})
		default:
			h.logger.Error("remove comment failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove comment"})
		}
		return
	}
	c.JSON(http.StatusOK, post)
}
