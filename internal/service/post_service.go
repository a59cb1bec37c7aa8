package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/internal/domain"
	"devconnect/internal/repository"
)

// PostService coordina posts, likes y comentarios.
type PostService struct {
	logger *zap.Logger
	posts  repository.PostRepository
}

func NewPostService(logger *zap.Logger, posts repository.PostRepository) *PostService {
	return &PostService{
		logger: logger,
		posts:  posts,
	}
}

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("not post owner")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post not liked")
	ErrCommentNotFound = errors.New("comment not found")
)

type PostInput struct {
	UserID string
	Text   string
	Name   string
	Avatar string
}

// Create guarda un post con snapshot de nombre y avatar del autor.
func (s *PostService) Create(ctx context.Context, input PostInput) (domain.Post, error) {
	post := domain.Post{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Text:      strings.TrimSpace(input.Text),
		Name:      strings.TrimSpace(input.Name),
		Avatar:    strings.TrimSpace(input.Avatar),
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id string) (domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, err
	}
	return post, nil
}

// Delete borra el post solo si el solicitante es su autor.
func (s *PostService) Delete(ctx context.Context, postID, userID string) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		if repository.IsNotFound(err) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// Like registra el like en una sola sentencia condicional: de dos requests
// concurrentes del mismo usuario gana exactamente una.
func (s *PostService) Like(ctx context.Context, postID, userID string) (domain.Post, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return domain.Post{}, err
	}
	like := domain.Like{UserID: userID, CreatedAt: time.Now().UTC()}
	added, err := s.posts.AddLike(ctx, like, postID)
	if err != nil {
		return domain.Post{}, err
	}
	if !added {
		return domain.Post{}, ErrAlreadyLiked
	}
	return s.GetByID(ctx, postID)
}

// Unlike elimina el like si existe, también de forma condicional.
func (s *PostService) Unlike(ctx context.Context, postID, userID string) (domain.Post, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return domain.Post{}, err
	}
	removed, err := s.posts.RemoveLike(ctx, postID, userID)
	if err != nil {
		return domain.Post{}, err
	}
	if !removed {
		return domain.Post{}, ErrNotLiked
	}
	return s.GetByID(ctx, postID)
}

type CommentInput struct {
	UserID string
	Text   string
	Name   string
	Avatar string
}

// AddComment agrega un comentario con id nuevo al frente de la lista.
func (s *PostService) AddComment(ctx context.Context, postID string, input CommentInput) (domain.Post, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return domain.Post{}, err
	}
	comment := domain.Comment{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Text:      strings.TrimSpace(input.Text),
		Name:      strings.TrimSpace(input.Name),
		Avatar:    strings.TrimSpace(input.Avatar),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return domain.Post{}, err
	}
	return s.GetByID(ctx, postID)
}

// RemoveComment elimina exactamente el comentario indicado.
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID string) (domain.Post, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return domain.Post{}, err
	}
	deleted, err := s.posts.DeleteComment(ctx, postID, commentID)
	if err != nil {
		if repository.IsMalformedID(err) {
			return domain.Post{}, ErrCommentNotFound
		}
		return domain.Post{}, err
	}
	if !deleted {
		return domain.Post{}, ErrCommentNotFound
	}
	if s.logger != nil {
		s.logger.Debug("comment removed", zap.String("post_id", postID), zap.String("comment_id", commentID))
	}
	return s.GetByID(ctx, postID)
}
