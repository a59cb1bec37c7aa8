package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devconnect/internal/domain"
)

// PostRepository define el contrato de persistencia para posts.
type PostRepository interface {
	Create(ctx context.Context, post domain.Post) error
	GetByID(ctx context.Context, id string) (domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, like domain.Like, postID string) (bool, error)
	RemoveLike(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, postID string, comment domain.Comment) error
	DeleteComment(ctx context.Context, postID, commentID string) (bool, error)
}

// PgPostRepository implementa PostRepository usando pgxpool.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func (r *PgPostRepository) Create(ctx context.Context, post domain.Post) error {
	const query = `
		INSERT INTO posts (id, user_id, text, name, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.UserID,
		post.Text,
		post.Name,
		post.Avatar,
		post.CreatedAt,
	)
	return err
}

func (r *PgPostRepository) GetByID(ctx context.Context, id string) (domain.Post, error) {
	const query = `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		WHERE id = $1
	`
	var p domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.UserID,
		&p.Text,
		&p.Name,
		&p.Avatar,
		&p.CreatedAt,
	)
	if err != nil {
		return domain.Post{}, err
	}
	if err := r.loadLikesAndComments(ctx, &p); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func (r *PgPostRepository) List(ctx context.Context) ([]domain.Post, error) {
	const query = `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range posts {
		if err := r.loadLikesAndComments(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (r *PgPostRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM posts WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddLike inserta el like solo si no existe todavía; devuelve false si el
// usuario ya había dado like. La condición corre en una sola sentencia, sin
// ventana entre chequeo y escritura.
func (r *PgPostRepository) AddLike(ctx context.Context, like domain.Like, postID string) (bool, error) {
	const query = `
		INSERT INTO post_likes (post_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, query, postID, like.UserID, like.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveLike devuelve false si el usuario no había dado like.
func (r *PgPostRepository) RemoveLike(ctx context.Context, postID, userID string) (bool, error) {
	const query = `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgPostRepository) AddComment(ctx context.Context, postID string, comment domain.Comment) error {
	const query = `
		INSERT INTO post_comments (id, post_id, user_id, text, name, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		postID,
		comment.UserID,
		comment.Text,
		comment.Name,
		comment.Avatar,
		comment.CreatedAt,
	)
	return err
}

// DeleteComment devuelve false si el comentario no existía en ese post.
func (r *PgPostRepository) DeleteComment(ctx context.Context, postID, commentID string) (bool, error) {
	const query = `DELETE FROM post_comments WHERE id = $1 AND post_id = $2`
	tag, err := r.pool.Exec(ctx, query, commentID, postID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgPostRepository) loadLikesAndComments(ctx context.Context, p *domain.Post) error {
	const likesQuery = `
		SELECT user_id, created_at
		FROM post_likes
		WHERE post_id = $1
		ORDER BY created_at DESC
	`
	likeRows, err := r.pool.Query(ctx, likesQuery, p.ID)
	if err != nil {
		return err
	}
	defer likeRows.Close()

	p.Likes = []domain.Like{}
	for likeRows.Next() {
		var l domain.Like
		if err := likeRows.Scan(&l.UserID, &l.CreatedAt); err != nil {
			return err
		}
		p.Likes = append(p.Likes, l)
	}
	if err := likeRows.Err(); err != nil {
		return err
	}

	const commentsQuery = `
		SELECT id, user_id, text, name, avatar, created_at
		FROM post_comments
		WHERE post_id = $1
		ORDER BY created_at DESC
	`
	commentRows, err := r.pool.Query(ctx, commentsQuery, p.ID)
	if err != nil {
		return err
	}
	defer commentRows.Close()

	p.Comments = []domain.Comment{}
	for commentRows.Next() {
		var c domain.Comment
		if err := commentRows.Scan(&c.ID, &c.UserID, &c.Text, &c.Name, &c.Avatar, &c.CreatedAt); err != nil {
			return err
		}
		p.Comments = append(p.Comments, c)
	}
	return commentRows.Err()
}
