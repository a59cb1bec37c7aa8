package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"devconnect/internal/domain"
	"devconnect/internal/service"
)

type mockPostRepo struct {
	posts map[string]*domain.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*domain.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, post domain.Post) error {
	stored := post
	m.posts[post.ID] = &stored
	return nil
}

// Los ids son columnas UUID: un valor no casteable falla como en Postgres.
func (m *mockPostRepo) GetByID(_ context.Context, id string) (domain.Post, error) {
	if err := uuid.Validate(id); err != nil {
		return domain.Post{}, &pgconn.PgError{Code: "22P02"}
	}
	post, ok := m.posts[id]
	if !ok {
		return domain.Post{}, pgx.ErrNoRows
	}
	return *post, nil
}

func (m *mockPostRepo) List(_ context.Context) ([]domain.Post, error) {
	posts := []domain.Post{}
	for _, p := range m.posts {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (m *mockPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) AddLike(_ context.Context, like domain.Like, postID string) (bool, error) {
	post, ok := m.posts[postID]
	if !ok {
		return false, pgx.ErrNoRows
	}
	for _, l := range post.Likes {
		if l.UserID == like.UserID {
			return false, nil
		}
	}
	post.Likes = append([]domain.Like{like}, post.Likes...)
	return true, nil
}

func (m *mockPostRepo) RemoveLike(_ context.Context, postID, userID string) (bool, error) {
	post, ok := m.posts[postID]
	if !ok {
		return false, pgx.ErrNoRows
	}
	for i, l := range post.Likes {
		if l.UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPostRepo) AddComment(_ context.Context, postID string, comment domain.Comment) error {
	post, ok := m.posts[postID]
	if !ok {
		return pgx.ErrNoRows
	}
	post.Comments = append([]domain.Comment{comment}, post.Comments...)
	return nil
}

func (m *mockPostRepo) DeleteComment(_ context.Context, postID, commentID string) (bool, error) {
	if err := uuid.Validate(commentID); err != nil {
		return false, &pgconn.PgError{Code: "22P02"}
	}
	post, ok := m.posts[postID]
	if !ok {
		return false, pgx.ErrNoRows
	}
	for i, c := range post.Comments {
		if c.ID == commentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newPostTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	jwtSvc := service.NewJWTService("secret", time.Hour)
	postSvc := service.NewPostService(logger, newMockPostRepo())
	postH := NewPostHandler(logger, postSvc)

	r := gin.New()
	auth := JWTAuthMiddleware(jwtSvc)
	posts := r.Group("/api/posts")
	posts.GET("", postH.List)
	posts.GET("/:id", postH.Get)
	posts.POST("", auth, postH.Create)
	posts.DELETE("/:id", auth, postH.Delete)
	posts.POST("/like/:id", auth, postH.Like)
	posts.POST("/unlike/:id", auth, postH.Unlike)
	posts.POST("/comment/:id", auth, postH.AddComment)
	posts.DELETE("/comment/:id/:comment_id", auth, postH.RemoveComment)

	token, err := jwtSvc.Issue(domain.User{ID: "u1", Name: "Test", Avatar: "https://example.com/a.png"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return r, "Bearer " + token
}

func createTestPost(t *testing.T, r *gin.Engine, token string) domain.Post {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/posts", gin.H{"text": "a post with enough text"}, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create post: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var post domain.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	return post
}

func TestPostHandler_CreateValidation(t *testing.T) {
	r, token := newPostTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/posts", gin.H{"text": "short"}, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var errBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody["text"] == "" {
		t.Fatalf("expected text error, got %v", errBody)
	}
}

func TestPostHandler_RequiresAuth(t *testing.T) {
	r, _ := newPostTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/posts", gin.H{"text": "a post with enough text"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPostHandler_GetArbitraryID(t *testing.T) {
	r, token := newPostTestRouter(t)

	for _, id := range []string{"not-a-uuid", uuid.NewString()} {
		rec := doJSON(t, r, http.MethodGet, "/api/posts/"+id, nil, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("get %s: expected 404, got %d (%s)", id, rec.Code, rec.Body.String())
		}
		var errBody map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if errBody["postnotfound"] == "" {
			t.Fatalf("expected postnotfound error, got %v", errBody)
		}
	}

	rec := doJSON(t, r, http.MethodPost, "/api/posts/like/not-a-uuid", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("like: expected 404, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestPostHandler_LikeUnlikeFlow(t *testing.T) {
	r, token := newPostTestRouter(t)
	post := createTestPost(t, r, token)

	rec := doJSON(t, r, http.MethodPost, "/api/posts/like/"+post.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/api/posts/like/"+post.ID, nil, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second like: expected 400, got %d", rec.Code)
	}
	var errBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody["alreadyliked"] == "" {
		t.Fatalf("expected alreadyliked error, got %v", errBody)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/posts/unlike/"+post.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("unlike: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/posts/unlike/"+post.ID, nil, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second unlike: expected 400, got %d", rec.Code)
	}
}

func TestPostHandler_CommentFlow(t *testing.T) {
	r, token := newPostTestRouter(t)
	post := createTestPost(t, r, token)

	rec := doJSON(t, r, http.MethodPost, "/api/posts/comment/"+post.ID, gin.H{"text": "a comment with enough text"}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("comment: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var updated domain.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	if len(updated.Comments) != 1 || updated.Comments[0].ID == "" {
		t.Fatalf("expected one comment with id, got %+v", updated.Comments)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/posts/comment/"+post.ID+"/"+uuid.NewString(), nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing comment: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/posts/comment/"+post.ID+"/"+updated.Comments[0].ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove comment: expected 200, got %d", rec.Code)
	}
	var afterRemove domain.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &afterRemove); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	if len(afterRemove.Comments) != 0 {
		t.Fatalf("expected no comments left, got %d", len(afterRemove.Comments))
	}
}

func TestPostHandler_DeleteOwnership(t *testing.T) {
	r, token := newPostTestRouter(t)
	post := createTestPost(t, r, token)

	jwtSvc := service.NewJWTService("secret", time.Hour)
	otherToken, err := jwtSvc.Issue(domain.User{ID: "u2", Name: "Other"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := doJSON(t, r, http.MethodDelete, "/api/posts/"+post.ID, nil, "Bearer "+otherToken)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("delete by non-owner: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/posts/"+post.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete by owner: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/posts/"+post.ID, nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
