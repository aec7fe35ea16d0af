package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	ListFn           func(ctx context.Context) ([]model.BookDetail, error)
	FindByIDFn       func(ctx context.Context, id uint) (*model.BookDetail, error)
	CreateFn         func(ctx context.Context, b model.NewBook) (uint, error)
	UpdateMetadataFn func(ctx context.Context, id uint, f model.BookFields) error
	UpsertStockFn    func(ctx context.Context, id uint, quantity int) error
	DeleteFn         func(ctx context.Context, id uint) error
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.BookDetail, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.BookDetail, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookRepo) Create(ctx context.Context, b model.NewBook) (uint, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return 1, nil
}

func (f *fakeBookRepo) UpdateMetadata(ctx context.Context, id uint, fields model.BookFields) error {
	if f.UpdateMetadataFn != nil {
		return f.UpdateMetadataFn(ctx, id, fields)
	}
	return nil
}

func (f *fakeBookRepo) UpsertStock(ctx context.Context, id uint, quantity int) error {
	if f.UpsertStockFn != nil {
		return f.UpsertStockFn(ctx, id, quantity)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeGenreRepo struct {
	ListFn func(ctx context.Context) ([]model.Genre, error)
}

func (f *fakeGenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

type fakeAuthorRepo struct {
	ListFn func(ctx context.Context) ([]model.Author, error)
}

func (f *fakeAuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func setupTestRouterWithRepos(
	books repository.BookRepository,
	genres repository.GenreRepository,
	authors repository.AuthorRepository,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())

	h := NewBookHandler(books, genres, authors)
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupBookRouterWithRepo(books repository.BookRepository) *gin.Engine {
	return setupTestRouterWithRepos(books, &fakeGenreRepo{}, &fakeAuthorRepo{})
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupTestRouterWithRepos(
		repository.NewGormBookRepository(db),
		repository.NewGormGenreRepository(db),
		repository.NewGormAuthorRepository(db),
	)
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch b := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) validation.ErrorResponse {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != code {
		t.Fatalf("expected error code %q, got %q", code, resp.Code)
	}
	return resp
}
