package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, p auth.Principal, in ports.CreatePostInput) (*domain.Post, error)
	deleteFn func(ctx context.Context, p auth.Principal, id string) error
}

func (s *stubPostService) List(ctx context.Context, p auth.Principal) ([]*domain.Post, error) {
	return nil, nil
}

func (s *stubPostService) Get(ctx context.Context, p auth.Principal, id string) (*domain.Post, error) {
	return nil, domain.ErrPostNotFound
}

func (s *stubPostService) Create(ctx context.Context, p auth.Principal, in ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, p, in)
}

func (s *stubPostService) Update(ctx context.Context, p auth.Principal, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	return nil, domain.ErrPostNotFound
}

func (s *stubPostService) Delete(ctx context.Context, p auth.Principal, id string) error {
	return s.deleteFn(ctx, p, id)
}

func TestPostHandler_Create_PassesPrincipalAndIdempotencyKey(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, p auth.Principal, in ports.CreatePostInput) (*domain.Post, error) {
			if p.Username != "alice" || p.Role != domain.RoleUser {
				t.Fatalf("unexpected principal: %+v", p)
			}
			if in.IdempotencyKey != "key-42" {
				t.Fatalf("idempotency key not forwarded: %q", in.IdempotencyKey)
			}
			return &domain.Post{ID: "p1", Title: in.Title, Content: in.Content, Author: p.Username}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/posts", `{"title":"hello","content":"world"}`)
	c.Request().Header.Set("Idempotency-Key", "key-42")
	c.Set("principal", auth.Principal{Username: "alice", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["author"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_Create_ClientCannotChooseAuthor(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, p auth.Principal, in ports.CreatePostInput) (*domain.Post, error) {
			// The request body names another author; only the principal
			// must reach the service.
			if p.Username != "alice" {
				t.Fatalf("unexpected principal: %+v", p)
			}
			return &domain.Post{ID: "p1", Title: in.Title, Content: in.Content, Author: p.Username}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/posts",
		`{"title":"hello","content":"world","author":"root"}`)
	c.Set("principal", auth.Principal{Username: "alice", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["author"] != "alice" {
		t.Fatalf("author overridden by client: %+v", resp)
	}
}

func TestPostHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, p auth.Principal, in ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/posts", `{"content":"world"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPostHandler_Delete_ForwardsServiceError(t *testing.T) {
	stub := &stubPostService{
		deleteFn: func(ctx context.Context, p auth.Principal, id string) error {
			if id != "p9" {
				t.Fatalf("unexpected id: %q", id)
			}
			return domain.ErrForbidden
		},
	}
	h := NewPostHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/posts/p9", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p9")
	c.Set("principal", auth.Principal{Username: "bob", Role: domain.RoleUser})

	if err := h.Delete(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
