package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

func newCommentFixture(t *testing.T) (*CommentService, *stubCommentRepo, *stubUserRepo, *domain.Post) {
	t.Helper()
	users := newStubUserRepo()
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	seedUser(t, users, "alice", domain.RoleUser)
	seedUser(t, users, "bob", domain.RoleUser)

	post, err := posts.Insert(context.Background(), &domain.Post{Title: "t", Content: "c", Author: "alice"})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return NewCommentService(comments, posts, users, zerolog.Nop()), comments, users, post
}

func TestCommentService_Create_BindsOwnerToPrincipal(t *testing.T) {
	svc, _, _, post := newCommentFixture(t)

	comment, err := svc.Create(context.Background(), auth.Principal{Username: "bob", Role: domain.RoleUser}, ports.CreateCommentInput{
		PostID:  post.ID,
		Content: "nice post",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if comment.Author != "bob" || comment.UserID == "" {
		t.Fatalf("owner not bound to principal: %+v", comment)
	}
	if comment.PostID != post.ID {
		t.Fatalf("comment not attached to post: %+v", comment)
	}
}

func TestCommentService_Create_ParentMustExist(t *testing.T) {
	svc, _, _, _ := newCommentFixture(t)

	_, err := svc.Create(context.Background(), auth.Principal{Username: "bob", Role: domain.RoleUser}, ports.CreateCommentInput{
		PostID:  "missing",
		Content: "orphan",
	})
	if err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Create_RequiresAuthentication(t *testing.T) {
	svc, _, _, post := newCommentFixture(t)

	if _, err := svc.Create(context.Background(), auth.Principal{}, ports.CreateCommentInput{PostID: post.ID, Content: "x"}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCommentService_ListScopedToPost(t *testing.T) {
	svc, comments, _, post := newCommentFixture(t)
	bob := auth.Principal{Username: "bob", Role: domain.RoleUser}

	if _, err := svc.Create(context.Background(), bob, ports.CreateCommentInput{PostID: post.ID, Content: "one"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// A comment on another post, inserted directly.
	if _, err := comments.Insert(context.Background(), &domain.Comment{PostID: "other", Content: "two", Author: "bob"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	scoped, err := svc.List(context.Background(), auth.Principal{}, post.ID)
	if err != nil {
		t.Fatalf("anonymous list failed: %v", err)
	}
	if len(scoped) != 1 || scoped[0].Content != "one" {
		t.Fatalf("unexpected scoped list: %+v", scoped)
	}

	all, err := svc.List(context.Background(), auth.Principal{}, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(all))
	}
}

// Comment ownership must survive a rename and must not transfer to whoever
// registers the freed username.
func TestCommentService_OwnershipFollowsAccountRename(t *testing.T) {
	svc, _, users, post := newCommentFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, auth.Principal{Username: "bob", Role: domain.RoleUser}, ports.CreateCommentInput{
		PostID:  post.ID,
		Content: "mine",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	record, err := users.FindByIdentity(ctx, "bob")
	if err != nil {
		t.Fatalf("lookup bob: %v", err)
	}
	record.Username = "robert"
	if err := users.Update(ctx, record); err != nil {
		t.Fatalf("rename bob: %v", err)
	}
	if _, err := users.Insert(ctx, &domain.User{
		Username: "bob",
		Email:    "impostor@example.com",
		Role:     domain.RoleUser,
	}); err != nil {
		t.Fatalf("register recycled username: %v", err)
	}

	recycled := auth.Principal{Username: "bob", Role: domain.RoleUser}
	if err := svc.Delete(ctx, recycled, created.ID); err != domain.ErrForbidden {
		t.Fatalf("recycled username delete: expected ErrForbidden, got %v", err)
	}

	renamed := auth.Principal{Username: "robert", Role: domain.RoleUser}
	if _, err := svc.Update(ctx, renamed, created.ID, ports.UpdateCommentInput{Content: "still mine"}); err != nil {
		t.Fatalf("renamed owner update failed: %v", err)
	}
	if err := svc.Delete(ctx, renamed, created.ID); err != nil {
		t.Fatalf("renamed owner delete failed: %v", err)
	}
}

func TestCommentService_UpdateDelete_OwnershipAndRoles(t *testing.T) {
	svc, _, _, post := newCommentFixture(t)
	bob := auth.Principal{Username: "bob", Role: domain.RoleUser}

	created, err := svc.Create(context.Background(), bob, ports.CreateCommentInput{PostID: post.ID, Content: "original"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), auth.Principal{Username: "alice", Role: domain.RoleUser}, created.ID, ports.UpdateCommentInput{Content: "hacked"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), auth.Principal{Username: "mallory", Role: domain.RoleModerator}, created.ID, ports.UpdateCommentInput{Content: "moderated"})
	if err != nil {
		t.Fatalf("moderator update failed: %v", err)
	}
	if updated.Content != "moderated" {
		t.Fatalf("unexpected content: %q", updated.Content)
	}

	if err := svc.Delete(context.Background(), auth.Principal{Username: "alice", Role: domain.RoleUser}, created.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), bob, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
