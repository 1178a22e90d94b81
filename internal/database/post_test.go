package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newTestDB opens a fresh in-memory database with the schema applied.
func newTestDB(t *testing.T) *Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := NewDatabase(dsn)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func newTestUser(t *testing.T, db *Database, username string) *userWithPassword {
	t.Helper()

	us := NewUserService(db)
	user, err := us.CreateUser(username, "secret123")
	if err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return &userWithPassword{user, "secret123"}
}

func TestPostService_CreateAndGet(t *testing.T) {
	t.Run("created post is immediately readable", func(t *testing.T) {
		db := newTestDB(t)
		ps := NewPostService(db)
		author := newTestUser(t, db, "alice")

		created, err := ps.CreatePost("First post", "hello world", author.User)
		if err != nil {
			t.Fatalf("CreatePost() error = %v", err)
		}
		if created.ID == "" {
			t.Fatal("CreatePost() returned empty ID")
		}
		if created.Created.IsZero() {
			t.Fatal("CreatePost() left Created unset")
		}

		found, err := ps.GetPost(created.ID)
		if err != nil {
			t.Fatalf("GetPost() error = %v", err)
		}
		if found.Title != "First post" || found.Body != "hello world" {
			t.Errorf("GetPost() = %q/%q, want %q/%q", found.Title, found.Body, "First post", "hello world")
		}
		if found.AuthorID != author.ID || found.AuthorName != "alice" {
			t.Errorf("author = %q/%q, want %q/alice", found.AuthorID, found.AuthorName, author.ID)
		}
		if !found.Created.Equal(created.Created) {
			t.Errorf("Created = %v, want %v", found.Created, created.Created)
		}
	})

	t.Run("empty title is accepted", func(t *testing.T) {
		db := newTestDB(t)
		ps := NewPostService(db)

		created, err := ps.CreatePost("", "body only", nil)
		if err != nil {
			t.Fatalf("CreatePost() error = %v", err)
		}

		found, err := ps.GetPost(created.ID)
		if err != nil {
			t.Fatalf("GetPost() error = %v", err)
		}
		if found.Title != "" {
			t.Errorf("Title = %q, want empty", found.Title)
		}
	})

	t.Run("nil author stores an ownerless post", func(t *testing.T) {
		db := newTestDB(t)
		ps := NewPostService(db)

		created, err := ps.CreatePost("legacy", "pre-auth era", nil)
		if err != nil {
			t.Fatalf("CreatePost() error = %v", err)
		}

		found, err := ps.GetPost(created.ID)
		if err != nil {
			t.Fatalf("GetPost() error = %v", err)
		}
		if found.HasAuthor() {
			t.Errorf("HasAuthor() = true for ownerless post: %+v", found)
		}
	})

	t.Run("unknown id returns ErrPostNotFound", func(t *testing.T) {
		db := newTestDB(t)
		ps := NewPostService(db)

		_, err := ps.GetPost("no-such-id")
		if err != ErrPostNotFound {
			t.Errorf("GetPost() error = %v, want ErrPostNotFound", err)
		}
	})
}

func TestPostService_GetAllPosts(t *testing.T) {
	db := newTestDB(t)
	ps := NewPostService(db)

	if posts, err := ps.GetAllPosts(); err != nil || len(posts) != 0 {
		t.Fatalf("GetAllPosts() on empty store = %v, %v", posts, err)
	}

	first, err := ps.CreatePost("first", "a", nil)
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := ps.CreatePost("second", "b", nil)
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	posts, err := ps.GetAllPosts()
	if err != nil {
		t.Fatalf("GetAllPosts() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("GetAllPosts() returned %d posts, want 2", len(posts))
	}
	if posts[0].ID != second.ID || posts[1].ID != first.ID {
		t.Errorf("posts not newest first: got %q, %q", posts[0].Title, posts[1].Title)
	}
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Run("replaces title and body only", func(t *testing.T) {
		db := newTestDB(t)
		ps := NewPostService(db)
		author := newTestUser(t, db, "alice")

		created, err := ps.CreatePost("before", "old body", author.User)
		if err != nil {
			t.Fatalf("CreatePost() error = %v", err)
		}

		if err := ps.UpdatePost(created.ID, "after", "new body"); err != nil {
			t.Fatalf("UpdatePost() error = %v", err)
		}

		found, err := ps.GetPost(created.ID)
		if err != nil {
			t.Fatalf("GetPost() error = %v", err)
		}
		if found.Title != "after" || found.Body != "new body" {
			t.Errorf("post = %q/%q after update", found.Title, found.Body)
		}
		if !found.Created.Equal(created.Created) {
			t.Errorf("Created changed on update: %v != %v", found.Created, created.Created)
		}
		if found.AuthorID != author.ID {
			t.Errorf("AuthorID changed on update: %q", found.AuthorID)
		}
	})

	t.Run("unknown id returns ErrPostNotFound", func(t *testing.T) {
		db := newTestDB(t)
		ps := NewPostService(db)

		if err := ps.UpdatePost("no-such-id", "t", "b"); err != ErrPostNotFound {
			t.Errorf("UpdatePost() error = %v, want ErrPostNotFound", err)
		}
	})
}

func TestPostService_DeletePost(t *testing.T) {
	db := newTestDB(t)
	ps := NewPostService(db)

	created, err := ps.CreatePost("doomed", "x", nil)
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if err := ps.DeletePost(created.ID); err != nil {
		t.Fatalf("DeletePost() error = %v", err)
	}
	if _, err := ps.GetPost(created.ID); err != ErrPostNotFound {
		t.Fatalf("GetPost() after delete = %v, want ErrPostNotFound", err)
	}

	// Deleting an already-removed post is not an error
	if err := ps.DeletePost(created.ID); err != nil {
		t.Errorf("second DeletePost() error = %v, want nil", err)
	}
}
