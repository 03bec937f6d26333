package storage

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

func strPtr(s string) *string      { return &s }
func boolPtr(b bool) *bool         { return &b }
func tagsPtr(t []string) *[]string { return &t }

func insertPost(title, category string, published bool) models.InsertPost {
	return models.InsertPost{
		Title:     title,
		Content:   "# " + title,
		Excerpt:   "About " + title,
		Category:  category,
		Published: published,
	}
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	post, err := store.CreatePost(ctx, insertPost("First", "Development", true))
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if post.ID == "" {
		t.Error("expected a generated id")
	}
	if !post.CreatedAt.Equal(post.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt at creation, got %v / %v", post.CreatedAt, post.UpdatedAt)
	}
	if post.Tags == nil {
		t.Error("expected tags to default to an empty list")
	}

	other, err := store.CreatePost(ctx, insertPost("Second", "Development", true))
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if other.ID == post.ID {
		t.Error("expected unique ids")
	}

	got, err := store.GetPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got == nil || got.Title != "First" {
		t.Errorf("expected to read back the stored post, got %+v", got)
	}
}

func TestGetPostAbsent(t *testing.T) {
	store := NewMemory()

	post, err := store.GetPost(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post != nil {
		t.Errorf("expected nil for an absent id, got %+v", post)
	}
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	post, err := store.CreatePost(ctx, insertPost("Original", "Development", false))
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	missing, err := store.UpdatePost(ctx, "missing", models.UpdatePost{Title: strPtr("X")})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil when updating a nonexistent id, got %+v", missing)
	}

	time.Sleep(5 * time.Millisecond)

	updated, err := store.UpdatePost(ctx, post.ID, models.UpdatePost{
		Title:     strPtr("Renamed"),
		Published: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated == nil {
		t.Fatal("expected the updated post")
	}
	if updated.Title != "Renamed" || !updated.Published {
		t.Errorf("expected supplied fields to change, got %+v", updated)
	}
	if updated.Content != post.Content || updated.Excerpt != post.Excerpt || updated.Category != post.Category {
		t.Errorf("expected unmodified fields to be preserved, got %+v", updated)
	}
	if !updated.UpdatedAt.After(post.UpdatedAt) {
		t.Errorf("expected updatedAt to advance: %v -> %v", post.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(post.CreatedAt) {
		t.Errorf("expected createdAt to be untouched: %v -> %v", post.CreatedAt, updated.CreatedAt)
	}
}

func TestDeletePostTwice(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	post, err := store.CreatePost(ctx, insertPost("Doomed", "Development", true))
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	deleted, err := store.DeletePost(ctx, post.ID)
	if err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if !deleted {
		t.Error("expected first delete to report true")
	}

	deleted, err = store.DeletePost(ctx, post.ID)
	if err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestPostsByCategoryCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for _, category := range []string{"Web", "web", "Design"} {
		if _, err := store.CreatePost(ctx, insertPost("Post "+category, category, true)); err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
	}

	upper, err := store.GetPostsByCategory(ctx, "Web")
	if err != nil {
		t.Fatalf("GetPostsByCategory: %v", err)
	}
	lower, err := store.GetPostsByCategory(ctx, "web")
	if err != nil {
		t.Fatalf("GetPostsByCategory: %v", err)
	}

	if len(upper) != 2 || len(lower) != 2 {
		t.Fatalf("expected 2 posts for either casing, got %d and %d", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i].ID != lower[i].ID {
			t.Errorf("expected identical result sets, got %v vs %v", upper[i].ID, lower[i].ID)
		}
	}
}

func TestPostsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	titles := []string{"oldest", "middle", "newest"}
	for _, title := range titles {
		if _, err := store.CreatePost(ctx, insertPost(title, "Development", true)); err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	posts, err := store.GetPosts(ctx)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Title != "newest" || posts[2].Title != "oldest" {
		t.Errorf("expected newest-first ordering, got %q, %q, %q", posts[0].Title, posts[1].Title, posts[2].Title)
	}
}

func TestFeaturedPostsCapAndFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for i := 0; i < 5; i++ {
		if _, err := store.CreatePost(ctx, insertPost("published", "Development", true)); err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
	}
	if _, err := store.CreatePost(ctx, insertPost("draft", "Development", false)); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	featured, err := store.GetFeaturedPosts(ctx)
	if err != nil {
		t.Fatalf("GetFeaturedPosts: %v", err)
	}
	if len(featured) != FeaturedPostLimit {
		t.Errorf("expected the cap of %d featured posts, got %d", FeaturedPostLimit, len(featured))
	}
	for _, post := range featured {
		if !post.Published {
			t.Errorf("expected only published posts, got %+v", post)
		}
	}
}

func TestFeaturedProjectsCap(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for i := 0; i < 5; i++ {
		_, err := store.CreateProject(ctx, models.InsertProject{
			Title:       "Project",
			Description: "A project",
			Image:       "https://example.com/p.png",
			Category:    "web",
			Featured:    true,
		})
		if err != nil {
			t.Fatalf("CreateProject: %v", err)
		}
	}

	featured, err := store.GetFeaturedProjects(ctx)
	if err != nil {
		t.Fatalf("GetFeaturedProjects: %v", err)
	}
	if len(featured) != FeaturedProjectLimit {
		t.Errorf("expected the cap of %d featured projects, got %d", FeaturedProjectLimit, len(featured))
	}
}

func TestUpdateProjectMergesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	project, err := store.CreateProject(ctx, models.InsertProject{
		Title:       "Dashboard",
		Description: "Admin dashboard",
		Image:       "https://example.com/d.png",
		Category:    "web",
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.Technologies == nil {
		t.Error("expected technologies to default to an empty list")
	}

	updated, err := store.UpdateProject(ctx, project.ID, models.UpdateProject{
		Featured:     boolPtr(true),
		Technologies: tagsPtr([]string{"Go"}),
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated == nil {
		t.Fatal("expected the updated project")
	}
	if !updated.Featured || len(updated.Technologies) != 1 {
		t.Errorf("expected supplied fields to change, got %+v", updated)
	}
	if updated.Title != "Dashboard" || updated.Category != "web" {
		t.Errorf("expected unmodified fields to be preserved, got %+v", updated)
	}

	missing, err := store.UpdateProject(ctx, "missing", models.UpdateProject{Featured: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil when updating a nonexistent id, got %+v", missing)
	}
}

func TestCommentsFilteredAndOldestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for _, c := range []struct{ post, author string }{
		{"post-1", "first"},
		{"post-1", "second"},
		{"post-2", "other"},
	} {
		_, err := store.CreateComment(ctx, models.InsertComment{
			PostID:  c.post,
			Author:  c.author,
			Email:   "a@b.com",
			Content: "hello",
		})
		if err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	comments, err := store.GetComments(ctx, "post-1")
	if err != nil {
		t.Fatalf("GetComments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments for post-1, got %d", len(comments))
	}
	if comments[0].Author != "first" || comments[1].Author != "second" {
		t.Errorf("expected oldest-first ordering, got %q then %q", comments[0].Author, comments[1].Author)
	}

	// No referential integrity: the parent post never existed, the comments
	// are kept anyway.
	deleted, err := store.DeleteComment(ctx, comments[0].ID)
	if err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report true")
	}
}

func TestFeaturedStoreItemsCap(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for i := 0; i < 8; i++ {
		_, err := store.CreateStoreItem(ctx, models.InsertStoreItem{
			Title:       "Item",
			Description: "A digital product",
			Price:       1900,
			Image:       "https://example.com/i.png",
			Category:    "Templates",
			Featured:    true,
		})
		if err != nil {
			t.Fatalf("CreateStoreItem: %v", err)
		}
	}

	featured, err := store.GetFeaturedStoreItems(ctx)
	if err != nil {
		t.Fatalf("GetFeaturedStoreItems: %v", err)
	}
	if len(featured) != FeaturedStoreItemLimit {
		t.Errorf("expected the cap of %d featured items, got %d", FeaturedStoreItemLimit, len(featured))
	}
}

func TestEmptyListingsAreEmptyNotNil(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	// Nothing matches; listings must still serialize as [] on the wire, so
	// they may never be nil.
	checks := []struct {
		name string
		list func() (int, bool)
	}{
		{"posts by category", func() (int, bool) {
			posts, err := store.GetPostsByCategory(ctx, "nomatch")
			if err != nil {
				t.Fatalf("GetPostsByCategory: %v", err)
			}
			return len(posts), posts != nil
		}},
		{"featured posts", func() (int, bool) {
			posts, err := store.GetFeaturedPosts(ctx)
			if err != nil {
				t.Fatalf("GetFeaturedPosts: %v", err)
			}
			return len(posts), posts != nil
		}},
		{"projects by category", func() (int, bool) {
			projects, err := store.GetProjectsByCategory(ctx, "nomatch")
			if err != nil {
				t.Fatalf("GetProjectsByCategory: %v", err)
			}
			return len(projects), projects != nil
		}},
		{"featured projects", func() (int, bool) {
			projects, err := store.GetFeaturedProjects(ctx)
			if err != nil {
				t.Fatalf("GetFeaturedProjects: %v", err)
			}
			return len(projects), projects != nil
		}},
		{"comments", func() (int, bool) {
			comments, err := store.GetComments(ctx, "no-post")
			if err != nil {
				t.Fatalf("GetComments: %v", err)
			}
			return len(comments), comments != nil
		}},
		{"featured store items", func() (int, bool) {
			items, err := store.GetFeaturedStoreItems(ctx)
			if err != nil {
				t.Fatalf("GetFeaturedStoreItems: %v", err)
			}
			return len(items), items != nil
		}},
	}

	for _, check := range checks {
		n, nonNil := check.list()
		if n != 0 {
			t.Errorf("%s: expected no results, got %d", check.name, n)
		}
		if !nonNil {
			t.Errorf("%s: expected an empty slice, got nil", check.name)
		}
	}
}

func TestContacts(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	contact, err := store.CreateContact(ctx, models.InsertContact{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if contact.ID == "" || contact.CreatedAt.IsZero() {
		t.Errorf("expected id and timestamp to be assigned, got %+v", contact)
	}

	contacts, err := store.GetContacts(ctx)
	if err != nil {
		t.Fatalf("GetContacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Errorf("expected 1 contact, got %d", len(contacts))
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	user, err := store.CreateUser(ctx, models.InsertUser{Username: "ada", Password: "hunter22"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("expected the password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")); err != nil {
		t.Errorf("expected hash to verify: %v", err)
	}

	byName, err := store.GetUserByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName == nil || byName.ID != user.ID {
		t.Errorf("expected to find the user by username, got %+v", byName)
	}

	absent, err := store.GetUser(ctx, "missing")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if absent != nil {
		t.Errorf("expected nil for an absent user, got %+v", absent)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if err := Seed(ctx, store); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	posts, _ := store.GetPosts(ctx)
	projects, _ := store.GetProjects(ctx)
	items, _ := store.GetStoreItems(ctx)

	if len(posts) != 3 || len(projects) != 3 || len(items) != 8 {
		t.Errorf("expected 3 posts, 3 projects, 8 items; got %d, %d, %d", len(posts), len(projects), len(items))
	}

	// Seeding a populated store is a no-op.
	if err := Seed(ctx, store); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	items, _ = store.GetStoreItems(ctx)
	if len(items) != 8 {
		t.Errorf("expected re-seed to be a no-op, got %d items", len(items))
	}
}
