package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

// Memory is the default map-backed Storage implementation. Data lives only in
// process memory and resets on restart.
type Memory struct {
	mu         sync.RWMutex
	users      map[string]models.User
	posts      map[string]models.Post
	projects   map[string]models.Project
	comments   map[string]models.Comment
	contacts   map[string]models.Contact
	storeItems map[string]models.StoreItem
}

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[string]models.User),
		posts:      make(map[string]models.Post),
		projects:   make(map[string]models.Project),
		comments:   make(map[string]models.Comment),
		contacts:   make(map[string]models.Contact),
		storeItems: make(map[string]models.StoreItem),
	}
}

var _ Storage = (*Memory)(nil)

func (m *Memory) GetUser(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *Memory) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(insert.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := models.User{
		ID:           uuid.NewString(),
		Username:     insert.Username,
		PasswordHash: string(hashed),
	}
	m.users[user.ID] = user
	return &user, nil
}

func (m *Memory) GetPosts(ctx context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	posts := make([]models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (m *Memory) GetPost(ctx context.Context, id string) (*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (m *Memory) GetPostsByCategory(ctx context.Context, category string) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	posts := []models.Post{}
	for _, post := range m.posts {
		if strings.EqualFold(post.Category, category) {
			posts = append(posts, post)
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (m *Memory) GetFeaturedPosts(ctx context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	posts := []models.Post{}
	for _, post := range m.posts {
		if post.Published {
			posts = append(posts, post)
		}
	}
	sortPostsNewestFirst(posts)
	if len(posts) > FeaturedPostLimit {
		posts = posts[:FeaturedPostLimit]
	}
	return posts, nil
}

func (m *Memory) CreatePost(ctx context.Context, insert models.InsertPost) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	post := models.Post{
		ID:            uuid.NewString(),
		Title:         insert.Title,
		Content:       insert.Content,
		Excerpt:       insert.Excerpt,
		Category:      insert.Category,
		Tags:          insert.Tags,
		FeaturedImage: insert.FeaturedImage,
		Published:     insert.Published,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	m.posts[post.ID] = post
	return &post, nil
}

func (m *Memory) UpdatePost(ctx context.Context, id string, update models.UpdatePost) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Excerpt != nil {
		post.Excerpt = *update.Excerpt
	}
	if update.Category != nil {
		post.Category = *update.Category
	}
	if update.Tags != nil {
		post.Tags = *update.Tags
	}
	if update.FeaturedImage != nil {
		post.FeaturedImage = *update.FeaturedImage
	}
	if update.Published != nil {
		post.Published = *update.Published
	}
	post.UpdatedAt = time.Now().UTC()

	m.posts[id] = post
	return &post, nil
}

func (m *Memory) DeletePost(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.posts[id]
	delete(m.posts, id)
	return ok, nil
}

func (m *Memory) GetProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]models.Project, 0, len(m.projects))
	for _, project := range m.projects {
		projects = append(projects, project)
	}
	sortProjectsNewestFirst(projects)
	return projects, nil
}

func (m *Memory) GetProject(ctx context.Context, id string) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	project, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (m *Memory) GetProjectsByCategory(ctx context.Context, category string) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := []models.Project{}
	for _, project := range m.projects {
		if strings.EqualFold(project.Category, category) {
			projects = append(projects, project)
		}
	}
	sortProjectsNewestFirst(projects)
	return projects, nil
}

func (m *Memory) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := []models.Project{}
	for _, project := range m.projects {
		if project.Featured {
			projects = append(projects, project)
		}
	}
	sortProjectsNewestFirst(projects)
	if len(projects) > FeaturedProjectLimit {
		projects = projects[:FeaturedProjectLimit]
	}
	return projects, nil
}

func (m *Memory) CreateProject(ctx context.Context, insert models.InsertProject) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	project := models.Project{
		ID:           uuid.NewString(),
		Title:        insert.Title,
		Description:  insert.Description,
		Image:        insert.Image,
		Category:     insert.Category,
		Technologies: insert.Technologies,
		LiveURL:      insert.LiveURL,
		GithubURL:    insert.GithubURL,
		Featured:     insert.Featured,
		CreatedAt:    time.Now().UTC(),
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	m.projects[project.ID] = project
	return &project, nil
}

func (m *Memory) UpdateProject(ctx context.Context, id string, update models.UpdateProject) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	project, ok := m.projects[id]
	if !ok {
		return nil, nil
	}

	if update.Title != nil {
		project.Title = *update.Title
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Image != nil {
		project.Image = *update.Image
	}
	if update.Category != nil {
		project.Category = *update.Category
	}
	if update.Technologies != nil {
		project.Technologies = *update.Technologies
	}
	if update.LiveURL != nil {
		project.LiveURL = *update.LiveURL
	}
	if update.GithubURL != nil {
		project.GithubURL = *update.GithubURL
	}
	if update.Featured != nil {
		project.Featured = *update.Featured
	}

	m.projects[id] = project
	return &project, nil
}

func (m *Memory) DeleteProject(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.projects[id]
	delete(m.projects, id)
	return ok, nil
}

func (m *Memory) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comments := []models.Comment{}
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	// Oldest first, the order they read in under a post.
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *Memory) CreateComment(ctx context.Context, insert models.InsertComment) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	comment := models.Comment{
		ID:        uuid.NewString(),
		PostID:    insert.PostID,
		Author:    insert.Author,
		Email:     insert.Email,
		Content:   insert.Content,
		CreatedAt: time.Now().UTC(),
	}
	m.comments[comment.ID] = comment
	return &comment, nil
}

func (m *Memory) DeleteComment(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.comments[id]
	delete(m.comments, id)
	return ok, nil
}

func (m *Memory) CreateContact(ctx context.Context, insert models.InsertContact) (*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now().UTC(),
	}
	m.contacts[contact.ID] = contact
	return &contact, nil
}

func (m *Memory) GetContacts(ctx context.Context) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contacts := make([]models.Contact, 0, len(m.contacts))
	for _, contact := range m.contacts {
		contacts = append(contacts, contact)
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}

func (m *Memory) GetStoreItems(ctx context.Context) ([]models.StoreItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.StoreItem, 0, len(m.storeItems))
	for _, item := range m.storeItems {
		items = append(items, item)
	}
	sortStoreItemsNewestFirst(items)
	return items, nil
}

func (m *Memory) GetStoreItem(ctx context.Context, id string) (*models.StoreItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.storeItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *Memory) GetFeaturedStoreItems(ctx context.Context) ([]models.StoreItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []models.StoreItem{}
	for _, item := range m.storeItems {
		if item.Featured {
			items = append(items, item)
		}
	}
	sortStoreItemsNewestFirst(items)
	if len(items) > FeaturedStoreItemLimit {
		items = items[:FeaturedStoreItemLimit]
	}
	return items, nil
}

func (m *Memory) CreateStoreItem(ctx context.Context, insert models.InsertStoreItem) (*models.StoreItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := models.StoreItem{
		ID:          uuid.NewString(),
		Title:       insert.Title,
		Description: insert.Description,
		Price:       insert.Price,
		Image:       insert.Image,
		Category:    insert.Category,
		DownloadURL: insert.DownloadURL,
		Featured:    insert.Featured,
		CreatedAt:   time.Now().UTC(),
	}
	m.storeItems[item.ID] = item
	return &item, nil
}

func (m *Memory) Close(ctx context.Context) error {
	return nil
}

func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func sortProjectsNewestFirst(projects []models.Project) {
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}

func sortStoreItemsNewestFirst(items []models.StoreItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
