package storage

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

// Mongo implements Storage on MongoDB. It is selected at startup when
// MONGODB_URI is set; the repository contract is identical to Memory.
type Mongo struct {
	client     *mongo.Client
	users      *mongo.Collection
	posts      *mongo.Collection
	projects   *mongo.Collection
	comments   *mongo.Collection
	contacts   *mongo.Collection
	storeItems *mongo.Collection
}

func NewMongo(ctx context.Context, uri string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database("portfolio")
	return &Mongo{
		client:     client,
		users:      db.Collection("users"),
		posts:      db.Collection("posts"),
		projects:   db.Collection("projects"),
		comments:   db.Collection("comments"),
		contacts:   db.Collection("contacts"),
		storeItems: db.Collection("store_items"),
	}, nil
}

var _ Storage = (*Mongo)(nil)

// categoryFilter matches a category ignoring case, anchored on both ends.
func categoryFilter(category string) bson.M {
	return bson.M{"category": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(category) + "$",
		Options: "i",
	}}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (s *Mongo) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Mongo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Mongo) CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(insert.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     insert.Username,
		PasswordHash: string(hashed),
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Mongo) GetPosts(ctx context.Context) ([]models.Post, error) {
	return s.findPosts(ctx, bson.M{}, newestFirst)
}

func (s *Mongo) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Mongo) GetPostsByCategory(ctx context.Context, category string) ([]models.Post, error) {
	return s.findPosts(ctx, categoryFilter(category), newestFirst)
}

func (s *Mongo) GetFeaturedPosts(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(FeaturedPostLimit)
	return s.findPosts(ctx, bson.M{"published": true}, opts)
}

func (s *Mongo) findPosts(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Post, error) {
	cursor, err := s.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Mongo) CreatePost(ctx context.Context, insert models.InsertPost) (*models.Post, error) {
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
	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Mongo) UpdatePost(ctx context.Context, id string, update models.UpdatePost) (*models.Post, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Excerpt != nil {
		set["excerpt"] = *update.Excerpt
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.FeaturedImage != nil {
		set["featuredImage"] = *update.FeaturedImage
	}
	if update.Published != nil {
		set["published"] = *update.Published
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err := s.posts.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Mongo) DeletePost(ctx context.Context, id string) (bool, error) {
	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Mongo) GetProjects(ctx context.Context) ([]models.Project, error) {
	return s.findProjects(ctx, bson.M{}, newestFirst)
}

func (s *Mongo) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := s.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Mongo) GetProjectsByCategory(ctx context.Context, category string) ([]models.Project, error) {
	return s.findProjects(ctx, categoryFilter(category), newestFirst)
}

func (s *Mongo) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(FeaturedProjectLimit)
	return s.findProjects(ctx, bson.M{"featured": true}, opts)
}

func (s *Mongo) findProjects(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Project, error) {
	cursor, err := s.projects.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Mongo) CreateProject(ctx context.Context, insert models.InsertProject) (*models.Project, error) {
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
	if _, err := s.projects.InsertOne(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Mongo) UpdateProject(ctx context.Context, id string, update models.UpdateProject) (*models.Project, error) {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Technologies != nil {
		set["technologies"] = *update.Technologies
	}
	if update.LiveURL != nil {
		set["liveUrl"] = *update.LiveURL
	}
	if update.GithubURL != nil {
		set["githubUrl"] = *update.GithubURL
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	if len(set) == 0 {
		return s.GetProject(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var project models.Project
	err := s.projects.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Mongo) DeleteProject(ctx context.Context, id string) (bool, error) {
	res, err := s.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Mongo) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.comments.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Mongo) CreateComment(ctx context.Context, insert models.InsertComment) (*models.Comment, error) {
	comment := models.Comment{
		ID:        uuid.NewString(),
		PostID:    insert.PostID,
		Author:    insert.Author,
		Email:     insert.Email,
		Content:   insert.Content,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.comments.InsertOne(ctx, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Mongo) DeleteComment(ctx context.Context, id string) (bool, error) {
	res, err := s.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Mongo) CreateContact(ctx context.Context, insert models.InsertContact) (*models.Contact, error) {
	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.contacts.InsertOne(ctx, contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *Mongo) GetContacts(ctx context.Context) ([]models.Contact, error) {
	cursor, err := s.contacts.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *Mongo) GetStoreItems(ctx context.Context) ([]models.StoreItem, error) {
	return s.findStoreItems(ctx, bson.M{}, newestFirst)
}

func (s *Mongo) GetStoreItem(ctx context.Context, id string) (*models.StoreItem, error) {
	var item models.StoreItem
	err := s.storeItems.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Mongo) GetFeaturedStoreItems(ctx context.Context) ([]models.StoreItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(FeaturedStoreItemLimit)
	return s.findStoreItems(ctx, bson.M{"featured": true}, opts)
}

func (s *Mongo) findStoreItems(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.StoreItem, error) {
	cursor, err := s.storeItems.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.StoreItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Mongo) CreateStoreItem(ctx context.Context, insert models.InsertStoreItem) (*models.StoreItem, error) {
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
	if _, err := s.storeItems.InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
