// Package storage defines the repository contract for all entities and its
// in-memory and MongoDB implementations. Absent records are reported as
// (nil, nil); deletes report whether a record was removed.
package storage

import (
	"context"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

// Featured listing caps.
const (
	FeaturedPostLimit      = 3
	FeaturedProjectLimit   = 3
	FeaturedStoreItemLimit = 6
)

type Storage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user models.InsertUser) (*models.User, error)

	GetPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	GetPostsByCategory(ctx context.Context, category string) ([]models.Post, error)
	GetFeaturedPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.InsertPost) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, post models.UpdatePost) (*models.Post, error)
	DeletePost(ctx context.Context, id string) (bool, error)

	GetProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetProjectsByCategory(ctx context.Context, category string) ([]models.Project, error)
	GetFeaturedProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, project models.InsertProject) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, project models.UpdateProject) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)

	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment models.InsertComment) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) (bool, error)

	CreateContact(ctx context.Context, contact models.InsertContact) (*models.Contact, error)
	GetContacts(ctx context.Context) ([]models.Contact, error)

	GetStoreItems(ctx context.Context) ([]models.StoreItem, error)
	GetStoreItem(ctx context.Context, id string) (*models.StoreItem, error)
	GetFeaturedStoreItems(ctx context.Context) ([]models.StoreItem, error)
	CreateStoreItem(ctx context.Context, item models.InsertStoreItem) (*models.StoreItem, error)

	Close(ctx context.Context) error
}
