package repositories

import (
	"context"
	"errors"
	"time"

	"aqarpress/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateSlug is returned when an insert collides with an existing
// slug. The caller surfaces it as a conflict, never as a silent merge.
var ErrDuplicateSlug = errors.New("slug already exists")

// ErrDuplicateEmail is returned when registration hits an existing account.
var ErrDuplicateEmail = errors.New("email already registered")

// PostRepository is the storage port consumed by the post service.
type PostRepository interface {
	Create(ctx context.Context, req *models.CreatePostRequest, authorID uint) (uint, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, status string, limit, offset int) ([]models.Post, int64, error)
	Delete(ctx context.Context, id uint) error
	PublishDue(ctx context.Context, now time.Time) ([]models.Post, error)
}

// PropertyRepository is the storage port for listings.
type PropertyRepository interface {
	Create(ctx context.Context, req *models.CreatePropertyRequest, authorID uint) (uint, error)
	GetBySlug(ctx context.Context, slug string) (*models.Property, error)
	List(ctx context.Context, filter models.PropertyFilter, limit, offset int) ([]models.Property, int64, error)
	Delete(ctx context.Context, id uint) error
}

// UserRepository is the storage port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
