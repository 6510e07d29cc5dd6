package repository

import (
	"context"

	"github.com/yuzuhara/task-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Email uniqueness is enforced by the
	// store's unique index, not by a prior lookup.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users
	List(ctx context.Context) ([]models.User, error)

	// Update persists changes to a user
	Update(ctx context.Context, user *models.User) error

	// DeleteWithTasks deletes a user and every task they own as a single
	// unit of work
	DeleteWithTasks(ctx context.Context, id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Task, error)

	// List returns all tasks with their owners preloaded
	List(ctx context.Context) ([]models.Task, error)

	// Update persists changes to a task
	Update(ctx context.Context, task *models.Task) error

	// Delete deletes a task
	Delete(ctx context.Context, id uint64) error
}
