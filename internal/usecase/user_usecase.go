package usecase

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput defines the updatable profile fields. Nil pointers
// leave the corresponding field untouched.
type UpdateProfileInput struct {
	FirstName         *string
	LastName          *string
	Phone             *string
	Region            *string
	District          *string
	Ward              *string
	PreferredLanguage *entity.Language
	ProfileImageURL   *string
}

// ListUsersInput defines the admin user listing parameters.
type ListUsersInput struct {
	Role   entity.Role
	Status entity.UserStatus
	Region string
	Search string
	Page   int
	PerPage int
}

// UpdateUserStatusInput defines an admin status change.
type UpdateUserStatusInput struct {
	UserID uuid.UUID
	Status entity.UserStatus
}

// --- Output DTOs ---

// UserListOutput returns a page of users with the total count.
type UserListOutput struct {
	Users []*entity.User
	Total int64
}

// UserUsecase defines the interface for user profile business operations.
type UserUsecase interface {
	// GetProfile retrieves a user's own profile.
	GetProfile(ctx context.Context, actor entity.Actor) (*entity.User, error)

	// UpdateProfile applies partial updates to the target user's profile.
	// Allowed for the owner or an admin.
	UpdateProfile(ctx context.Context, actor entity.Actor, targetID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount anonymizes the target user and ends their sessions.
	// Allowed for the owner or an admin. Historical records keep the
	// scrubbed row so foreign keys stay intact.
	DeleteAccount(ctx context.Context, actor entity.Actor, targetID uuid.UUID) error

	// ListUsers retrieves users matching the filter. Admin only.
	ListUsers(ctx context.Context, actor entity.Actor, input *ListUsersInput) (*UserListOutput, error)

	// GetUser retrieves any user by ID. Admin only.
	GetUser(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.User, error)

	// UpdateUserStatus activates, deactivates, or suspends an account. Admin
	// only. Suspending ends the target's sessions.
	UpdateUserStatus(ctx context.Context, actor entity.Actor, input *UpdateUserStatusInput) (*entity.User, error)
}

// userListFilter converts listing input into a repository filter.
func (in *ListUsersInput) Filter() repository.UserListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.UserListFilter{
		Role:   in.Role,
		Status: in.Status,
		Region: in.Region,
		Search: in.Search,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
}

// Pagination bounds shared by all listing operations.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
