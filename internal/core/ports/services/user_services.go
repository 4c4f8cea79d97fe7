package services

import (
	"context"

	"github.com/pharmadesk/pharma_ledger_app/internal/core/domain"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	// CreateUser creates a new user with a locally managed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeleteUser marks a user as deleted.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}

// UserAuthenticatorSvc defines authentication operations on users
type UserAuthenticatorSvc interface {
	// AuthenticateUser verifies a username/password pair and returns the user
	// on success.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)

	// GetOrCreateGoogleUser finds the user matching the verified Google
	// profile, creating one on first login.
	GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticatorSvc
}
