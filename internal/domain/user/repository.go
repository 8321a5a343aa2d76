package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, user User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	// Used for login and duplicate registration checks
	GetByEmail(ctx context.Context, email string) (User, error)

	// Update updates an existing user account
	Update(ctx context.Context, user User) error
}
