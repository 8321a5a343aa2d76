package auth

import "context"

// AuthService defines business logic for authentication
type AuthService interface {
	// Register creates a new user account; the role is normalized at this
	// boundary and defaults to employee
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login verifies credentials and issues tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Logout revokes the presented access token
	Logout(ctx context.Context, accessToken string) error
}
