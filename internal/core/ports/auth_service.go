package ports

import "context"

// SignUpInput carries the registration fields after transport-level validation.
// Roles holds raw role tokens from the request ("user", "mod", "admin"); an
// empty slice defaults to the USER role.
type SignUpInput struct {
	Username  string
	Email     string
	Password  string
	Roles     []string
	FirstName string
	LastName  string
}

// SignInResult is returned on successful authentication.
type SignInResult struct {
	Token    string
	ID       string
	Username string
	Email    string
	Roles    []string
}

// AuthService implements the registration and authentication flows.
type AuthService interface {
	// SignIn verifies the credentials and issues a token. Unknown usernames
	// and wrong passwords both fail with domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)
	// SignUp registers a new account. Registration does not auto-login.
	SignUp(ctx context.Context, input SignUpInput) error
}

// TokenService issues and validates the stateless bearer tokens that carry
// the authenticated subject.
type TokenService interface {
	Issue(subject string) (string, error)
	// Validate never fails for malformed input; it simply reports false.
	Validate(token string) bool
	// Subject returns the encoded subject, or domain.ErrInvalidToken when the
	// token cannot be parsed or verified.
	Subject(token string) (string, error)
}
