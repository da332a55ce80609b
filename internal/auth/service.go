package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Errors surfaced by authentication flows.
var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrUserNotFound       = errors.New("auth: user not found")
)

// RepositoryPort is the persistence interface the service depends on.
type RepositoryPort interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, email, passwordHash, name string) (*User, error)
	CreateSession(ctx context.Context, token string, userID int64, expiresAt time.Time, ip, userAgent string) error
	DeleteSession(ctx context.Context, token string) error
}

// Service wraps authentication business rules.
type Service struct {
	repo   RepositoryPort
	tokens *TokenStore
}

// NewService constructs a new Service.
func NewService(repo RepositoryPort, tokens *TokenStore) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates an account and issues a bearer token for it.
func (s *Service) Register(ctx context.Context, email, password, name string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user, err := s.repo.CreateUser(ctx, email, string(hash), name)
	if err != nil {
		return nil, "", err
	}
	token, err := s.issueFor(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate validates credentials and issues a bearer token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueFor(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify resolves a bearer token back to its account.
func (s *Service) Verify(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SignOut revokes a token and removes its session row. Unknown tokens are
// a no-op so the endpoint stays idempotent.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return err
	}
	return s.repo.DeleteSession(ctx, token)
}

// Resolve returns the claims for a token without touching postgres. Used by
// the request middleware on every protected call.
func (s *Service) Resolve(ctx context.Context, token string) (Claims, error) {
	return s.tokens.Resolve(ctx, token)
}

func (s *Service) issueFor(ctx context.Context, user *User) (string, error) {
	token, err := s.tokens.Issue(ctx, Claims{UserID: user.ID, Email: user.Email, Name: user.Name})
	if err != nil {
		return "", err
	}
	// Session rows are audit trail only; token resolution stays in redis.
	expiresAt := time.Now().Add(s.tokens.TTL())
	if err := s.repo.CreateSession(ctx, token, user.ID, expiresAt, "", ""); err != nil {
		return "", err
	}
	return token, nil
}
