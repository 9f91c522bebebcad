package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "github.com/sudoLimin/OurCollege/internal/pkg/jwt"
	"github.com/sudoLimin/OurCollege/internal/pkg/sanitize"
)

const minPasswordLen = 6

type Service struct {
	repo *Repository
	jwt  *jwtsvc.Service
}

func NewService(repo *Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Register sanitizes the profile fields, hashes the password and stores
// the account. Email uniqueness is checked before the insert; a racing
// duplicate still fails on the unique index and is reported as ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	name = sanitize.Clean(name)
	email = sanitize.Email(email)

	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, ErrEmailTaken
	}
	return u, nil
}

// Login verifies the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = sanitize.Email(email)
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Name)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
