package service

import (
	"context"
	"strings"
	"sync"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// AuthService is a two-state session machine: anonymous or authenticated.
// Login persists the matched user record verbatim to the session key and
// mirrors it in memory; Current rehydrates from the session key once per
// process. There is no expiry and no token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Current(ctx context.Context) *model.User
	Logout(ctx context.Context)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository

	mu       sync.Mutex
	current  *model.User
	restored bool
}

// NewAuthService creates a new session/auth service.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) AuthService {
	return &authService{users: users, sessions: sessions}
}

// Login matches credentials against the users collection: case-insensitive
// email, exact-string password. Failure is a single generic error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	for _, u := range s.users.GetAll(ctx) {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			s.sessions.Save(ctx, u)
			s.mu.Lock()
			s.current = &u
			s.restored = true
			s.mu.Unlock()
			return &u, nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}

// Register creates a customer account and signs it in.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	user := model.User{
		ID:       model.NewID(),
		Name:     name,
		Email:    email,
		Role:     model.RoleUser,
		Password: password,
		Avatar:   "/img/avatars/default.png",
	}
	if err := s.users.Register(ctx, user); err != nil {
		return nil, err
	}
	s.sessions.Save(ctx, user)
	s.mu.Lock()
	s.current = &user
	s.restored = true
	s.mu.Unlock()
	return &user, nil
}

// Current returns the signed-in user or nil. The first call after process
// start attempts a rehydrate from the persisted session record.
func (s *authService) Current(ctx context.Context) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.restored {
		s.current = s.sessions.Get(ctx)
		s.restored = true
	}
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Logout clears both the in-memory state and the persisted session record.
func (s *authService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.restored = true
	s.mu.Unlock()
	s.sessions.Clear(ctx)
}
