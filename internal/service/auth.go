package service

import (
	"context"
	"errors"

	"github.com/marqspnosa/shopwise/internal/domain"
	"github.com/marqspnosa/shopwise/internal/events"
	"github.com/marqspnosa/shopwise/internal/hash"
	"github.com/marqspnosa/shopwise/internal/logging"
	"github.com/marqspnosa/shopwise/internal/metrics"
	"github.com/marqspnosa/shopwise/internal/models"
	"github.com/marqspnosa/shopwise/internal/repo"
	"github.com/marqspnosa/shopwise/internal/tokens"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthService struct {
	Repo   UserStore
	Tokens *tokens.Service
	Events events.Publisher
}

type LoginResult struct {
	AccessToken string
	User        *models.User
}

func (s *AuthService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if len(password) > maxPasswordBytes {
		return nil, domain.Validation("password must be at most 72 bytes")
	}

	if err := s.checkAvailable(ctx, email, username); err != nil {
		s.countRegister(err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, domain.Fatal("cannot hash the password", err)
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		HashedPassword: pwHash,
		IsActive:       true,
		Role:           models.RoleUser,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			// Lost a race with a concurrent registration; report which field collided.
			err = s.checkAvailable(ctx, email, username)
			if err == nil {
				err = domain.Conflict("Email or username already registered")
			}
			l.Warn("register_failed", "status", 400, "reason", domain.Reason(err))
		} else {
			l.Error("register_failed", "status", 500, "reason", "cannot create user", "error", err)
		}
		s.countRegister(err)
		return nil, err
	}

	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	l.Info("register_success", "user_id", user.ID.String())

	publish(ctx, s.Events, events.TopicUserEvents, user.ID.String(), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID.String(),
		"username": user.Username,
	})
	return user, nil
}

// checkAvailable checks email before username so a double collision reports the email.
func (s *AuthService) checkAvailable(ctx context.Context, email, username string) error {
	existing, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.Conflict("Email already registered")
	}

	existing, err = s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.Conflict("Username already taken")
	}
	return nil
}

func (s *AuthService) countRegister(err error) {
	outcome := "error"
	if errors.Is(err, domain.ErrConflict) {
		outcome = "conflict"
	}
	metrics.AuthAttempts.WithLabelValues("register", outcome).Inc()
}

// Login accepts a username or an email in identifier. Every credential
// failure yields the same error so callers cannot tell which part was wrong.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByUsername(ctx, identifier)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "error").Inc()
		return nil, err
	}
	if user == nil {
		if user, err = s.Repo.FindUserByEmail(ctx, identifier); err != nil {
			metrics.AuthAttempts.WithLabelValues("login", "error").Inc()
			return nil, err
		}
	}

	var ok bool
	if user == nil {
		ok = hash.Burn(password)
	} else {
		ok = hash.CheckPassword(user.HashedPassword, password)
	}
	if !ok {
		metrics.AuthAttempts.WithLabelValues("login", "invalid_credentials").Inc()
		l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
		return nil, domain.Unauthenticated("Invalid credentials")
	}

	token, err := s.Tokens.Issue(user.ID.String(), user.Username)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "error").Inc()
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, domain.Fatal("cannot sign token", err)
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	l.Info("login_success", "user_id", user.ID.String())
	return &LoginResult{AccessToken: token, User: user}, nil
}
