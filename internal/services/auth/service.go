package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcubed/cubed/internal/dependencies/clock"
	"github.com/mcubed/cubed/internal/dependencies/random"
	"github.com/mcubed/cubed/internal/model"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("the password specified is incorrect")
	ErrInvalidSession     = errors.New("you must be logged in to access this resource")
	ErrAdminExists        = errors.New("an admin account already exists")
)

const secretLength = 32

// UserStore is the slice of the users collection the auth gate needs
type UserStore interface {
	GetSingleFiltered(ctx context.Context, filter model.User) (model.User, error)
	InsertSingle(ctx context.Context, item model.User) (model.User, error)
	UpdateSingle(ctx context.Context, item model.User) error
}

// Session represents an issued session token
type Session struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service gates the admin tool behind a single password. Sessions are signed tokens, so
// nothing session-related is stored server side.
type Service struct {
	users  UserStore
	clock  clock.Clock
	secret []byte

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration

	// Secret signs session tokens. When empty a random secret is generated, so sessions
	// do not survive a restart.
	Secret string
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: time.Hour,
	}
}

// New creates a new auth Service
func New(users UserStore, clock clock.Clock, rnd random.Random, cfg Config) (*Service, error) {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		generated, err := rnd.Bytes(secretLength)
		if err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		secret = generated
	}

	return &Service{
		users:           users,
		clock:           clock,
		secret:          secret,
		sessionDuration: cfg.SessionDuration,
	}, nil
}

// SessionDuration returns how long an issued token stays valid
func (s *Service) SessionDuration() time.Duration {
	return s.sessionDuration
}

// CreatePassword creates the admin account. It is only allowed while none exists.
func (s *Service) CreatePassword(ctx context.Context, password, confirmPassword string) (*Session, error) {
	_, exists, err := s.findAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminExists
	}

	if err := validateNewPassword(password, confirmPassword); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.InsertSingle(ctx, model.User{
		Username: model.AdminUsername,
		Password: string(hash),
	}); err != nil {
		return nil, err
	}

	return s.issue()
}

// Login verifies the admin password and issues a session
func (s *Service) Login(ctx context.Context, password string) (*Session, error) {
	admin, exists, err := s.findAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue()
}

// ChangePassword replaces the admin password. Existing sessions stay valid.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword, confirmPassword string) error {
	if err := validateNewPassword(newPassword, confirmPassword); err != nil {
		return err
	}

	admin, exists, err := s.findAdmin(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdateSingle(ctx, model.User{ID: admin.ID, Password: string(hash)})
}

// ValidateSession checks a session token and returns the session it describes
func (s *Service) ValidateSession(token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithSubject(model.AdminUsername),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidSession
	}

	session := &Session{Token: token, ExpiresAt: claims.ExpiresAt.Time}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}

// CurrentState derives the session state for a request. Store failures are reported in
// ServerError rather than returned.
func (s *Service) CurrentState(ctx context.Context, token string) model.SessionState {
	var state model.SessionState

	_, exists, err := s.findAdmin(ctx)
	if err != nil {
		state.ServerError = ErrorMessage(err)
		return state
	}
	state.HasAdminAccount = exists

	if exists {
		if _, err := s.ValidateSession(token); err == nil {
			state.IsLoggedIn = true
		}
	}
	return state
}

func (s *Service) findAdmin(ctx context.Context) (model.User, bool, error) {
	admin, err := s.users.GetSingleFiltered(ctx, model.User{Username: model.AdminUsername})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	return admin, true, nil
}

func (s *Service) issue() (*Session, error) {
	now := s.clock.Now()
	expires := now.Add(s.sessionDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   model.AdminUsername,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	return &Session{Token: signed, IssuedAt: now, ExpiresAt: expires}, nil
}

func validateNewPassword(password, confirmPassword string) error {
	if password == "" || confirmPassword == "" {
		return model.NewValidationError("A password and its confirmation must both be specified.")
	}
	if password != confirmPassword {
		return model.NewValidationError("The password and its confirmation do not match.")
	}
	return nil
}

// ErrorMessage returns the client-safe text for a store error
func ErrorMessage(err error) string {
	var perr *model.PersistenceError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}
