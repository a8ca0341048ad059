package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-water-quality/internal/jwt"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	passwordSpecials  = `!@#$%^&*(),.?":{}|<>`
)

// UserReader defines read-only operations for accounts.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AccountDB, error)
}

// UserWriter defines write operations for accounts.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username, passwordHash string) error
}

// SessionStore keeps the single active session id of each account.
type SessionStore interface {
	Replace(ctx context.Context, username, sessionID string, ttl time.Duration) error // Makes sessionID the only active session
	Get(ctx context.Context, username string) (string, error)                         // Returns "" when there is none
	Delete(ctx context.Context, username, sessionID string) error                     // Removes sessionID if it is still active
}

// TokenManager issues and parses session tokens.
type TokenManager interface {
	Generate(ctx context.Context, username, sessionID string) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
	Expiration() time.Duration
}

// AuthService handles accounts and sessions.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenManager) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// ValidatePassword reports whether password is at least 8 characters long
// and contains one of !@#$%^&*(),.?":{}|<>.
func ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength && strings.ContainsAny(password, passwordSpecials)
}

// Signup creates a new account.
func (svc *AuthService) Signup(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrInvalidUsername
	}
	if !ValidatePassword(password) {
		return ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: password must not exceed 72 bytes", ErrWeakPassword)
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, uuid.New(), username, string(hashedPassword)); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			logger.Log.Infow("username already taken", "username", username)
			return ErrDuplicateUsername
		}
		logger.Log.Errorw("failed to save account", "err", err)
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return nil
}

// FindAccount returns the account matching username and password exactly.
func (svc *AuthService) FindAccount(ctx context.Context, username, password string) (*models.AccountDB, error) {
	account, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if account == nil {
		logger.Log.Infow("account does not exist", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// Login authenticates an account, replaces its active session and
// returns a token bound to the new session.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := svc.FindAccount(ctx, username, password)
	if err != nil {
		return "", err
	}

	sessionID := uuid.NewString()
	token, err := svc.tokens.Generate(ctx, account.Username, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if err := svc.sessions.Replace(ctx, account.Username, sessionID, svc.tokens.Expiration()); err != nil {
		logger.Log.Errorw("failed to store session", "username", account.Username, "err", err)
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return token, nil
}

// Logout ends the session the token belongs to. Missing, invalid or
// already revoked tokens are ignored.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("logout with invalid token", "err", err)
		return nil
	}

	if err := svc.sessions.Delete(ctx, claims.Username, claims.SessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "username", claims.Username, "err", err)
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return nil
}

// CurrentUser returns the owner of the token if its session is still active.
func (svc *AuthService) CurrentUser(ctx context.Context, token string) (string, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return "", ErrNotAuthenticated
	}

	current, err := svc.sessions.Get(ctx, claims.Username)
	if err != nil {
		logger.Log.Errorw("failed to get session", "username", claims.Username, "err", err)
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if current == "" || current != claims.SessionID {
		return "", ErrNotAuthenticated
	}

	return claims.Username, nil
}
