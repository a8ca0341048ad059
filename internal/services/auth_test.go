package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-water-quality/internal/jwt"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
	"github.com/sbilibin2017/gw-water-quality/internal/repositories"
	"github.com/sbilibin2017/gw-water-quality/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader   *services.MockUserReader
	writer   *services.MockUserWriter
	sessions *services.MockSessionStore
	tokens   *services.MockTokenManager
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader:   services.NewMockUserReader(ctrl),
		writer:   services.NewMockUserWriter(ctrl),
		sessions: services.NewMockSessionStore(ctrl),
		tokens:   services.NewMockTokenManager(ctrl),
	}
	return services.NewAuthService(m.reader, m.writer, m.sessions, m.tokens), m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"password", false},
		{"pass!", false},
		{"password!", true},
		{"pa$$word", true},
		{"12345678{", true},
		{"abcdefgh_", false},
		{"", false},
		{"pässwörd!", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ValidatePassword(tt.password))
		})
	}
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		saveCall  bool
		writerErr error
		wantErr   error
	}{
		{name: "successful signup", username: "alice", password: "s3cret!pw", saveCall: true},
		{name: "short password", username: "alice", password: "a!b", wantErr: services.ErrWeakPassword},
		{name: "no special character", username: "alice", password: "password123", wantErr: services.ErrWeakPassword},
		{name: "empty username", username: "  ", password: "s3cret!pw", wantErr: services.ErrInvalidUsername},
		{name: "duplicate username", username: "bob", password: "s3cret!pw", saveCall: true, writerErr: models.ErrAlreadyExists, wantErr: services.ErrDuplicateUsername},
		{name: "storage error", username: "carol", password: "s3cret!pw", saveCall: true, writerErr: errors.New("db down"), wantErr: services.ErrStorageUnavailable},
		{name: "long username", username: strings.Repeat("u", 150), password: "s3cret!pw", saveCall: true},
		{name: "password too long for bcrypt", username: "dave", password: strings.Repeat("a", 80) + "!", wantErr: services.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)

			if tt.saveCall {
				m.writer.EXPECT().
					Save(gomock.Any(), gomock.Any(), tt.username, gomock.Any()).
					DoAndReturn(func(_ context.Context, id uuid.UUID, _ string, hash string) error {
						assert.NotEqual(t, uuid.Nil, id)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerErr
					})
			}

			err := svc.Signup(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_FindAccount(t *testing.T) {
	account := &models.AccountDB{UserID: uuid.New(), Username: "alice", PasswordHash: hashPassword(t, "s3cret!pw")}

	tests := []struct {
		name      string
		username  string
		password  string
		found     *models.AccountDB
		readerErr error
		wantErr   error
	}{
		{name: "match", username: "alice", password: "s3cret!pw", found: account},
		{name: "wrong password", username: "alice", password: "wrong!pass", found: account, wantErr: services.ErrInvalidCredentials},
		{name: "unknown user", username: "Alice", password: "s3cret!pw", wantErr: services.ErrInvalidCredentials},
		{name: "storage error", username: "alice", password: "s3cret!pw", readerErr: errors.New("db down"), wantErr: services.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			m.reader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.found, tt.readerErr)

			got, err := svc.FindAccount(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, account, got)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	account := &models.AccountDB{UserID: uuid.New(), Username: "alice", PasswordHash: hashPassword(t, "s3cret!pw")}

	t.Run("success replaces session", func(t *testing.T) {
		svc, m := newAuthService(t)
		var issued string

		m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(account, nil)
		m.tokens.EXPECT().Generate(gomock.Any(), "alice", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, sessionID string) (string, error) {
				issued = sessionID
				return "token", nil
			})
		m.tokens.EXPECT().Expiration().Return(time.Hour)
		m.sessions.EXPECT().Replace(gomock.Any(), "alice", gomock.Any(), time.Hour).
			DoAndReturn(func(_ context.Context, _ string, sessionID string, _ time.Duration) error {
				assert.Equal(t, issued, sessionID)
				return nil
			})

		token, err := svc.Login(context.Background(), "alice", "s3cret!pw")
		require.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("invalid credentials leave sessions untouched", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(account, nil)

		token, err := svc.Login(context.Background(), "alice", "nope!nope")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("token error", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(account, nil)
		m.tokens.EXPECT().Generate(gomock.Any(), "alice", gomock.Any()).Return("", errors.New("sign error"))

		_, err := svc.Login(context.Background(), "alice", "s3cret!pw")
		assert.Error(t, err)
	})

	t.Run("session store error", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(account, nil)
		m.tokens.EXPECT().Generate(gomock.Any(), "alice", gomock.Any()).Return("token", nil)
		m.tokens.EXPECT().Expiration().Return(time.Hour)
		m.sessions.EXPECT().Replace(gomock.Any(), "alice", gomock.Any(), time.Hour).Return(errors.New("redis down"))

		_, err := svc.Login(context.Background(), "alice", "s3cret!pw")
		assert.ErrorIs(t, err, services.ErrStorageUnavailable)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		svc, _ := newAuthService(t)
		assert.NoError(t, svc.Logout(context.Background(), ""))
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().GetClaims(gomock.Any(), "garbage").Return(nil, jwt.ErrInvalidToken)
		assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	})

	t.Run("valid token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{Username: "alice", SessionID: "sid"}, nil)
		m.sessions.EXPECT().Delete(gomock.Any(), "alice", "sid").Return(nil)
		assert.NoError(t, svc.Logout(context.Background(), "token"))
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{Username: "alice", SessionID: "sid"}, nil)
		m.sessions.EXPECT().Delete(gomock.Any(), "alice", "sid").Return(errors.New("redis down"))
		assert.ErrorIs(t, svc.Logout(context.Background(), "token"), services.ErrStorageUnavailable)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	claims := &jwt.Claims{Username: "alice", SessionID: "sid"}

	tests := []struct {
		name     string
		claims   *jwt.Claims
		claimErr error
		current  string
		storeErr error
		want     string
		wantErr  error
	}{
		{name: "active session", claims: claims, current: "sid", want: "alice"},
		{name: "replaced session", claims: claims, current: "other", wantErr: services.ErrNotAuthenticated},
		{name: "logged out", claims: claims, current: "", wantErr: services.ErrNotAuthenticated},
		{name: "invalid token", claimErr: jwt.ErrInvalidToken, wantErr: services.ErrNotAuthenticated},
		{name: "store error", claims: claims, storeErr: errors.New("redis down"), wantErr: services.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			m.tokens.EXPECT().GetClaims(gomock.Any(), "token").Return(tt.claims, tt.claimErr)
			if tt.claimErr == nil {
				m.sessions.EXPECT().Get(gomock.Any(), "alice").Return(tt.current, tt.storeErr)
			}

			got, err := svc.CurrentUser(context.Background(), "token")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// fakeUsers is an in-memory account table for session flow tests.
type fakeUsers struct {
	accounts map[string]*models.AccountDB
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.AccountDB, error) {
	return f.accounts[username], nil
}

func (f *fakeUsers) Save(_ context.Context, userID uuid.UUID, username, passwordHash string) error {
	if _, ok := f.accounts[username]; ok {
		return models.ErrAlreadyExists
	}
	f.accounts[username] = &models.AccountDB{UserID: userID, Username: username, PasswordHash: passwordHash}
	return nil
}

func TestAuthService_SessionFlow(t *testing.T) {
	users := &fakeUsers{accounts: map[string]*models.AccountDB{}}
	svc := services.NewAuthService(users, users, repositories.NewSessionMemoryRepository(), jwt.New(jwt.WithSecretKey("test")))
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "alice", "s3cret!pw"))
	require.NoError(t, svc.Signup(ctx, "bob", "an0ther!pw"))
	assert.ErrorIs(t, svc.Signup(ctx, "alice", "different!pw"), services.ErrDuplicateUsername)

	first, err := svc.Login(ctx, "alice", "s3cret!pw")
	require.NoError(t, err)
	user, err := svc.CurrentUser(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	// a second login revokes the first session
	second, err := svc.Login(ctx, "alice", "s3cret!pw")
	require.NoError(t, err)
	_, err = svc.CurrentUser(ctx, first)
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)

	// other accounts are independent
	bobToken, err := svc.Login(ctx, "bob", "an0ther!pw")
	require.NoError(t, err)
	user, err = svc.CurrentUser(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	// logging out the stale token keeps the active one
	require.NoError(t, svc.Logout(ctx, first))
	_, err = svc.CurrentUser(ctx, second)
	assert.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, second))
	require.NoError(t, svc.Logout(ctx, second))
	_, err = svc.CurrentUser(ctx, second)
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)

	user, err = svc.CurrentUser(ctx, bobToken)
	require.NoError(t, err)
	assert.Equal(t, "bob", user)

	_, err = svc.Login(ctx, "alice", "wrong!pw")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
