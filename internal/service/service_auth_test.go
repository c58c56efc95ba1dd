package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/crypto"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/validators"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

func newTestAuthService(m mocks) AuthService {
	return NewAuthService(m.users, m.codec, newTestTokenService(), fixedIDGenerator("user-1"), logger.Nop())
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)

	m.codec.EXPECT().Encrypt("secret").Return("ciphertext", nil)
	m.users.EXPECT().
		CreateUser(gomock.Any(), models.User{ID: "user-1", Username: "alice", Email: "a@x.io", Password: "ciphertext"}).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		})

	user, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "ciphertext", user.Password)
}

func TestRegister_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
		want error
	}{
		{name: "no username", req: models.RegisterRequest{Email: "a@x.io", Password: "p"}, want: validators.ErrEmptyUsername},
		{name: "no email", req: models.RegisterRequest{Username: "alice", Password: "p"}, want: validators.ErrEmptyEmail},
		{name: "no password", req: models.RegisterRequest{Username: "alice", Email: "a@x.io"}, want: validators.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(newMocks(t))

			_, err := svc.Register(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)

	m.codec.EXPECT().Encrypt("secret").Return("ciphertext", nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestRegister_EncryptionFails(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)
	boom := errors.New("boom")

	m.codec.EXPECT().Encrypt(gomock.Any()).Return("", boom)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "secret"})

	assert.ErrorIs(t, err, boom)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)
	stored := models.User{ID: "user-1", Username: "alice", Password: "ciphertext"}

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
	m.codec.EXPECT().Decrypt("ciphertext").Return("secret", nil)

	user, token, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
	assert.Equal(t, "user-1", token.UserID)

	verified, err := newTestTokenService().Verify(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", verified.UserID)
}

func TestLogin_UnknownUser(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "x"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_EmptyUsername(t *testing.T) {
	svc := newTestAuthService(newMocks(t))

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Password: "x"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{ID: "user-1", Password: "ciphertext"}, nil)
	m.codec.EXPECT().Decrypt("ciphertext").Return("secret", nil)

	_, token, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "guess"})

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, token.SignedString)
}

func TestLogin_RepositoryError(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)
	boom := errors.New("connection reset")

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, boom)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "x"})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_DecryptionFails(t *testing.T) {
	m := newMocks(t)
	svc := newTestAuthService(m)

	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{ID: "user-1", Password: "junk"}, nil)
	m.codec.EXPECT().Decrypt("junk").Return("", crypto.ErrMalformedCiphertext)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "x"})

	assert.ErrorIs(t, err, crypto.ErrMalformedCiphertext)
}

// Register followed by Login with a real codec.
func TestRegisterThenLogin_RealCodec(t *testing.T) {
	m := newMocks(t)
	codec, err := crypto.NewCredentialCodec("round-trip-secret")
	require.NoError(t, err)
	svc := NewAuthService(m.users, codec, newTestTokenService(), fixedIDGenerator("user-1"), logger.Nop())

	var saved models.User
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			saved = u
			return u, nil
		})
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		DoAndReturn(func(context.Context, string) (models.User, error) {
			return saved, nil
		}).Times(2)

	_, err = svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", saved.Password)

	_, token, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	_, _, err = svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "hunter3"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}
