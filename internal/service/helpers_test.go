package service

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/mock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "blog-test"
)

type fixedIDGenerator string

func (g fixedIDGenerator) Generate() string { return string(g) }

func testAppConfig() config.App {
	return config.App{
		CredentialSecret: "test-credential-secret",
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		TokenDuration:    time.Hour,
		Version:          "1.0.0",
	}
}

type mocks struct {
	users *mock.MockUserRepository
	posts *mock.MockPostRepository
	files *mock.MockFileStorage
	codec *mock.MockCredentialCodec
}

func newMocks(t *testing.T) mocks {
	ctrl := gomock.NewController(t)
	return mocks{
		users: mock.NewMockUserRepository(ctrl),
		posts: mock.NewMockPostRepository(ctrl),
		files: mock.NewMockFileStorage(ctrl),
		codec: mock.NewMockCredentialCodec(ctrl),
	}
}

func newTestTokenService() TokenService {
	return NewTokenService(testAppConfig(), logger.Nop())
}

func ptr[T any](v T) *T { return &v }
