package http

import (
	"context"
	"io"
	"net/http"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/metrics"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type fakeTokenService struct {
	issueFn  func(ctx context.Context, userID string) (models.Token, error)
	verifyFn func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeTokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	if f.issueFn != nil {
		return f.issueFn(ctx, userID)
	}
	return models.Token{}, nil
}

func (f *fakeTokenService) Verify(ctx context.Context, token string) (models.Token, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, token)
	}
	return models.Token{}, service.ErrInvalidToken
}

type fakeAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

type fakeUserService struct {
	getFn    func(ctx context.Context, userID string) (models.User, error)
	updateFn func(ctx context.Context, callerID, userID string, update models.UserUpdate) (models.User, error)
	deleteFn func(ctx context.Context, callerID, userID string) error
}

func (f *fakeUserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if f.getFn != nil {
		return f.getFn(ctx, userID)
	}
	return models.User{}, nil
}

func (f *fakeUserService) UpdateUser(ctx context.Context, callerID, userID string, update models.UserUpdate) (models.User, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, callerID, userID, update)
	}
	return models.User{}, nil
}

func (f *fakeUserService) DeleteUser(ctx context.Context, callerID, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, callerID, userID)
	}
	return nil
}

type fakePostService struct {
	createFn func(ctx context.Context, callerID string, post models.NewPost) (models.Post, error)
	getFn    func(ctx context.Context, postID string) (models.Post, error)
	updateFn func(ctx context.Context, callerID, postID string, update models.PostUpdate) (models.Post, error)
	deleteFn func(ctx context.Context, callerID, postID string) error
	listFn   func(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
}

func (f *fakePostService) CreatePost(ctx context.Context, callerID string, post models.NewPost) (models.Post, error) {
	if f.createFn != nil {
		return f.createFn(ctx, callerID, post)
	}
	return models.Post{}, nil
}

func (f *fakePostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if f.getFn != nil {
		return f.getFn(ctx, postID)
	}
	return models.Post{}, nil
}

func (f *fakePostService) UpdatePost(ctx context.Context, callerID, postID string, update models.PostUpdate) (models.Post, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, callerID, postID, update)
	}
	return models.Post{}, nil
}

func (f *fakePostService) DeletePost(ctx context.Context, callerID, postID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, callerID, postID)
	}
	return nil
}

func (f *fakePostService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return []models.Post{}, nil
}

type fakeUploadService struct {
	uploadFn func(ctx context.Context, name string, r io.Reader) (int64, error)
	dir      string
}

func (f *fakeUploadService) Upload(ctx context.Context, name string, r io.Reader) (int64, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, name, r)
	}
	return io.Copy(io.Discard, r)
}

func (f *fakeUploadService) Dir() string {
	return f.dir
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// validToken is accepted by newFakeServices' token service and identifies
// the user "u1".
const validToken = "valid-token"

func newFakeServices() *service.Services {
	return &service.Services{
		TokenService: &fakeTokenService{
			verifyFn: func(_ context.Context, token string) (models.Token, error) {
				if token == validToken {
					return models.Token{UserID: "u1"}, nil
				}
				return models.Token{}, service.ErrInvalidToken
			},
		},
		AuthService:    &fakeAuthService{},
		UserService:    &fakeUserService{},
		PostService:    &fakePostService{},
		UploadService:  &fakeUploadService{dir: "."},
		AppInfoService: &fakeAppInfoService{version: "test-version"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = newFakeServices()
	}
	return NewHandler(services, metrics.New(), config.Server{MaxUploadSize: 1 << 20}, logger.Nop())
}

// withCaller returns r carrying an authenticated user id, as the auth
// middleware leaves it.
func withCaller(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}
