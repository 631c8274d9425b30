package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/config"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/infra"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/middleware"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/repository"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memTokenStore keeps revoked tokens in memory so handler tests don't need
// a live redis.
type memTokenStore struct{ revoked map[string]bool }

func newMemTokenStore() *memTokenStore { return &memTokenStore{revoked: make(map[string]bool)} }

func (s *memTokenStore) Revoke(_ context.Context, token string, _ time.Duration) error {
	s.revoked[token] = true
	return nil
}

func (s *memTokenStore) IsRevoked(_ context.Context, token string) (bool, error) {
	return s.revoked[token], nil
}

// recordingMailer captures what would have gone over SMTP.
type recordingMailer struct {
	sent []struct{ to, subject, body string }
	err  error
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, struct{ to, subject, body string }{to, subject, body})
	return nil
}

type testEnv struct {
	db     *gorm.DB
	router http.Handler
	cfg    *config.Config
	mailer *recordingMailer
	tokens *memTokenStore

	users   repository.UserRepository
	auth    service.AuthService
	catalog service.CatalogService
	clothes service.ClothService
}

// newTestEnv wires the full handler stack over a throwaway sqlite database,
// mirroring the production route table.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "handler.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	cfg := &config.Config{
		JWTSecret:          "handler-test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
		ContactRecipient:   "owner@kushstore.local",
	}

	categoryRepo := repository.NewCategoryRepository(db)
	clothRepo := repository.NewClothRepository(db)
	userRepo := repository.NewUserRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	tokens := newMemTokenStore()
	mailer := &recordingMailer{}

	catalogSvc := service.NewCatalogService(categoryRepo)
	clothSvc := service.NewClothService(clothRepo, categoryRepo)
	feedbackSvc := service.NewFeedbackService(ratingRepo, reviewRepo, nil, cfg.ContactRecipient)
	authSvc := service.NewAuthService(userRepo, tokens, cfg)
	contactSvc := service.NewContactService(mailer, infra.NewCircuitBreaker(infra.DefaultCBConfig()), cfg.ContactRecipient)

	catalogH := NewCatalogHandler(catalogSvc, feedbackSvc)
	clothesH := NewClothesHandler(clothSvc)
	feedbackH := NewFeedbackHandler(feedbackSvc)
	contactH := NewContactHandler(contactSvc)
	authH := NewAuthHandler(authSvc)

	jwtMW := middleware.JWTAuth(cfg.JWTSecret, tokens)
	staffMW := middleware.RequireStaff()

	r := gin.New()
	r.GET("/", catalogH.Landing)
	r.GET("/about", catalogH.About)
	r.GET("/category/:slug", catalogH.CategoryDetail)
	r.GET("/clothes", clothesH.List)
	r.GET("/clothes/:id", clothesH.Detail)
	r.POST("/clothes/:id/like", clothesH.Like)
	r.POST("/submit-rating", feedbackH.SubmitRating)
	r.POST("/submit-review", feedbackH.SubmitReview)
	r.POST("/send-contact", contactH.Send)

	manager := r.Group("/manager")
	manager.POST("/login", authH.Login)
	manager.POST("/refresh", authH.Refresh)
	manager.POST("/logout", jwtMW, authH.Logout)
	manager.GET("/clothes", clothesH.List)
	manager.GET("/clothes/:id", clothesH.Detail)

	staff := manager.Group("", jwtMW, staffMW)
	staff.GET("/dashboard", clothesH.Dashboard)
	staff.POST("/clothes/add", clothesH.Create)
	staff.POST("/clothes/:id/edit", clothesH.Edit)
	staff.POST("/categories", catalogH.CreateCategory)
	staff.DELETE("/categories/:id", catalogH.DeleteCategory)
	staff.POST("/reviews/:id/approve", feedbackH.ApproveReview)

	return &testEnv{
		db:      db,
		router:  r,
		cfg:     cfg,
		mailer:  mailer,
		tokens:  tokens,
		users:   userRepo,
		auth:    authSvc,
		catalog: catalogSvc,
		clothes: clothSvc,
	}
}

// seedStaff creates an active staff account and returns it.
func (e *testEnv) seedStaff(t *testing.T, username, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Username:     username,
		Name:         "Staff " + username,
		PasswordHash: string(hash),
		IsStaff:      true,
		Active:       true,
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

// loginToken logs the user in through the service and returns a bearer token.
func (e *testEnv) loginToken(t *testing.T, username, password string) string {
	t.Helper()
	resp, err := e.auth.Login(context.Background(), dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	return resp.AccessToken
}

// do performs an in-process request, optionally JSON-encoding a body and
// attaching a bearer token.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
