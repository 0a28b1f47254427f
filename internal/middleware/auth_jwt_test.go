package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// レスポンス確認用
// =====================

type mwErrorResponse struct {
	Error string `json:"error"`
}

type mwOKResponse struct {
	UserID       int64  `json:"user_id"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

// =====================
// UserRepository モック
// =====================

type MockUserRepoForMiddleware struct {
	mock.Mock
}

func (m *MockUserRepoForMiddleware) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepoForMiddleware) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepoForMiddleware) IncrementTokenVersion(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repository.UserRepository = (*MockUserRepoForMiddleware)(nil)

// =====================
// helper
// =====================

func mustMakeJWT(t *testing.T, secret string, sub int64, role string, tv int, signingMethod jwt.SigningMethod) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"tv":   tv,
		"iat":  now.Unix(),
		"exp":  now.Add(15 * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign jwt: %v", err)
	}
	return signed
}

func echoHandlerDump(c echo.Context) error {
	return c.JSON(http.StatusOK, mwOKResponse{
		UserID:       c.Get(CtxUserIDKey).(int64),
		Role:         c.Get(CtxUserRoleKey).(string),
		TokenVersion: c.Get(CtxTokenVersionKey).(int),
	})
}

func TestAuthJWT_MissingHeader_Unauthorized(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test_secret"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := AuthJWT(cfg)(echoHandlerDump)
	err := h(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body mwErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body.Error)
}

func TestAuthJWT_WrongSecret_Unauthorized(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test_secret"}

	token := mustMakeJWT(t, "other_secret", 1, "USER", 0, jwt.SigningMethodHS256)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := AuthJWT(cfg)(echoHandlerDump)
	err := h(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidToken_SetsContext(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test_secret"}

	token := mustMakeJWT(t, "test_secret", 42, "USER", 3, jwt.SigningMethodHS256)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := AuthJWT(cfg)(echoHandlerDump)
	err := h(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body mwOKResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.UserID)
	assert.Equal(t, "USER", body.Role)
	assert.Equal(t, 3, body.TokenVersion)
}

func TestTokenVersionGuard_Mismatch_Unauthorized(t *testing.T) {
	e := echo.New()

	userRepo := &MockUserRepoForMiddleware{}
	//DB側はtv=5、トークンはtv=3
	userRepo.On("FindByID", mock.Anything, int64(42)).
		Return(&model.User{ID: 42, TokenVersion: 5, IsActive: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserIDKey, int64(42))
	c.Set(CtxTokenVersionKey, 3)

	h := TokenVersionGuard(userRepo)(echoHandlerDump)
	err := h(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenVersionGuard_Match_Passes(t *testing.T) {
	e := echo.New()

	userRepo := &MockUserRepoForMiddleware{}
	userRepo.On("FindByID", mock.Anything, int64(42)).
		Return(&model.User{ID: 42, TokenVersion: 3, IsActive: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserIDKey, int64(42))
	c.Set(CtxUserRoleKey, "USER")
	c.Set(CtxTokenVersionKey, 3)

	h := TokenVersionGuard(userRepo)(echoHandlerDump)
	err := h(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
