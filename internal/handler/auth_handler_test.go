package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom/internal/middleware"
	"newsroom/internal/model"
	"newsroom/internal/service"
	"newsroom/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	signupCalls int
	signupUser  *model.User
	signupErr   error

	loginUser  *model.User
	loginToken string
	loginErr   error

	meUser *model.User
	meErr  error
}

func (s *stubAuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	s.signupCalls++
	return s.signupUser, s.signupErr
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return s.loginUser, s.loginToken, s.loginErr
}

func (s *stubAuthService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return s.meUser, s.meErr
}

func setupAuthRouter(svc service.AuthService, jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(svc)
	h.RegisterAuthRoutes(router.Group("/api"), middleware.JWTAuthMiddleware(jwtUtil))
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{signupUser: &model.User{ID: 1, Email: "a@x.com", PasswordHash: "$2a$10$hash"}}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	w := postJSON(router, "/api/signup", gin.H{
		"firstName": "A", "lastName": "B", "role": "user",
		"email": "a@x.com", "phone": "555", "password": "p1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.signupCalls)
	// Confirmation must not echo the password or hash
	assert.NotContains(t, w.Body.String(), "p1")
	assert.NotContains(t, w.Body.String(), "$2a$10$hash")
}

func TestAuthHandler_Signup_MissingField(t *testing.T) {
	svc := &stubAuthService{}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	// No phone
	w := postJSON(router, "/api/signup", gin.H{
		"firstName": "A", "lastName": "B", "role": "user",
		"email": "a@x.com", "password": "p1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Validation is rejected before the service (and therefore the store) is touched
	assert.Equal(t, 0, svc.signupCalls)
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{signupErr: service.ErrEmailExists}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	w := postJSON(router, "/api/signup", gin.H{
		"firstName": "A", "lastName": "B", "role": "user",
		"email": "a@x.com", "phone": "555", "password": "p1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginUser:  &model.User{ID: 1, Email: "a@x.com"},
		loginToken: "token123",
	}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	w := postJSON(router, "/api/login", gin.H{"email": "a@x.com", "password": "p1"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token123", resp["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	// Unknown email and wrong password both surface as ErrInvalidCredentials
	// from the service; the handler must return identical responses.
	svc := &stubAuthService{loginErr: service.ErrInvalidCredentials}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	wUnknown := postJSON(router, "/api/login", gin.H{"email": "nobody@x.com", "password": "p1"})
	wWrongPass := postJSON(router, "/api/login", gin.H{"email": "a@x.com", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
	assert.Equal(t, wUnknown.Body.String(), wWrongPass.Body.String())
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	svc := &stubAuthService{}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	w := postJSON(router, "/api/login", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	svc := &stubAuthService{meUser: &model.User{ID: 1, Email: "a@x.com", PasswordHash: "$2a$10$hash"}}
	router := setupAuthRouter(svc, jwtUtil)

	token, err := jwtUtil.GenerateToken(1, "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
	// json:"-" keeps the hash out of responses
	assert.NotContains(t, w.Body.String(), "$2a$10$hash")
}

func TestAuthHandler_Me_NoToken(t *testing.T) {
	svc := &stubAuthService{}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_ExpiredToken(t *testing.T) {
	svc := &stubAuthService{meUser: &model.User{ID: 1}}
	router := setupAuthRouter(svc, utils.NewJWTUtil("secret", 1))

	expired, err := utils.NewJWTUtil("secret", -1).GenerateToken(1, "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
