package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/handlers"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/testutil"
)

func setupAuthTestRouter(t *testing.T) (*chi.Mux, *testutil.TestSetup) {
	tc := testutil.NewTestContext(t)

	r := chi.NewRouter()
	handler := handlers.NewAuthHandler(identity.NewService(tc.DB), tc.JWTService)
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
	})

	return r, tc
}

func TestAuthHandler_Register(t *testing.T) {
	router, tc := setupAuthTestRouter(t)
	defer tc.Cleanup()

	t.Run("registers a new user", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/register", dto.RegisterRequest{
			Name:     "Ada Obi",
			Email:    "ada@example.com",
			Password: "strongpassword1",
		}, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusCreated)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "ada@example.com", resp.User.Email)
		assert.False(t, resp.User.Admin)

		// Token is also set as a cookie for web clients
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Equal(t, resp.Token, cookies[0].Value)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/register", dto.RegisterRequest{
			Name:     "Impostor",
			Email:    "ada@example.com",
			Password: "anotherpassword",
		}, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusConflict)
	})

	t.Run("rejects short password", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/register", dto.RegisterRequest{
			Name:     "Shorty",
			Email:    "shorty@example.com",
			Password: "short",
		}, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/register", dto.RegisterRequest{
			Name:     "Bad Email",
			Email:    "not-an-email",
			Password: "strongpassword1",
		}, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	router, tc := setupAuthTestRouter(t)
	defer tc.Cleanup()

	t.Run("valid credentials", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/login", dto.LoginRequest{
			Email:    tc.User.Email,
			Password: "testpassword123",
		}, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, tc.User.ID, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/login", dto.LoginRequest{
			Email:    tc.User.Email,
			Password: "wrongpassword",
		}, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/login", dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "testpassword123",
		}, "")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	router, tc := setupAuthTestRouter(t)
	defer tc.Cleanup()

	req := testutil.AuthenticatedRequest(t, "POST", "/api/v1/auth/logout", nil, tc.Token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	testutil.AssertStatus(t, rr, http.StatusOK)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
