package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/dto"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/handlers"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/middleware"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/testutil"
	"github.com/Ifeanyi-design/irapada-ogo-youths/pkg/uploads"
)

func setupProfileTestRouter(t *testing.T, tc *testutil.TestSetup) *chi.Mux {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.Auth(tc.JWTService))

	handler := handlers.NewProfileHandler(identity.NewService(tc.DB), store)
	r.Route("/api/v1/me", func(r chi.Router) {
		r.Get("/", handler.Me)
		r.Put("/", handler.Update)
		r.Post("/image", handler.UploadImage)
	})

	return r
}

func TestProfileHandler_Me(t *testing.T) {
	tc := testutil.NewTestContext(t)
	defer tc.Cleanup()
	router := setupProfileTestRouter(t, tc)

	req := testutil.AuthenticatedRequest(t, "GET", "/api/v1/me", nil, tc.Token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	testutil.AssertStatus(t, rr, http.StatusOK)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, tc.User.ID, user.ID)
	assert.Equal(t, tc.User.Email, user.Email)
}

func TestProfileHandler_Update(t *testing.T) {
	tc := testutil.NewTestContext(t)
	defer tc.Cleanup()
	router := setupProfileTestRouter(t, tc)

	t.Run("renames the user", func(t *testing.T) {
		name := "Renamed"
		req := testutil.AuthenticatedRequest(t, "PUT", "/api/v1/me", dto.UpdateProfileRequest{
			Name: &name,
		}, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)

		var user dto.UserDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, "Renamed", user.Name)
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		other := testutil.CreateTestUser(t, tc.DB, false)

		req := testutil.AuthenticatedRequest(t, "PUT", "/api/v1/me", dto.UpdateProfileRequest{
			Email: &other.Email,
		}, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusConflict)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		blank := ""
		req := testutil.AuthenticatedRequest(t, "PUT", "/api/v1/me", dto.UpdateProfileRequest{
			Name: &blank,
		}, tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestProfileHandler_UploadImage(t *testing.T) {
	tc := testutil.NewTestContext(t)
	defer tc.Cleanup()
	router := setupProfileTestRouter(t, tc)

	t.Run("stores the file and records the filename", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("profile_image", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-png-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/api/v1/me/image", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)

		var updated models.User
		require.NoError(t, tc.DB.First(&updated, tc.User.ID).Error)
		assert.NotEmpty(t, updated.ProfileImage)
		assert.True(t, strings.HasSuffix(updated.ProfileImage, ".png"))
	})

	t.Run("missing file part", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/api/v1/me/image", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+tc.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}
