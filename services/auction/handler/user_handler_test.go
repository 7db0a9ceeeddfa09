package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupUserRouter(t *testing.T) (*MockUserRegistryInterface, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRegistry := NewMockUserRegistryInterface(ctrl)
	handler := NewUserHandler(mockRegistry)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/register", handler.RegisterHandler)
	router.POST("/api/login", handler.LoginHandler)
	return mockRegistry, router
}

func postJSON(t *testing.T, router *gin.Engine, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

// Test RegisterHandler
func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRegistry, router := setupUserRouter(t)

		mockRegistry.EXPECT().
			Register("Jordan Blake", "jordan@example.com", "jordan", "s3cret").
			Return(model.User{UserID: "user1", FullName: "Jordan Blake", Username: "jordan"}, nil)

		w, resp := postJSON(t, router, "/api/register", helpers.RegisterRequest{
			FullName: "Jordan Blake",
			Email:    "jordan@example.com",
			Username: "jordan",
			Password: "s3cret",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "registration successful", resp["message"])
		data := resp["data"].(map[string]any)
		require.Equal(t, "user1", data["user_id"])
	})

	t.Run("duplicate_user", func(t *testing.T) {
		mockRegistry, router := setupUserRouter(t)

		mockRegistry.EXPECT().
			Register("Jordan Blake", "jordan@example.com", "jordan", "s3cret").
			Return(model.User{}, auctionerrors.ErrDuplicateUser)

		w, resp := postJSON(t, router, "/api/register", helpers.RegisterRequest{
			FullName: "Jordan Blake",
			Email:    "jordan@example.com",
			Username: "jordan",
			Password: "s3cret",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "username or email already exists", resp["message"])
	})

	t.Run("invalid_email", func(t *testing.T) {
		_, router := setupUserRouter(t)

		w, resp := postJSON(t, router, "/api/register", helpers.RegisterRequest{
			FullName: "Jordan Blake",
			Email:    "not-an-email",
			Username: "jordan",
			Password: "s3cret",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid request payload", resp["message"])
	})
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRegistry, router := setupUserRouter(t)

		mockRegistry.EXPECT().
			Authenticate("jordan", "s3cret").
			Return(model.User{UserID: "user1", FullName: "Jordan Blake", Username: "jordan"}, nil)

		w, resp := postJSON(t, router, "/api/login", helpers.LoginRequest{Username: "jordan", Password: "s3cret"})

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "login successful", resp["message"])
		data := resp["data"].(map[string]any)
		require.Equal(t, "jordan", data["username"])
	})

	t.Run("bad_credentials", func(t *testing.T) {
		mockRegistry, router := setupUserRouter(t)

		mockRegistry.EXPECT().
			Authenticate("jordan", "wrong").
			Return(model.User{}, auctionerrors.ErrInvalidCredentials)

		w, resp := postJSON(t, router, "/api/login", helpers.LoginRequest{Username: "jordan", Password: "wrong"})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "invalid credentials", resp["message"])
	})
}
