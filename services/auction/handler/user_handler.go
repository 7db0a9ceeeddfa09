package handler

import (
	"fmt"
	"net/http"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type UserRegistryInterface interface {
	Register(fullName, email, username, password string) (model.User, error)
	Authenticate(usernameOrEmail, password string) (model.User, error)
}

type UserHandler struct {
	registry UserRegistryInterface
}

func NewUserHandler(registry UserRegistryInterface) *UserHandler {
	return &UserHandler{registry: registry}
}

// RegisterHandler handles POST /api/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.registry.Register(req.FullName, req.Email, req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{"username": req.Username, "error": err.Error()})
		return
	}

	resp := helpers.UserResponse{
		UserID:   user.UserID,
		FullName: user.FullName,
		Username: user.Username,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "registration successful")
	helpers.LogSuccess("RegisterHandler", "registration successful", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// LoginHandler handles POST /api/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.registry.Authenticate(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"username": req.Username, "error": err.Error()})
		return
	}

	resp := helpers.UserResponse{
		UserID:   user.UserID,
		FullName: user.FullName,
		Username: user.Username,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}
