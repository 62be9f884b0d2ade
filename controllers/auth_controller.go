package controllers

import (
	"errors"
	"net/http"

	"solestyle/models"
	"solestyle/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register new user
// @Description Create a new account with name, email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request"})
		return
	}

	if err := ctrl.auth.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "User registered"})
}

// Login godoc
// @Summary User login
// @Description Login with email and password, returns a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid request"})
		return
	}

	token, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "User not found"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
