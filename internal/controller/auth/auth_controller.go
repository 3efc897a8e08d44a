package auth

import (
	"net/http"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/controller"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "Account data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Username already exists or invalid input"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	user, err := c.authService.Register(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Str("username", user.Username).Msg("User registered")
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Authenticate and receive a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	token, err := c.authService.Login(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, token)
}
