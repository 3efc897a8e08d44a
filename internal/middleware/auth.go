package middleware

import (
	"net/http"
	"strings"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Context keys populated by Authenticate.
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// Authenticate validates the Bearer token and loads the caller's id and role
// into the gin context. Requests without a valid token are rejected.
func Authenticate(authService service.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := authService.ParseToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil || !user.IsActive {
			log.Warn().Uint("userID", userID).Msg("Authenticate: token for unknown or inactive user")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(ContextUserID, user.ID)
		ctx.Set(ContextUserRole, user.Role)
		ctx.Next()
	}
}

// RequireAdmin rejects callers whose authenticated role is not ADMIN.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := ctx.Get(ContextUserRole)
		if !ok || role.(model.Role) != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Permission denied"})
			return
		}
		ctx.Next()
	}
}

// UserID returns the authenticated user's id from the context.
func UserID(ctx *gin.Context) uint {
	id, _ := ctx.Get(ContextUserID)
	userID, _ := id.(uint)
	return userID
}
