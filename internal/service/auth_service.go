package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/DjalmaFelipe02/Exam-manager-API/config"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues and validates JWTs and manages signup/login. The core
// scoring logic never touches credentials; it only consumes the numeric user
// id and role this service authenticates.
type AuthService interface {
	Register(req dto.RegisterUserRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
	ParseToken(token string) (uint, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, model.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := model.RoleParticipant
	if req.Role != "" {
		role = model.Role(req.Role)
	}

	user := model.User{
		Username: req.Username,
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		return nil, err
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	expiry := time.Duration(s.cfg.JWT.ExpiryMinutes) * time.Minute
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to sign token")
		return nil, err
	}

	return &dto.TokenResponse{Token: signed, TokenType: "bearer"}, nil
}

// ParseToken validates an HS256 token and returns the user id from its sub claim.
func (s *authService) ParseToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, model.ErrInvalidCredentials
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, model.ErrInvalidCredentials
	}
	var id uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &id); err != nil {
		return 0, model.ErrInvalidCredentials
	}
	return id, nil
}
