package service

import (
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/repository"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	GetUser(id uint) (*dto.UserResponse, error)
	GetAllUsers(search string, role *model.Role, isActive *bool, limit, offset int) ([]dto.UserResponse, error)
	UpdateUser(id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, model.ErrUserNotFound
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *userService) GetAllUsers(search string, role *model.Role, isActive *bool, limit, offset int) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(search, role, isActive, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	if err := copier.Copy(&resp, &users); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *userService) UpdateUser(id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, model.ErrUserNotFound
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Role != nil {
		user.Role = model.Role(*req.Role)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return model.ErrUserNotFound
	}
	return s.userRepo.Delete(id)
}
