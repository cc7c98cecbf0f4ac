package service

import (
	"errors"

	"contact_system/internal/apperr"
	"contact_system/internal/domain"
	"contact_system/internal/model"
	"contact_system/internal/repository/interfaces"
	"contact_system/internal/validation"

	"github.com/google/uuid"     // Session token generation
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserServiceInterface is the contract the user handlers depend on
type UserServiceInterface interface {
	Register(req *model.RegisterUserRequest) (*model.UserResponse, error)
	Login(req *model.LoginUserRequest) (*model.TokenResponse, error)
	Current(user *domain.User) *model.UserResponse
	Update(user *domain.User, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Logout(user *domain.User) error
}

// UserService handles registration, login and profile maintenance
type UserService struct {
	userRepo interfaces.UserRepository
}

// NewUserService creates a new UserService instance
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates the payload, rejects taken usernames and stores the
// user with a bcrypt-hashed password.
func (s *UserService) Register(req *model.RegisterUserRequest) (*model.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	count, err := s.userRepo.CountByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("username already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"username": user.Username}).Info("User registered")
	return &model.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// Login checks the credentials and issues a fresh session token. A missing
// user and a wrong password fail identically so usernames cannot be probed.
func (s *UserService) Login(req *model.LoginUserRequest) (*model.TokenResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("username or password wrong")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("username or password wrong")
	}
	token := uuid.NewString()
	user.Token = &token
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &model.TokenResponse{Token: token}, nil
}

// Current returns the projection of the authenticated user
func (s *UserService) Current(user *domain.User) *model.UserResponse {
	return &model.UserResponse{Username: user.Username, Name: user.Name}
}

// Update applies the optional name and/or password change; at least one of
// the two must be present.
func (s *UserService) Update(user *domain.User, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Name == "" && req.Password == "" {
		return nil, apperr.Validation("name or password is required")
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &model.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// Logout clears the stored session token so the old token stops resolving
func (s *UserService) Logout(user *domain.User) error {
	user.Token = nil
	return s.userRepo.Update(user)
}
