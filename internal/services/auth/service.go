// Package auth handles registration, login and token identity.
package auth

import (
	"errors"

	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/utils"
	"paygate/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Firstname       string `json:"firstname" validate:"required"`
	Lastname        string `json:"lastname" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Service interface {
	Register(req *RegisterRequest) (*models.User, error)
	Login(req *LoginRequest) (string, error)
	GetMe(userID uint) (*models.User, error)
}

type service struct {
	users repositories.UserRepository
	log   *zap.Logger
}

func NewService(users repositories.UserRepository, log *zap.Logger) Service {
	return &service{users: users, log: log}
}

// Register creates an account with a hashed password and a generated virtual
// card number for receiving transfers.
func (s *service) Register(req *RegisterRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, domain.Store(err)
	}
	if exists {
		s.log.Warn("registration rejected, email taken", zap.String("email", req.Email))
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Store(err)
	}

	user := &models.User{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Password:    string(hashed),
		NocTransfer: utils.RandomVCC(),
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, domain.Store(err)
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// Login checks the credentials and returns a signed access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *service) Login(req *LoginRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.Store(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.log.Warn("login rejected", zap.String("email", req.Email))
		return "", domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return "", domain.Store(err)
	}

	s.log.Info("user logged in", zap.Uint("user_id", user.ID))
	return token, nil
}

func (s *service) GetMe(userID uint) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domain.NotFound("user", userID)
		}
		return nil, domain.Store(err)
	}
	return user, nil
}
