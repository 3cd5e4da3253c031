// Package user provides the administrative CRUD surface for user accounts.
// Registration and login live in the auth package.
package user

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

type CreateUserRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	ID        uint   `json:"id" validate:"required"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type Service interface {
	GetUsers(page, pageSize int, search string) ([]models.User, utils.Pagination, error)
	GetUser(id uint) (*models.User, error)
	CreateUser(req *CreateUserRequest) (*models.User, error)
	UpdateUser(req *UpdateUserRequest) (*models.User, error)
	DeleteUser(id uint) error
}

type service struct {
	users repositories.UserRepository
	log   *zap.Logger
}

func NewService(users repositories.UserRepository, log *zap.Logger) Service {
	return &service{users: users, log: log}
}

func (s *service) GetUsers(page, pageSize int, search string) ([]models.User, utils.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	users, total, err := s.users.FindAll(page, pageSize, search)
	if err != nil {
		return nil, utils.Pagination{}, domain.Store(err)
	}
	return users, utils.NewPagination(page, pageSize, total), nil
}

func (s *service) GetUser(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domain.NotFound("user", id)
		}
		return nil, domain.Store(err)
	}
	return user, nil
}

func (s *service) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, domain.Store(err)
	}
	if exists {
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

	s.log.Info("user created", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

func (s *service) UpdateUser(req *UpdateUserRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(req.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domain.NotFound("user", req.ID)
		}
		return nil, domain.Store(err)
	}

	user.Firstname = req.Firstname
	user.Lastname = req.Lastname
	user.Email = req.Email
	if err := s.users.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, domain.Store(err)
	}

	s.log.Info("user updated", zap.Uint("user_id", user.ID))
	return user, nil
}

func (s *service) DeleteUser(id uint) error {
	if _, err := s.users.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return domain.NotFound("user", id)
		}
		return domain.Store(err)
	}

	if err := s.users.Delete(id); err != nil {
		return domain.Store(err)
	}

	s.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
