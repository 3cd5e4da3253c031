package user

import (
	"testing"

	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestGetUsers_DefaultsPageWindow(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := NewService(users, zap.NewNop())

	users.On("FindAll", 1, 10, "").Return([]models.User{{ID: 1}}, int64(1), nil)

	got, pagination, err := svc.GetUsers(0, -5, "")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.PageSize)
	users.AssertExpectations(t)
}

func TestUpdateUser_UnknownUser(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := NewService(users, zap.NewNop())

	users.On("GetByID", uint(9)).Return(nil, repositories.ErrUserNotFound)

	_, err := svc.UpdateUser(&UpdateUserRequest{
		ID:        9,
		Firstname: "Jane",
		Lastname:  "Doe",
		Email:     "jane@example.com",
	})

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	users.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteUser_RemovesExistingUser(t *testing.T) {
	users := new(mocks.UserRepository)
	svc := NewService(users, zap.NewNop())

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil)
	users.On("Delete", uint(1)).Return(nil)

	assert.NoError(t, svc.DeleteUser(1))
	users.AssertExpectations(t)
}
