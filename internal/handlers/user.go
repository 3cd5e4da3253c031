package handlers

import (
	"paygate/internal/services/user"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	page, pageSize, search := pageParams(c)

	users, pagination, err := h.userService.GetUsers(page, pageSize, search)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessList(c, "Users retrieved successfully", users, pagination)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	u, err := h.userService.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "User retrieved successfully", u)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req user.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	u, err := h.userService.CreateUser(&req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, "User created successfully", u)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	var req user.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	req.ID = id

	u, err := h.userService.UpdateUser(&req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "User updated successfully", u)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	if err := h.userService.DeleteUser(id); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "User deleted successfully", nil)
}
