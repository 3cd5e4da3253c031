package handlers

import (
	"paygate/internal/middleware"
	"paygate/internal/services/auth"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Login successful", fiber.Map{"access_token": token})
}

func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	user, err := h.authService.GetMe(claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "User retrieved successfully", user)
}
