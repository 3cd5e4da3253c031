package utils

import "github.com/gofiber/fiber/v2"

// Pagination is the paging block attached to list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination computes the page count for a result window.
func NewPagination(page, pageSize int, totalItems int64) Pagination {
	totalPages := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) > 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Success sends the uniform single-item envelope with status 200.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return envelope(c, fiber.StatusOK, message, data)
}

// Created sends the uniform single-item envelope with status 201.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return envelope(c, fiber.StatusCreated, message, data)
}

// SuccessList sends the list envelope with its pagination block.
func SuccessList(c *fiber.Ctx, message string, data interface{}, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"message":    message,
		"data":       data,
		"pagination": p,
	})
}

// Error sends an error envelope with the given status code.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func envelope(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}
