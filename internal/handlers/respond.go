// Package handlers exposes the HTTP surface. Handlers parse and validate
// transport concerns only; all ledger semantics live in the services.
package handlers

import (
	"errors"
	"strconv"

	domain "paygate/internal/errors"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a domain error onto the HTTP status space. Every handler
// funnels service errors through here so the mapping lives in one place.
func respondError(c *fiber.Ctx, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case "NOT_FOUND":
			return utils.NotFound(c, de.Message)
		case "VALIDATION_ERROR", "INSUFFICIENT_BALANCE", "BALANCE_OVERFLOW":
			return utils.BadRequest(c, de.Message)
		case "EMAIL_ALREADY_EXISTS":
			return utils.Error(c, fiber.StatusConflict, de.Message)
		case "INVALID_CREDENTIALS":
			return utils.Unauthorized(c, de.Message)
		}
	}

	var se *domain.StoreError
	if errors.As(err, &se) {
		return utils.InternalError(c, "internal server error")
	}
	return utils.InternalError(c, "internal server error")
}

// pageParams reads the list window from the query string. Out-of-range
// values fall back to the first page of ten.
func pageParams(c *fiber.Ctx) (page, pageSize int, search string) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	pageSize, _ = strconv.Atoi(c.Query("page_size", "10"))
	return page, pageSize, c.Query("search", "")
}

// pathID parses the positive integer id segment of the route.
func pathID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
