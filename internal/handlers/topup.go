package handlers

import (
	"paygate/internal/services/topup"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TopupHandler struct {
	topupService topup.Service
}

func NewTopupHandler(topupService topup.Service) *TopupHandler {
	return &TopupHandler{topupService: topupService}
}

func (h *TopupHandler) GetTopups(c *fiber.Ctx) error {
	page, pageSize, search := pageParams(c)

	topups, pagination, err := h.topupService.GetTopups(page, pageSize, search)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessList(c, "Topups retrieved successfully", topups, pagination)
}

func (h *TopupHandler) GetTopup(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid topup id")
	}

	t, err := h.topupService.GetTopup(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Topup retrieved successfully", t)
}

func (h *TopupHandler) GetTopupUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	t, err := h.topupService.GetTopupUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Topup retrieved successfully", t)
}

func (h *TopupHandler) GetTopupUsers(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	topups, err := h.topupService.GetTopupUsers(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Topups retrieved successfully", topups)
}

func (h *TopupHandler) CreateTopup(c *fiber.Ctx) error {
	var req topup.CreateTopupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	t, err := h.topupService.CreateTopup(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, "Topup created successfully", t)
}

func (h *TopupHandler) UpdateTopup(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid topup id")
	}

	var req topup.UpdateTopupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	req.TopupID = id

	t, err := h.topupService.UpdateTopup(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Topup updated successfully", t)
}

// DeleteTopup removes the latest topup owned by the user in the path.
func (h *TopupHandler) DeleteTopup(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	if err := h.topupService.DeleteTopup(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Topup deleted successfully", nil)
}
