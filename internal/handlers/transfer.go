package handlers

import (
	"paygate/internal/services/transfer"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	transferService transfer.Service
}

func NewTransferHandler(transferService transfer.Service) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

func (h *TransferHandler) GetTransfers(c *fiber.Ctx) error {
	page, pageSize, search := pageParams(c)

	transfers, pagination, err := h.transferService.GetTransfers(page, pageSize, search)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessList(c, "Transfers retrieved successfully", transfers, pagination)
}

func (h *TransferHandler) GetTransfer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid transfer id")
	}

	t, err := h.transferService.GetTransfer(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Transfer retrieved successfully", t)
}

func (h *TransferHandler) GetTransferUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	t, err := h.transferService.GetTransferUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Transfer retrieved successfully", t)
}

func (h *TransferHandler) GetTransferUsers(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	transfers, err := h.transferService.GetTransferUsers(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Transfers retrieved successfully", transfers)
}

func (h *TransferHandler) CreateTransfer(c *fiber.Ctx) error {
	var req transfer.CreateTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	t, err := h.transferService.CreateTransfer(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, "Transfer created successfully", t)
}

func (h *TransferHandler) UpdateTransfer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid transfer id")
	}

	var req transfer.UpdateTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	req.TransferID = id

	t, err := h.transferService.UpdateTransfer(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Transfer updated successfully", t)
}

// DeleteTransfer removes the latest transfer involving the user in the path.
func (h *TransferHandler) DeleteTransfer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	if err := h.transferService.DeleteTransfer(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Transfer deleted successfully", nil)
}
