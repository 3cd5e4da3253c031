package handlers

import (
	"paygate/internal/services/withdraw"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WithdrawHandler struct {
	withdrawService withdraw.Service
}

func NewWithdrawHandler(withdrawService withdraw.Service) *WithdrawHandler {
	return &WithdrawHandler{withdrawService: withdrawService}
}

func (h *WithdrawHandler) GetWithdraws(c *fiber.Ctx) error {
	page, pageSize, search := pageParams(c)

	withdraws, pagination, err := h.withdrawService.GetWithdraws(page, pageSize, search)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessList(c, "Withdraws retrieved successfully", withdraws, pagination)
}

func (h *WithdrawHandler) GetWithdraw(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid withdraw id")
	}

	w, err := h.withdrawService.GetWithdraw(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Withdraw retrieved successfully", w)
}

func (h *WithdrawHandler) GetWithdrawUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	w, err := h.withdrawService.GetWithdrawUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Withdraw retrieved successfully", w)
}

func (h *WithdrawHandler) GetWithdrawUsers(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	withdraws, err := h.withdrawService.GetWithdrawUsers(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Withdraws retrieved successfully", withdraws)
}

func (h *WithdrawHandler) CreateWithdraw(c *fiber.Ctx) error {
	var req withdraw.CreateWithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	w, err := h.withdrawService.CreateWithdraw(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, "Withdraw created successfully", w)
}

func (h *WithdrawHandler) UpdateWithdraw(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid withdraw id")
	}

	var req withdraw.UpdateWithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	req.WithdrawID = id

	w, err := h.withdrawService.UpdateWithdraw(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Withdraw updated successfully", w)
}

// DeleteWithdraw removes the latest withdraw owned by the user in the path.
func (h *WithdrawHandler) DeleteWithdraw(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	if err := h.withdrawService.DeleteWithdraw(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Withdraw deleted successfully", nil)
}
