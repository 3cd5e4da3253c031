package handlers

import (
	"paygate/internal/services/saldo"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SaldoHandler struct {
	saldoService saldo.Service
}

func NewSaldoHandler(saldoService saldo.Service) *SaldoHandler {
	return &SaldoHandler{saldoService: saldoService}
}

func (h *SaldoHandler) GetSaldos(c *fiber.Ctx) error {
	page, pageSize, search := pageParams(c)

	saldos, pagination, err := h.saldoService.GetSaldos(page, pageSize, search)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessList(c, "Saldos retrieved successfully", saldos, pagination)
}

func (h *SaldoHandler) GetSaldo(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid saldo id")
	}

	s, err := h.saldoService.GetSaldo(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Saldo retrieved successfully", s)
}

func (h *SaldoHandler) GetSaldoUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	s, err := h.saldoService.GetSaldoUser(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Saldo retrieved successfully", s)
}

func (h *SaldoHandler) GetSaldoUsers(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	saldos, err := h.saldoService.GetSaldoUsers(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Saldos retrieved successfully", saldos)
}

func (h *SaldoHandler) CreateSaldo(c *fiber.Ctx) error {
	var req saldo.CreateSaldoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	s, err := h.saldoService.CreateSaldo(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, "Saldo created successfully", s)
}

func (h *SaldoHandler) UpdateSaldo(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid saldo id")
	}

	var req saldo.UpdateSaldoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	req.SaldoID = id

	s, err := h.saldoService.UpdateSaldo(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Saldo updated successfully", s)
}

// DeleteSaldo removes the saldo owned by the user in the path.
func (h *SaldoHandler) DeleteSaldo(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	if err := h.saldoService.DeleteSaldo(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, "Saldo deleted successfully", nil)
}
