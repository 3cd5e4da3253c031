package handlers

import (
	"paygate/internal/metrics"
	"paygate/internal/middleware"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Handlers bundles the HTTP handlers for route registration.
type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Saldo    *SaldoHandler
	Topup    *TopupHandler
	Withdraw *WithdrawHandler
	Transfer *TransferHandler
}

// SetupRoutes registers the full API surface on the app.
func SetupRoutes(app *fiber.App, h *Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return utils.Success(c, "ok", nil)
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/login", h.Auth.Login)

	authenticated := api.Group("/", middleware.Protected())

	authenticated.Get("/auth/me", h.Auth.GetMe)

	users := authenticated.Group("/users")
	users.Get("/", h.User.GetUsers)
	users.Get("/:id", h.User.GetUser)
	users.Post("/", h.User.CreateUser)
	users.Put("/:id", h.User.UpdateUser)
	users.Delete("/:id", h.User.DeleteUser)

	saldos := authenticated.Group("/saldos")
	saldos.Get("/", h.Saldo.GetSaldos)
	saldos.Get("/user/:id", h.Saldo.GetSaldoUser)
	saldos.Get("/users/:id", h.Saldo.GetSaldoUsers)
	saldos.Get("/:id", h.Saldo.GetSaldo)
	saldos.Post("/", h.Saldo.CreateSaldo)
	saldos.Put("/:id", h.Saldo.UpdateSaldo)
	saldos.Delete("/:id", h.Saldo.DeleteSaldo)

	topups := authenticated.Group("/topups")
	topups.Get("/", h.Topup.GetTopups)
	topups.Get("/user/:id", h.Topup.GetTopupUser)
	topups.Get("/users/:id", h.Topup.GetTopupUsers)
	topups.Get("/:id", h.Topup.GetTopup)
	topups.Post("/", h.Topup.CreateTopup)
	topups.Put("/:id", h.Topup.UpdateTopup)
	topups.Delete("/:id", h.Topup.DeleteTopup)

	withdraws := authenticated.Group("/withdraws")
	withdraws.Get("/", h.Withdraw.GetWithdraws)
	withdraws.Get("/user/:id", h.Withdraw.GetWithdrawUser)
	withdraws.Get("/users/:id", h.Withdraw.GetWithdrawUsers)
	withdraws.Get("/:id", h.Withdraw.GetWithdraw)
	withdraws.Post("/", h.Withdraw.CreateWithdraw)
	withdraws.Put("/:id", h.Withdraw.UpdateWithdraw)
	withdraws.Delete("/:id", h.Withdraw.DeleteWithdraw)

	transfers := authenticated.Group("/transfers")
	transfers.Get("/", h.Transfer.GetTransfers)
	transfers.Get("/user/:id", h.Transfer.GetTransferUser)
	transfers.Get("/users/:id", h.Transfer.GetTransferUsers)
	transfers.Get("/:id", h.Transfer.GetTransfer)
	transfers.Post("/", h.Transfer.CreateTransfer)
	transfers.Put("/:id", h.Transfer.UpdateTransfer)
	transfers.Delete("/:id", h.Transfer.DeleteTransfer)
}
