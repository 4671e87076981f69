package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/token")

	r.Post("/mints/utility", h.InitializeUtilityMint)
	r.Post("/mints/governance", h.InitializeGovernanceMint)
	r.Post("/rewards", h.RewardProvider)
	r.Post("/transfers", h.Transfer)
	r.Get("/mints", h.GetMints)
	r.Get("/mints/:id", h.GetMint)
	r.Get("/balances/:mint/:owner", h.GetBalance)
	return nil
}
