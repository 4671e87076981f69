package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/governance")

	r.Post("/proposals", h.CreateProposal)
	r.Post("/proposals/:id/votes", h.CastVote)
	r.Post("/proposals/:id/finalize", h.FinalizeProposal)
	r.Post("/proposals/:id/execute", h.ExecuteProposal)
	r.Get("/proposals", h.GetProposals)
	r.Get("/proposals/:id", h.GetProposal)
	r.Get("/proposals/:id/votes/:voter", h.GetVote)
	return nil
}
