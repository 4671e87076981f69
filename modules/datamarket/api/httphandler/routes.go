package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/datamarket")

	r.Post("/providers", h.RegisterProvider)
	r.Post("/submissions", h.SubmitData)
	r.Post("/submissions/:hash/validate", h.ValidateData)
	r.Post("/listings", h.CreateListing)
	r.Post("/listings/:id/deactivate", h.DeactivateListing)
	r.Post("/listings/:id/purchase", h.PurchaseAccess)
	r.Get("/providers/:id", h.GetProvider)
	r.Get("/submissions/:hash", h.GetSubmission)
	r.Get("/listings", h.GetListings)
	r.Get("/listings/:id", h.GetListing)
	r.Get("/access/:buyer/:listing", h.CheckAccess)
	return nil
}
