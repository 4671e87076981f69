package common

import "github.com/gofiber/fiber/v2"

// HttpResponse is the envelope returned by every HTTP handler.
type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

// NewHttpResponse wraps result in a successful response.
func NewHttpResponse[T any](result T) HttpResponse[T] {
	return HttpResponse[T]{Result: &result}
}

// APIHandler is the HTTP surface of a module.
type APIHandler interface {
	Mount(router fiber.Router) error
}
