package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if kind, ok := errs.KindOf(err); ok {
			status := StatusOf(kind)
			message := kind.Error()
			if e := new(errs.PublicError); errors.As(err, &e) {
				message = e.Message()
			}
			if status >= http.StatusInternalServerError {
				logger.ErrorContext(ctx.UserContext(), "Something went wrong, api error", err,
					slogx.String("event", "api_error"),
					slogx.String("kind", kind.Error()),
				)
			}
			return errors.WithStack(ctx.Status(status).JSON(fiber.Map{
				"error": message,
				"code":  kind.Error(),
			}))
		}
		if e := new(errs.PublicError); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": e.Message(),
			}))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(fiber.Map{
				"error": e.Error(),
			}))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		}))
	}
}

// StatusOfError returns the status NewHTTPErrorHandler responds with for err.
func StatusOfError(err error) int {
	if kind, ok := errs.KindOf(err); ok {
		return StatusOf(kind)
	}
	if e := new(errs.PublicError); errors.As(err, &e) {
		return http.StatusBadRequest
	}
	if e := new(fiber.Error); errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

// StatusOf maps a ledger error kind to the HTTP status returned to the caller.
func StatusOf(kind errs.ErrorKind) int {
	switch kind {
	case errs.NotFound:
		return http.StatusNotFound
	case errs.Conflict:
		return http.StatusConflict
	case errs.RateLimitExceeded, errs.CooldownActive:
		return http.StatusTooManyRequests
	case errs.InternalError, errs.SomethingWentWrong, errs.Closed:
		return http.StatusInternalServerError
	case errs.Unsupported:
		return http.StatusNotImplemented
	}
	switch errs.ClassOf(kind) {
	case errs.ClassInput:
		return http.StatusBadRequest
	case errs.ClassAuthorization:
		return http.StatusForbidden
	case errs.ClassTemporal, errs.ClassState:
		return http.StatusConflict
	case errs.ClassArithmetic:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
