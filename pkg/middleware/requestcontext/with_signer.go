package requestcontext

import (
	"context"
	"log/slog"

	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/pkg/crypto"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

const (
	HeaderIdentity  = "X-Identity"
	HeaderSignature = "X-Signature"
)

type signerKey struct{}

// WithSigner verifies that the request body is signed by the key behind the X-Identity header.
// Requests without an identity pass through unsigned, so read-only routes stay public.
// A present but unverifiable signature is rejected with 401 Unauthorized.
func WithSigner() Option {
	verifier, _ := crypto.New("")

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		rawIdentity := c.Get(HeaderIdentity)
		if rawIdentity == "" {
			return ctx, nil
		}

		identity, err := types.ParseIdentity(rawIdentity)
		if err != nil {
			return nil, requestcontextError{err: err, status: fiber.StatusUnauthorized, message: "invalid identity"}
		}
		pubKey, err := identity.PublicKey()
		if err != nil {
			return nil, requestcontextError{err: err, status: fiber.StatusUnauthorized, message: "invalid identity"}
		}

		verified, err := verifier.Verify(c.Body(), c.Get(HeaderSignature), pubKey)
		if err != nil || !verified {
			logger.WarnContext(ctx, "Rejected request with invalid signature",
				slog.String("event", "requestcontext/invalid_signature"),
				slog.String("module", "requestcontext/with_signer"),
				slog.String("identity", identity.String()),
			)
			return nil, requestcontextError{err: err, status: fiber.StatusUnauthorized, message: "invalid request signature"}
		}

		ctx = context.WithValue(ctx, signerKey{}, identity)
		ctx = logger.WithContext(ctx, "signer", identity.String())
		return ctx, nil
	}
}

// GetSigner returns the verified identity that signed the request, or the zero identity.
//
// Warning: Request context should be setup before using this function
func GetSigner(ctx context.Context) types.Identity {
	if identity, ok := ctx.Value(signerKey{}).(types.Identity); ok {
		return identity
	}
	return ""
}

// GetAuthorization returns the authorization of the request signer. An unsigned request controls no identity.
func GetAuthorization(ctx context.Context) ledger.Authorization {
	signer := GetSigner(ctx)
	if signer.IsZero() {
		return ledger.Nobody
	}
	return ledger.SignedBy(signer)
}
