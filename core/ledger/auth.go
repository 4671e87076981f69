package ledger

import (
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/samber/lo"
)

// Authorization answers whether the caller of an operation controls an identity.
// Every mutating operation receives one explicitly.
type Authorization interface {
	Controls(identity types.Identity) bool
}

// AuthorizationFunc adapts a function to Authorization.
type AuthorizationFunc func(identity types.Identity) bool

func (f AuthorizationFunc) Controls(identity types.Identity) bool {
	return f(identity)
}

// Signers authorizes the identities that signed the request.
type Signers []types.Identity

// SignedBy returns the authorization of a request signed by the given identities.
func SignedBy(identities ...types.Identity) Signers {
	return Signers(identities)
}

func (s Signers) Controls(identity types.Identity) bool {
	return !identity.IsZero() && lo.Contains(s, identity)
}

// Nobody controls no identity. Only permissionless operations succeed with it.
var Nobody Authorization = Signers(nil)

// ControlsAny reports whether auth controls at least one of the identities.
func ControlsAny(auth Authorization, identities []types.Identity) bool {
	return lo.ContainsBy(identities, auth.Controls)
}
