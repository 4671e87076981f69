package types

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/mr-tron/base58"
)

// Identity is an account on the ledger: the base58 encoding of a compressed secp256k1 public key.
// The ledger core only compares identities; parsing is needed only where signatures are checked.
type Identity string

// NewIdentity returns the identity controlled by the given public key.
func NewIdentity(pubKey *btcec.PublicKey) Identity {
	return Identity(base58.Encode(pubKey.SerializeCompressed()))
}

// NewIdentityFromBytes returns the identity for a serialized public key (compressed or uncompressed).
func NewIdentityFromBytes(pubKey []byte) (Identity, error) {
	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return "", errors.Wrap(errs.InvalidArgument, "invalid public key")
	}
	return NewIdentity(key), nil
}

// ParseIdentity validates s as a base58-encoded public key.
func ParseIdentity(s string) (Identity, error) {
	id := Identity(s)
	if _, err := id.PublicKey(); err != nil {
		return "", errors.WithStack(err)
	}
	return id, nil
}

// PublicKey decodes the public key behind the identity.
func (i Identity) PublicKey() (*btcec.PublicKey, error) {
	if i == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "empty identity")
	}
	raw, err := base58.Decode(string(i))
	if err != nil {
		return nil, errors.Wrap(errs.InvalidArgument, "identity is not base58")
	}
	if len(raw) != btcec.PubKeyBytesLenCompressed {
		return nil, errors.Wrapf(errs.InvalidArgument, "identity must be a %d bytes compressed public key", btcec.PubKeyBytesLenCompressed)
	}
	key, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, errors.Wrap(errs.InvalidArgument, "identity is not a valid public key")
	}
	return key, nil
}

func (i Identity) IsZero() bool {
	return i == ""
}

func (i Identity) String() string {
	return string(i)
}

// MintID names a token mint.
type MintID string

func (m MintID) String() string {
	return string(m)
}
