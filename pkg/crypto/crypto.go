// Package crypto signs and verifies request payloads with secp256k1 ECDSA over a double SHA-256 digest.
package crypto

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
)

type Client struct {
	privateKey *btcec.PrivateKey
}

// New creates a client from a hex encoded private key. An empty key creates a verify-only client.
func New(privateKeyStr string) (*Client, error) {
	if privateKeyStr == "" {
		return &Client{}, nil
	}
	privateKeyBytes, err := hex.DecodeString(privateKeyStr)
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	if len(privateKeyBytes) != btcec.PrivKeyBytesLen {
		return nil, errors.Wrapf(errs.InvalidArgument, "private key must be %d bytes, got %d", btcec.PrivKeyBytesLen, len(privateKeyBytes))
	}
	privateKey, _ := btcec.PrivKeyFromBytes(privateKeyBytes)
	return &Client{privateKey: privateKey}, nil
}

// Generate creates a client holding a freshly generated private key.
func Generate() (*Client, error) {
	privateKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate private key")
	}
	return &Client{privateKey: privateKey}, nil
}

func (c *Client) PrivateKeyHex() string {
	if c.privateKey == nil {
		return ""
	}
	return hex.EncodeToString(c.privateKey.Serialize())
}

// PublicKey returns nil for a verify-only client.
func (c *Client) PublicKey() *btcec.PublicKey {
	if c.privateKey == nil {
		return nil
	}
	return c.privateKey.PubKey()
}

// Sign returns the hex DER signature of message.
func (c *Client) Sign(message []byte) (string, error) {
	if c.privateKey == nil {
		return "", errors.Wrap(errs.InvalidArgument, "client has no private key")
	}
	messageHash := chainhash.DoubleHashB(message)
	signature := ecdsa.Sign(c.privateKey, messageHash)
	return hex.EncodeToString(signature.Serialize()), nil
}

// Verify reports whether sigStr is a valid signature of message by pubKey.
func (c *Client) Verify(message []byte, sigStr string, pubKey *btcec.PublicKey) (bool, error) {
	sigBytes, err := hex.DecodeString(sigStr)
	if err != nil {
		return false, errors.Wrap(err, "signature decode")
	}
	signature, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false, errors.Wrap(err, "signature parse")
	}
	messageHash := chainhash.DoubleHashB(message)
	return signature.Verify(messageHash, pubKey), nil
}
