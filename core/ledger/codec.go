package ledger

import (
	"github.com/cockroachdb/errors"
	"github.com/ugorji/go/codec"
)

// records are encoded as canonical JSON so that equal records always produce equal bytes.
var jsonHandle = func() *codec.JsonHandle {
	h := new(codec.JsonHandle)
	h.Canonical = true
	return h
}()

// Marshal encodes a record.
func Marshal(v any) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, jsonHandle).Encode(v); err != nil {
		return nil, errors.Wrap(err, "failed to encode record")
	}
	return out, nil
}

// Unmarshal decodes a record produced by Marshal.
func Unmarshal(data []byte, v any) error {
	if err := codec.NewDecoderBytes(data, jsonHandle).Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode record")
	}
	return nil
}
