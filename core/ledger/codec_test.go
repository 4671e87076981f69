package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codecRecord struct {
	Name   string            `json:"name"`
	Amount uint64            `json:"amount"`
	Tags   map[string]string `json:"tags"`
}

func TestCodecCanonical(t *testing.T) {
	record := codecRecord{
		Name:   "listing",
		Amount: 1_000_000_000,
		Tags:   map[string]string{"z": "last", "a": "first", "m": "middle"},
	}

	first, err := Marshal(record)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(record)
		require.NoError(t, err)
		assert.Equal(t, first, again, "encoding must be deterministic")
	}
	assert.Contains(t, string(first), `"amount":1000000000`)

	var decoded codecRecord
	require.NoError(t, Unmarshal(first, &decoded))
	assert.Equal(t, record, decoded)
}
