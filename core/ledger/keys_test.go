package ledger

import (
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	testcases := []struct {
		ns         Namespace
		components []string
		expected   Key
	}{
		{NamespaceProvider, []string{"user-1"}, "provider/user-1"},
		{NamespaceGrant, []string{"buyer", "listing-1"}, "grant/buyer/listing-1"},
		{NamespaceGrant, []string{"buyer/listing", "1"}, "grant/buyer%2Flisting/1"},
		{NamespaceSubmission, []string{"100%"}, "submission/100%25"},
		{NamespaceCounter, nil, "counter"},
	}
	for _, tc := range testcases {
		t.Run(string(tc.expected), func(t *testing.T) {
			key := DeriveKey(tc.ns, tc.components...)
			assert.Equal(t, tc.expected, key)
			assert.Equal(t, tc.ns, key.Namespace())

			components, err := key.Components()
			require.NoError(t, err)
			assert.Equal(t, len(tc.components), len(components))
			for i := range tc.components {
				assert.Equal(t, tc.components[i], components[i])
			}
		})
	}
}

func TestDeriveKeyNoCollision(t *testing.T) {
	keys := []Key{
		DeriveKey(NamespaceGrant, "a/b", "c"),
		DeriveKey(NamespaceGrant, "a", "b/c"),
		DeriveKey(NamespaceGrant, "a", "b", "c"),
		DeriveKey(NamespaceVote, "a", "b"),
		DeriveKey(NamespaceVote, "a/b"),
		DeriveKey(NamespaceProvider, "submission/x"),
		DeriveKey(NamespaceSubmission, "x"),
	}
	seen := make(map[Key]struct{}, len(keys))
	for _, key := range keys {
		_, dup := seen[key]
		assert.False(t, dup, "collision on %q", key)
		seen[key] = struct{}{}
	}
}

func TestPrefix(t *testing.T) {
	prefix := Prefix(NamespaceGrant, "buyer")
	assert.True(t, DeriveKey(NamespaceGrant, "buyer", "listing").HasPrefix(prefix))
	assert.False(t, DeriveKey(NamespaceGrant, "buyer2", "listing").HasPrefix(prefix))
	assert.False(t, DeriveKey(NamespaceProvider, "x").HasPrefix(Prefix(NamespaceProposal)))
}

func TestParseNamespace(t *testing.T) {
	ns, err := ParseNamespace("token-mint")
	require.NoError(t, err)
	assert.Equal(t, NamespaceTokenMint, ns)

	_, err = ParseNamespace("unknown")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}
