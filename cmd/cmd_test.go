package cmd

import (
	"bytes"
	"os"
	"path"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/constants"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance"
	"github.com/gaze-network/bodydfi-ledger/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	testcases := []struct {
		module   string
		expected string
	}{
		{"", constants.Version},
		{"governance", governance.Version},
	}
	for _, tc := range testcases {
		t.Run(tc.module, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewVersionCommand()
			cmd.SetOut(&out)
			require.NoError(t, versionHandler(&versionCmdOptions{Modules: tc.module}, cmd, nil))
			assert.Equal(t, tc.expected+"\n", out.String())
		})
	}

	err := versionHandler(&versionCmdOptions{Modules: "runes"}, NewVersionCommand(), nil)
	assert.ErrorIs(t, err, errs.Unsupported)
}

func TestGenerateKeypair(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := NewGenerateKeypairCommand()
	cmd.SetOut(&out)

	require.NoError(t, generateKeypairHandler(&generateKeypairCmdOptions{Path: dir, Force: true}, cmd, nil))

	privateKey, err := os.ReadFile(path.Join(dir, "priv.key"))
	require.NoError(t, err)
	rawIdentity, err := os.ReadFile(path.Join(dir, "identity"))
	require.NoError(t, err)

	client, err := crypto.New(string(privateKey))
	require.NoError(t, err)
	identity, err := types.ParseIdentity(string(rawIdentity))
	require.NoError(t, err)
	assert.Equal(t, types.NewIdentity(client.PublicKey()), identity)
	assert.Contains(t, out.String(), identity.String())
}
