package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/pkg/crypto"
	"github.com/spf13/cobra"
)

type generateKeypairCmdOptions struct {
	Path  string
	Force bool
}

func NewGenerateKeypairCommand() *cobra.Command {
	opts := &generateKeypairCmdOptions{}

	cmd := &cobra.Command{
		Use:   "generate-keypair",
		Short: "Generate new secp256k1 keypair for signing ledger requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateKeypairHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Path, "path", "/data/keys", `Path to save to key pair file`)
	flags.BoolVar(&opts.Force, "force", false, "Replace an existing private key without prompt")

	return cmd
}

func generateKeypairHandler(opts *generateKeypairCmdOptions, cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating key pair\n")

	client, err := crypto.Generate()
	if err != nil {
		return errors.Wrap(errs.SomethingWentWrong, "generate private key")
	}
	identity := types.NewIdentity(client.PublicKey())
	fmt.Fprintf(out, "Identity: %s\n", identity)

	if err := os.MkdirAll(opts.Path, 0o755); err != nil {
		return errors.Wrap(errs.SomethingWentWrong, "create directory")
	}

	privateKeyPath := path.Join(opts.Path, "priv.key")
	if _, err := os.Stat(privateKeyPath); err == nil && !opts.Force {
		fmt.Fprintf(out, "Existing private key found at %s\n[WARNING] THE EXISTING PRIVATE KEY WILL BE LOST\nType [replace] to replace existing private key: ", privateKeyPath)
		var ans string
		fmt.Scanln(&ans)
		if ans != "replace" {
			fmt.Fprintf(out, "Keypair generation aborted\n")
			return nil
		}
	}

	if err := os.WriteFile(privateKeyPath, []byte(client.PrivateKeyHex()), 0o600); err != nil {
		return errors.Wrap(err, "write private key file")
	}
	fmt.Fprintf(out, "Private key saved at %s\n", privateKeyPath)

	identityPath := path.Join(opts.Path, "identity")
	if err := os.WriteFile(identityPath, []byte(identity.String()), 0o644); err != nil {
		return errors.Wrap(err, "write identity file")
	}
	fmt.Fprintf(out, "Identity saved at %s\n", identityPath)
	return nil
}
