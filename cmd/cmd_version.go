package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/constants"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/modules/governance"
	"github.com/gaze-network/bodydfi-ledger/modules/token"
	"github.com/spf13/cobra"
)

var versions = map[string]string{
	"":                               constants.Version,
	common.ModuleDataMarket.String(): datamarket.Version,
	common.ModuleGovernance.String(): governance.Version,
	common.ModuleToken.String():      token.Version,
}

type versionCmdOptions struct {
	Modules string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show bodydfi version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Modules, "module", "", `Show version of a specific module. E.g. "datamarket"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	version, ok := versions[opts.Modules]
	if !ok {
		return errors.Wrap(errs.Unsupported, "Invalid module name")
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
