package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/config"
	"github.com/gaze-network/bodydfi-ledger/internal/snapshot"
	"github.com/gaze-network/bodydfi-ledger/internal/store"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type exportCmdOptions struct {
	Namespaces []string
}

func NewExportCommand() *cobra.Command {
	opts := &exportCmdOptions{}

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export a parquet snapshot of the ledger to S3",
		Example: `bodydfi export --namespaces provider,listing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.Namespaces, "namespaces", nil, "Namespaces to export. Default is every namespace")
	flags.String("bucket", "", "S3 bucket to upload the snapshot to")
	flags.String("prefix", "", "S3 key prefix of the snapshot")

	config.BindPFlag("export.s3.bucket", flags.Lookup("bucket"))
	config.BindPFlag("export.s3.prefix", flags.Lookup("prefix"))

	return cmd
}

func exportHandler(opts *exportCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	conf := config.Load()

	namespaces := ledger.Namespaces
	if len(opts.Namespaces) > 0 {
		namespaces = make([]ledger.Namespace, 0, len(opts.Namespaces))
		for _, raw := range lo.Uniq(opts.Namespaces) {
			ns, err := ledger.ParseNamespace(raw)
			if err != nil {
				return errors.WithStack(err)
			}
			namespaces = append(namespaces, ns)
		}
	}

	uploader, err := snapshot.NewS3Uploader(ctx, conf.Export.S3)
	if err != nil {
		return errors.Wrap(err, "invalid export configuration")
	}

	s, err := store.New(ctx, conf.Store)
	if err != nil {
		return errors.Wrap(err, "can't open ledger store")
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.ErrorContext(ctx, "Failed to close ledger store", err)
		}
	}()

	result, err := snapshot.NewExporter(s, uploader, conf.Export.S3.Prefix).Export(ctx, namespaces)
	if err != nil {
		return errors.Wrap(err, "failed to export ledger snapshot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Snapshot %s\n", result.RunID)
	for _, file := range result.Files {
		fmt.Fprintf(out, "  s3://%s/%s (%d records)\n", conf.Export.S3.Bucket, file.Key, file.Records)
	}
	return nil
}
