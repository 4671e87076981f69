package snapshot

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
)

const parquetContentType = "application/vnd.apache.parquet"

var _ Uploader = (*S3Uploader)(nil)

type S3Uploader struct {
	uploader *manager.Uploader
	bucket   string
}

func NewS3Uploader(ctx context.Context, conf S3Config) (*S3Uploader, error) {
	if conf.Bucket == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "s3 bucket is required")
	}

	var opts []func(*config.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, config.WithRegion(conf.Region))
	}
	sdkConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}

	s3client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		o.UsePathStyle = conf.PathStyle
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
	})

	return &S3Uploader{
		uploader: manager.NewUploader(s3client, func(u *manager.Uploader) {
			u.Concurrency = 2
		}),
		bucket: conf.Bucket,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte) error {
	_, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(parquetContentType),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload s3://%s/%s", u.bucket, key)
	}
	return nil
}
