package receipts

import (
	"bytes"
	"context"
	"log/slog"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3API is the subset of the S3 client used by Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store writes rendered receipts to <prefix><booking id>.txt.
type Store struct {
	client S3API
	bucket string
	prefix string
	logger *slog.Logger
}

func NewStore(client S3API, bucket, prefix string, logger *slog.Logger) *Store {
	return &Store{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// NewS3Store loads AWS credentials from the environment. It returns nil when no bucket is configured.
func NewS3Store(ctx context.Context, cfg config.ReceiptsConfig, logger *slog.Logger) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load aws config")
	}
	return NewStore(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix, logger), nil
}

func (s *Store) Key(bookingID uuid.UUID) string {
	return s.prefix + bookingID.String() + ".txt"
}

func (s *Store) PutReceipt(ctx context.Context, bookingID uuid.UUID, body []byte) error {
	key := s.Key(bookingID)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return errs.Wrapf(err, "receipts: s3 put %s", key)
	}
	s.logger.Info("stored receipt", "booking_id", bookingID, "s3_key", key)
	return nil
}
