package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfgpkg "github.com/dmitrijs2005/cebip/internal/config"
	"github.com/google/uuid"
)

// PutObjectAPI is the slice of *s3.Client used for uploads.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) PutObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Sink uploads snapshots to an S3-compatible bucket (AWS or MinIO).
type S3Sink struct {
	client PutObjectAPI
	bucket string
	now    func() time.Time
}

func NewS3Sink(client PutObjectAPI, bucket string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, now: time.Now}
}

// OpenS3Sink builds a client from the S3 settings in cfg. Static
// credentials are used when an access key is configured, otherwise the
// default AWS credential chain applies.
func OpenS3Sink(ctx context.Context, cfg *cfgpkg.Config) (*S3Sink, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Sink(client, cfg.S3Bucket), nil
}

// ObjectKey spreads backups by date with a random suffix so uploads never
// overwrite each other.
func ObjectKey(now time.Time, f Format) string {
	d := now.UTC()
	return fmt.Sprintf("backups/%d/%02d/%02d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), f.Ext())
}

// Put uploads data. The name is recorded as object metadata; the key comes
// from ObjectKey.
func (s *S3Sink) Put(ctx context.Context, name string, data []byte, f Format) (string, error) {
	key := ObjectKey(s.now(), f)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(f.ContentType()),
		Metadata:    map[string]string{"name": name},
	})
	if err != nil {
		return "", fmt.Errorf("upload backup to s3://%s/%s: %w", s.bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
