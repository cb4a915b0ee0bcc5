package backup

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/cebip/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	key := ObjectKey(now, FormatJSON)
	assert.True(t, strings.HasPrefix(key, "backups/2024/03/07/"), key)
	assert.True(t, strings.HasSuffix(key, ".json"), key)
	assert.NotEqual(t, key, ObjectKey(now, FormatJSON))
}

func TestS3Sink_Put(t *testing.T) {
	fp := &fakePutter{}
	sink := NewS3Sink(fp, "cebip")
	sink.now = func() time.Time { return time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC) }

	loc, err := Export(context.Background(), sink, "manual.json", sampleSnapshot(), FormatJSON)
	require.NoError(t, err)

	require.NotNil(t, fp.in)
	assert.Equal(t, "cebip", aws.ToString(fp.in.Bucket))
	assert.Equal(t, "application/json", aws.ToString(fp.in.ContentType))
	assert.Equal(t, "manual.json", fp.in.Metadata["name"])
	assert.Equal(t, "s3://cebip/"+aws.ToString(fp.in.Key), loc)
	assert.True(t, strings.HasPrefix(aws.ToString(fp.in.Key), "backups/2024/12/22/"))
	assert.Contains(t, fp.body, `"Black Friday Premium"`)
}

func TestS3Sink_PutError(t *testing.T) {
	boom := errors.New("access denied")
	sink := NewS3Sink(&fakePutter{err: boom}, "cebip")

	_, err := sink.Put(context.Background(), "x", []byte("{}"), FormatJSON)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://cebip/backups/")
}

func TestOpenS3Sink(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			_ = fn(&lo)
		}
		return aws.Config{Region: lo.Region}, nil
	}

	var opts s3.Options
	fp := &fakePutter{}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) PutObjectAPI {
		for _, fn := range optFns {
			fn(&opts)
		}
		return fp
	}

	cfg := &config.Config{
		S3Bucket:       "cebip",
		S3Region:       "eu-central-1",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3AccessKey:    "minioadmin",
		S3SecretKey:    "minioadmin",
	}

	sink, err := OpenS3Sink(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "cebip", sink.bucket)
	assert.Equal(t, "eu-central-1", lo.Region)
	require.NotNil(t, lo.Credentials)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	t.Run("load error", func(t *testing.T) {
		loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("no config")
		}
		_, err := OpenS3Sink(context.Background(), cfg)
		require.Error(t, err)
	})
}
