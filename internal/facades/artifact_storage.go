package facades

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
)

const presignExpires = 15 * time.Minute

// S3ArtifactStorage keeps rendered reports in an S3 compatible bucket.
type S3ArtifactStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3ArtifactStorage builds a storage client with static credentials.
// An empty endpoint falls back to the AWS default resolver.
func NewS3ArtifactStorage(
	ctx context.Context,
	endpoint, region, accessKey, secretKey, bucket string,
) (*S3ArtifactStorage, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &S3ArtifactStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

// Put uploads content under key.
func (s *S3ArtifactStorage) Put(ctx context.Context, key string, content []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		logger.Log.Errorw("failed to upload report artifact", "bucket", s.bucket, "key", key, "error", err)
		return err
	}
	return nil
}

// PresignGet returns a temporary download URL for key.
func (s *S3ArtifactStorage) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpires))
	if err != nil {
		logger.Log.Errorw("failed to presign report artifact", "bucket", s.bucket, "key", key, "error", err)
		return "", err
	}
	return req.URL, nil
}
