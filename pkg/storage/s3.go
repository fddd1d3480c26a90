package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ResumeStore issues presigned URLs for resume files. The files themselves
// never pass through this backend: clients upload directly to the bucket.
type ResumeStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	region    string
	uploadTTL time.Duration
}

// Config holds S3-compatible storage configuration
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UploadTTL       time.Duration
}

// NewResumeStore creates a store backed by an S3 bucket.
// Returns nil (store disabled) when no bucket is configured.
func NewResumeStore(ctx context.Context, cfg Config) (*ResumeStore, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	ttl := cfg.UploadTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &ResumeStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		uploadTTL: ttl,
	}, nil
}

// PresignUpload returns a short-lived PUT URL for the given object key.
func (s *ResumeStore) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.uploadTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}
	return req.URL, nil
}

// PresignDownload returns a short-lived GET URL for the given object key.
func (s *ResumeStore) PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign download for %s: %w", key, err)
	}
	return req.URL, nil
}

// ObjectURL returns the canonical (non-presigned) URL stored on the record.
func (s *ResumeStore) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// HealthCheck verifies the bucket is reachable with the configured credentials.
func (s *ResumeStore) HealthCheck(ctx context.Context) error {
	_, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", s.bucket, err)
	}
	return nil
}
