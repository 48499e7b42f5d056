package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
)

// S3Config holds the settings needed to reach an S3-compatible endpoint
// (AWS or MinIO).
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3Store stores payloads as objects in a single bucket.
type S3Store struct {
	cfg S3Config
}

// NewS3Store constructs an S3Store. The client is built lazily per call so
// credential or endpoint problems surface as operation errors.
func NewS3Store(cfg S3Config) *S3Store {
	return &S3Store{cfg: cfg}
}

// GetRandomStorageKey returns a date-prefixed unique object key.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *S3Store) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return client, nil
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("error uploading object: %w", err)
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := getObject(client, ctx, &s3.GetObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading object: %w", err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = deleteObject(client, ctx, &s3.DeleteObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("error deleting object: %w", err)
	}
	return nil
}
