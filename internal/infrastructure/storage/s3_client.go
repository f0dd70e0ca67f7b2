package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"rentersrights/internal/domain/service"
	"rentersrights/pkg/errors"
	"rentersrights/pkg/logger"
)

type S3Client struct {
	client       *minio.Client
	bucket       string
	endpoint     string
	customDomain string
	useSSL       bool
}

type S3Config struct {
	Endpoint     string
	CustomDomain string
	Bucket       string
	Region       string
	AccessKeyID  string
	SecretKey    string
	UseSSL       bool
}

func NewS3Client(cfg S3Config) (*S3Client, error) {
	host := "s3.amazonaws.com"
	useSSL := cfg.UseSSL
	if cfg.Endpoint != "" {
		parsed, err := url.Parse(cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("invalid S3 endpoint %q: %w", cfg.Endpoint, err)
		}
		host = parsed.Host
		useSSL = parsed.Scheme == "https"
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &S3Client{
		client:       client,
		bucket:       cfg.Bucket,
		endpoint:     strings.TrimRight(cfg.Endpoint, "/"),
		customDomain: strings.TrimRight(cfg.CustomDomain, "/"),
		useSSL:       useSSL,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Only called
// against local or self-hosted endpoints.
func (s *S3Client) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
		logger.Info("Created bucket %s", s.bucket)
	}
	return nil
}

func (s *S3Client) Get(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.StorageUnavailable(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return nil, errors.ObjectNotFound(objectName, err)
		}
		return nil, errors.StorageUnavailable(err)
	}

	return data, nil
}

func (s *S3Client) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.StorageUnavailable(err)
	}

	return s.PublicURL(objectName), nil
}

func (s *S3Client) Remove(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.StorageUnavailable(err)
	}
	return nil
}

func (s *S3Client) PublicURL(objectName string) string {
	if s.customDomain != "" {
		return fmt.Sprintf("%s/%s", s.customDomain, objectName)
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectName)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, objectName)
}

// UploadBaseURL is where browser POST uploads land: the endpoint override
// when one is configured, the virtual-hosted bucket URL otherwise.
func (s *S3Client) UploadBaseURL() string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s", s.endpoint, s.bucket)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/", s.bucket)
}

var _ service.ObjectStorage = (*S3Client)(nil)
