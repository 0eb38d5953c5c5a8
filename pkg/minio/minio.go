// Package minio is the media store backed by the MinIO client, used when
// STORAGE_DRIVER=minio.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"immo-media/internal/entity"
	"immo-media/pkg/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Store struct {
	client        *minio.Client
	bucket        string
	baseURL       string
	publicBaseURL string

	ensureOnce sync.Once
	ensureErr  error
}

func NewStore(cfg *config.Config) (*Store, error) {
	endpoint := strings.TrimRight(cfg.AWSEndpoint, "/")
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}

	secure := cfg.S3UseSSL != "false"
	switch {
	case strings.HasPrefix(endpoint, "http://"):
		secure = false
	case strings.HasPrefix(endpoint, "https://"):
		secure = true
	}
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		Secure: secure,
		Region: cfg.AWSRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	scheme := "https"
	if !secure {
		scheme = "http"
	}

	return &Store{
		client:        client,
		bucket:        strings.TrimSpace(cfg.S3BucketName),
		baseURL:       fmt.Sprintf("%s://%s", scheme, endpoint),
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

func (s *Store) EnsureBucket(ctx context.Context) error {
	if s.bucket == "" {
		return fmt.Errorf("s3 bucket is empty")
	}

	s.ensureOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.ensureErr = err
			return
		}
		if exists {
			return
		}
		s.ensureErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	})

	if s.ensureErr != nil {
		return fmt.Errorf("ensure s3 bucket %q: %w", s.bucket, s.ensureErr)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (*entity.StoredObject, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object to s3: %w", err)
	}

	return &entity.StoredObject{
		URL:        objectURL(s.publicBaseURL, s.baseURL, s.bucket, key),
		ExternalID: key,
		Bytes:      int64(len(data)),
	}, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("object %q: %w", key, entity.ErrNotFound)
		}
		return fmt.Errorf("stat object: %w", err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func objectURL(publicBase, baseURL, bucket, key string) string {
	if publicBase != "" {
		return fmt.Sprintf("%s/%s", publicBase, key)
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, bucket, key)
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
