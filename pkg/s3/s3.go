package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"immo-media/internal/entity"
	"immo-media/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Client struct {
	s3Client      *s3.S3
	bucket        string
	publicBaseURL string
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO and other S3-compatible endpoints
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &Client{
		s3Client:      s3.New(sess),
		bucket:        cfg.S3BucketName,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}

	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		_, err = client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		})
		if err != nil && !isBucketOwned(err) {
			return nil, fmt.Errorf("failed to ensure bucket %q: %w", cfg.S3BucketName, err)
		}
	}

	return client, nil
}

// Put stores data under key and returns the public URL of the object.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) (*entity.StoredObject, error) {
	_, err := c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return &entity.StoredObject{
		URL:        c.objectURL(key),
		ExternalID: key,
		Bytes:      int64(len(data)),
	}, nil
}

// Delete removes the object stored under key. Unknown keys yield entity.ErrNotFound.
func (c *Client) Delete(ctx context.Context, key string) error {
	// DeleteObject succeeds for missing keys, so probe first
	_, err := c.s3Client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("object %q: %w", key, entity.ErrNotFound)
		}
		return fmt.Errorf("failed to stat file in S3: %w", err)
	}

	_, err = c.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (c *Client) objectURL(key string) string {
	disableSSL := aws.BoolValue(c.s3Client.Config.DisableSSL)
	return objectURL(
		c.publicBaseURL,
		aws.StringValue(c.s3Client.Config.Endpoint),
		disableSSL,
		aws.StringValue(c.s3Client.Config.Region),
		c.bucket,
		key,
	)
}

// objectURL builds the public URL of an object: an explicit public base wins,
// then a custom endpoint (path-style), then the AWS virtual-host style.
func objectURL(publicBase, endpoint string, disableSSL bool, region, bucket, key string) string {
	if publicBase != "" {
		return fmt.Sprintf("%s/%s", publicBase, key)
	}

	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if disableSSL {
			protocol = "http"
		}
		switch {
		case strings.HasPrefix(endpoint, "http://"):
			protocol = "http"
		case strings.HasPrefix(endpoint, "https://"):
			protocol = "https"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		endpoint = strings.TrimRight(endpoint, "/")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, bucket, key)
	}

	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

func isNotFound(err error) bool {
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
		return true
	}
	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		switch awsErr.Code() {
		case "NotFound", s3.ErrCodeNoSuchKey:
			return true
		}
	}
	return false
}

func isBucketOwned(err error) bool {
	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		switch awsErr.Code() {
		case s3.ErrCodeBucketAlreadyOwnedByYou, s3.ErrCodeBucketAlreadyExists:
			return true
		}
	}
	return false
}
