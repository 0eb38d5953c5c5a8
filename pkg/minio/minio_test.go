package minio

import (
	"errors"
	"testing"

	"immo-media/pkg/config"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_RequiresEndpoint(t *testing.T) {
	_, err := NewStore(&config.Config{S3BucketName: "media"})
	assert.Error(t, err)
}

func TestNewStore_SchemeFromEndpoint(t *testing.T) {
	store, err := NewStore(&config.Config{
		AWSEndpoint:  "http://localhost:9000/",
		S3UseSSL:     "true",
		S3BucketName: "media",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", store.baseURL)

	store, err = NewStore(&config.Config{
		AWSEndpoint:  "minio.internal:9000",
		S3UseSSL:     "false",
		S3BucketName: "media",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://minio.internal:9000", store.baseURL)
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:9000/media/videos/a.mp4",
		objectURL("", "http://localhost:9000", "media", "videos/a.mp4"),
	)
	assert.Equal(t,
		"https://cdn.example.com/videos/a.mp4",
		objectURL("https://cdn.example.com", "http://localhost:9000", "media", "videos/a.mp4"),
	)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{StatusCode: 404}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}))
	assert.False(t, isNotFound(errors.New("boom")))
}
