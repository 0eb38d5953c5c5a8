package s3

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name       string
		publicBase string
		endpoint   string
		disableSSL bool
		region     string
		want       string
	}{
		{
			name:   "aws virtual host",
			region: "eu-west-3",
			want:   "https://media.s3.eu-west-3.amazonaws.com/biens/a.jpg",
		},
		{
			name: "aws default region",
			want: "https://media.s3.us-east-1.amazonaws.com/biens/a.jpg",
		},
		{
			name:       "minio without ssl",
			endpoint:   "localhost:9000",
			disableSSL: true,
			want:       "http://localhost:9000/media/biens/a.jpg",
		},
		{
			name:     "endpoint scheme wins",
			endpoint: "http://minio:9000/",
			want:     "http://minio:9000/media/biens/a.jpg",
		},
		{
			name:       "public base url",
			publicBase: "https://cdn.example.com",
			endpoint:   "localhost:9000",
			want:       "https://cdn.example.com/biens/a.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := objectURL(tt.publicBase, tt.endpoint, tt.disableSSL, tt.region, "media", "biens/a.jpg")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(awserr.New("NotFound", "Not Found", nil)))
	assert.True(t, isNotFound(awserr.New(s3.ErrCodeNoSuchKey, "missing", nil)))
	assert.True(t, isNotFound(awserr.NewRequestFailure(awserr.New("Unknown", "", nil), 404, "req-1")))
	assert.True(t, isNotFound(fmt.Errorf("wrapped: %w", awserr.New("NotFound", "", nil))))

	assert.False(t, isNotFound(awserr.NewRequestFailure(awserr.New("AccessDenied", "", nil), 403, "req-2")))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestIsBucketOwned(t *testing.T) {
	assert.True(t, isBucketOwned(awserr.New(s3.ErrCodeBucketAlreadyOwnedByYou, "", nil)))
	assert.False(t, isBucketOwned(awserr.New("AccessDenied", "", nil)))
}
