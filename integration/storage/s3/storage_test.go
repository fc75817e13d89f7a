package s3_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/integration/storage/s3"
)

type fakeClient struct {
	input *s3aws.PutObjectInput
	err   error
}

func (f *fakeClient) PutObject(_ context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3aws.PutObjectOutput{}, nil
}

func TestStorage_Upload(t *testing.T) {
	t.Parallel()

	t.Run("uploads and returns public url", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{}
		storage, err := s3.New(context.Background(), s3.Config{
			Bucket: "guide-media",
			Region: "ap-southeast-1",
		}, s3.WithClient(client))
		require.NoError(t, err)

		url, err := storage.Upload(context.Background(), "feedback/fb-20260301-0001", "image/jpeg", strings.NewReader("photo"))
		require.NoError(t, err)
		assert.Equal(t, "https://guide-media.s3.ap-southeast-1.amazonaws.com/feedback/fb-20260301-0001", url)

		require.NotNil(t, client.input)
		assert.Equal(t, "guide-media", aws.ToString(client.input.Bucket))
		assert.Equal(t, "feedback/fb-20260301-0001", aws.ToString(client.input.Key))
		assert.Equal(t, "image/jpeg", aws.ToString(client.input.ContentType))

		body, err := io.ReadAll(client.input.Body)
		require.NoError(t, err)
		assert.Equal(t, "photo", string(body))
	})

	t.Run("custom base url and path style endpoint", func(t *testing.T) {
		t.Parallel()

		storage, err := s3.New(context.Background(), s3.Config{
			Bucket:         "guide-media",
			Region:         "us-east-1",
			Endpoint:       "https://minio.local:9000",
			ForcePathStyle: true,
		}, s3.WithClient(&fakeClient{}))
		require.NoError(t, err)

		url, err := storage.Upload(context.Background(), "/feedback/x", "", strings.NewReader("p"))
		require.NoError(t, err)
		assert.Equal(t, "https://minio.local:9000/guide-media/feedback/x", url)
	})

	t.Run("upload failure wrapped", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{err: assert.AnError}
		storage, err := s3.New(context.Background(), s3.Config{
			Bucket: "guide-media",
			Region: "us-east-1",
		}, s3.WithClient(client))
		require.NoError(t, err)

		_, err = storage.Upload(context.Background(), "k", "", strings.NewReader("p"))
		require.ErrorIs(t, err, s3.ErrUploadFailed)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()

		_, err := s3.New(context.Background(), s3.Config{Region: "us-east-1"})
		require.ErrorIs(t, err, s3.ErrInvalidConfig)
	})
}
