// Package s3 provides object storage on Amazon S3 and S3-compatible
// services, used for visitor feedback photos.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	// ErrInvalidConfig is returned when required configuration is missing.
	ErrInvalidConfig = errors.New("s3: bucket and region are required")
	// ErrUploadFailed wraps errors from PutObject.
	ErrUploadFailed = errors.New("s3: upload failed")
)

// Client is the subset of the S3 API used by Storage. It exists so tests
// can substitute a mock.
type Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// Config holds object storage settings, loadable from environment.
// Endpoint and ForcePathStyle support S3-compatible services such as
// MinIO and Wasabi.
type Config struct {
	Bucket         string        `env:"S3_BUCKET,required"`
	Region         string        `env:"S3_REGION" envDefault:"ap-southeast-1"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`
	BaseURL        string        `env:"S3_BASE_URL"`
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
	UploadTimeout  time.Duration `env:"S3_UPLOAD_TIMEOUT" envDefault:"30s"`
}

// Storage uploads objects to a single bucket and returns public URLs.
type Storage struct {
	client        Client
	bucket        string
	baseURL       string
	uploadTimeout time.Duration
}

// Option configures a Storage.
type Option func(*Storage)

// WithClient sets a pre-configured S3 client, primarily for tests.
func WithClient(client Client) Option {
	return func(s *Storage) {
		s.client = client
	}
}

// New creates a Storage backed by the configured bucket. Static
// credentials are used when provided, otherwise the default AWS chain
// applies (IAM roles, env vars).
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	s := &Storage{
		bucket:        cfg.Bucket,
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		uploadTimeout: cfg.UploadTimeout,
	}
	if s.baseURL == "" {
		s.baseURL = publicBaseURL(cfg)
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		awsOptions := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("s3: load aws config: %w", err)
		}

		s.client = s3aws.NewFromConfig(awsConfig, func(o *s3aws.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return s, nil
}

// Upload stores the object under key and returns its public URL.
func (s *Storage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	key = strings.TrimPrefix(key, "/")
	input := &s3aws.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errors.Join(ErrUploadFailed, err)
	}

	return s.baseURL + "/" + key, nil
}

// publicBaseURL derives the object URL prefix from the configuration when
// no explicit base URL is set.
func publicBaseURL(cfg Config) string {
	if cfg.Endpoint != "" {
		endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
		if cfg.ForcePathStyle {
			return endpoint + "/" + cfg.Bucket
		}
		return strings.Replace(endpoint, "://", "://"+cfg.Bucket+".", 1)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
