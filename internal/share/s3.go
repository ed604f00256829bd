package share

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/scanbatch/internal/netx"
)

// DefaultLinkTTL is how long a presigned download link stays valid.
const DefaultLinkTTL = 24 * time.Hour

// uploadTTL bounds the presigned PUT used for the upload itself.
const uploadTTL = 15 * time.Minute

var ErrBucketRequired = errors.New("s3 bucket is required")

// Presigner is the subset of *s3.PresignClient used by S3.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	LinkTTL         time.Duration
}

// S3 uploads exports through a presigned PUT and answers with a presigned
// GET link.
type S3 struct {
	presigner Presigner
	client    *http.Client
	bucket    string
	prefix    string
	ttl       time.Duration
	now       func() time.Time
}

// NewS3 builds the presign client from cfg. Static credentials are used when
// both keys are set, otherwise the default credential chain applies. A custom
// endpoint switches to path-style addressing for MinIO and LocalStack.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3WithPresigner(s3.NewPresignClient(client), nil, cfg.Bucket, cfg.Prefix, cfg.LinkTTL), nil
}

// NewS3WithPresigner wires an existing presigner. A nil httpClient means
// http.DefaultClient.
func NewS3WithPresigner(p Presigner, httpClient *http.Client, bucket, prefix string, ttl time.Duration) *S3 {
	if ttl <= 0 {
		ttl = DefaultLinkTTL
	}
	return &S3{presigner: p, client: httpClient, bucket: bucket, prefix: prefix, ttl: ttl, now: time.Now}
}

func (s *S3) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *S3) Share(ctx context.Context, filePath, mimeType string) (Link, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Link{}, fmt.Errorf("read %s: %w", filePath, err)
	}

	key := s.key(filepath.Base(filePath))

	put, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(mimeType),
	}, func(o *s3.PresignOptions) { o.Expires = uploadTTL })
	if err != nil {
		return Link{}, fmt.Errorf("presign upload s3://%s/%s: %w", s.bucket, key, err)
	}

	if err := netx.UploadToPresignedURL(ctx, s.client, put.URL, mimeType, data); err != nil {
		return Link{}, fmt.Errorf("upload s3://%s/%s: %w", s.bucket, key, err)
	}

	get, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) { o.Expires = s.ttl })
	if err != nil {
		return Link{}, fmt.Errorf("presign download s3://%s/%s: %w", s.bucket, key, err)
	}

	return Link{URL: get.URL, ExpiresAt: s.now().Add(s.ttl)}, nil
}
