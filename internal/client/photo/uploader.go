// Package photo uploads profile photos to S3-compatible object storage and
// returns the URL the backend stores as profile_image.
package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aaywp/portal/internal/filex"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	DefaultMaxSize = 5 << 20
	keyPrefix      = "profiles/"
)

var (
	ErrDisabled = errors.New("photo storage is not configured")
	ErrNotImage = errors.New("file is not an image")
)

// Config selects the bucket and credentials. An empty Endpoint uses AWS;
// anything else (MinIO, R2) is addressed path-style.
type Config struct {
	Bucket        string
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	MaxSize       int64
}

func (c Config) Enabled() bool { return c.Bucket != "" }

// test seams
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type objectPutter interface {
	Upload(ctx context.Context, in *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type S3Uploader struct {
	cfg    Config
	putter objectPutter
	newKey func() string
}

func NewS3Uploader(ctx context.Context, cfg Config) (*S3Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}
	if cfg.Region == "" {
		cfg.Region = "auto"
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{cfg: cfg, putter: manager.NewUploader(client), newKey: uuid.NewString}, nil
}

// Upload stores the image at path under a fresh key and returns its URL.
func (u *S3Uploader) Upload(ctx context.Context, path string) (string, error) {
	data, err := filex.ReadLimited(path, u.cfg.MaxSize)
	if err != nil {
		return "", err
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%s: %w (%s)", path, ErrNotImage, mt.String())
	}

	key := keyPrefix + u.newKey() + mt.Extension()
	out, err := u.putter.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mt.String()),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	if u.cfg.PublicBaseURL != "" {
		return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key, nil
	}
	return out.Location, nil
}
