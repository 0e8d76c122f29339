package photo

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aaywp/portal/internal/filex"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header; enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	out  *manager.UploadOutput
	err  error
}

func (f *fakePutter) Upload(_ context.Context, in *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return f.out, f.err
}

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func newTestUploader(cfg Config, p *fakePutter) *S3Uploader {
	if cfg.MaxSize == 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	return &S3Uploader{cfg: cfg, putter: p, newKey: func() string { return "k1" }}
}

func TestUpload_PublicURL(t *testing.T) {
	p := &fakePutter{out: &manager.UploadOutput{Location: "http://minio/bucket/profiles/k1.png"}}
	u := newTestUploader(Config{Bucket: "photos", PublicBaseURL: "https://cdn.example.org/"}, p)

	url, err := u.Upload(context.Background(), write(t, "me.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/profiles/k1.png", url)

	assert.Equal(t, "photos", aws.ToString(p.in.Bucket))
	assert.Equal(t, "profiles/k1.png", aws.ToString(p.in.Key))
	assert.Equal(t, "image/png", aws.ToString(p.in.ContentType))
	assert.Equal(t, pngHeader, p.body)
}

func TestUpload_LocationFallback(t *testing.T) {
	p := &fakePutter{out: &manager.UploadOutput{Location: "http://minio/photos/profiles/k1.png"}}
	u := newTestUploader(Config{Bucket: "photos"}, p)

	url, err := u.Upload(context.Background(), write(t, "me.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "http://minio/photos/profiles/k1.png", url)
}

func TestUpload_Rejections(t *testing.T) {
	p := &fakePutter{}
	u := newTestUploader(Config{Bucket: "photos", MaxSize: 64}, p)
	ctx := context.Background()

	_, err := u.Upload(ctx, write(t, "notes.txt", []byte("just some text")))
	require.ErrorIs(t, err, ErrNotImage)

	big := append(append([]byte{}, pngHeader...), make([]byte, 100)...)
	_, err = u.Upload(ctx, write(t, "big.png", big))
	require.ErrorIs(t, err, filex.ErrTooLarge)

	_, err = u.Upload(ctx, filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Nil(t, p.in, "nothing should be uploaded")
}

func TestUpload_PutError(t *testing.T) {
	p := &fakePutter{err: errors.New("access denied")}
	u := newTestUploader(Config{Bucket: "photos"}, p)

	_, err := u.Upload(context.Background(), write(t, "me.png", pngHeader))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestNewS3Uploader(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	var region string
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		var lo config.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		region = lo.Region
		assert.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	u, err := NewS3Uploader(context.Background(), Config{
		Bucket: "photos", Endpoint: "http://127.0.0.1:9000", AccessKey: "minio", SecretKey: "minio123",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "auto", region)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.EqualValues(t, DefaultMaxSize, u.cfg.MaxSize)

	loadDefaultAWSConfig = func(context.Context, ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = NewS3Uploader(context.Background(), Config{Bucket: "photos"})
	require.ErrorContains(t, err, "load-fail")

	_, err = NewS3Uploader(context.Background(), Config{})
	require.ErrorIs(t, err, ErrDisabled)
}
