// Package deploy publishes the exported site to an S3 bucket.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"
)

// ErrNoBucket is returned when no target bucket was configured.
var ErrNoBucket = errors.New("no S3 bucket configured")

// Uploader is the subset of manager.Uploader used here.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// NewS3Uploader builds an uploader from the default AWS credential chain.
func NewS3Uploader(ctx context.Context) (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS SDK config: %w", err)
	}
	return manager.NewUploader(s3.NewFromConfig(cfg)), nil
}

// Site uploads the named files of fsys to bucket, keyed by their slash
// separated path relative to the root. Files of fsys that are not named are
// never read. It returns the number of uploaded files.
func Site(ctx context.Context, up Uploader, bucket string, fsys afero.Fs, files []string) (int, error) {
	if bucket == "" {
		return 0, ErrNoBucket
	}
	logger := slog.Default().With("bucket", bucket)

	uploaded := 0
	for _, name := range files {
		if err := uploadFile(ctx, up, bucket, fsys, name); err != nil {
			return uploaded, fmt.Errorf("deploy to %s: %w", bucket, err)
		}
		uploaded++
		logger.Info("uploaded", "key", filepath.ToSlash(name))
	}
	return uploaded, nil
}

func uploadFile(ctx context.Context, up Uploader, bucket string, fsys afero.Fs, name string) error {
	info, err := fsys.Stat(name)
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("upload %s: is a directory", name)
	}

	file, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	key := filepath.ToSlash(name)
	_, err = up.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(ContentType(key)),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// ContentType returns the MIME type for name, falling back to
// application/octet-stream.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
