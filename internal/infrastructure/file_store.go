package infrastructure

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// FileStore saves an uploaded file and returns its public URL.
type FileStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// LocalFileStore writes uploads to a directory served as static files.
type LocalFileStore struct {
	dir     string
	baseURL string
}

func NewLocalFileStore(dir, baseURL string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalFileStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (l *LocalFileStore) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	// name is generated server-side, but keep Base as a guard against
	// path separators sneaking in.
	name = filepath.Base(name)

	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return l.baseURL + "/" + name, nil
}

// S3FileStore keeps uploads in an S3-compatible bucket.
type S3FileStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3FileStore(ctx context.Context, user, password, region, endpoint, bucket, baseURL string) (*S3FileStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(user, password, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3FileStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *S3FileStore) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
