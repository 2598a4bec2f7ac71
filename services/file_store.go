package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rpupo63/cms-admin-backend/config"
	"github.com/rpupo63/cms-admin-backend/errs"
)

// ErrObjectNotFound is returned by FileStore.Get for unknown keys
var ErrObjectNotFound = errors.New("object not found")

// Object is a stored file as returned by FileStore.Get. Callers close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// FileStore holds the images and attachments referenced by blog posts
type FileStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
}

type S3FileStore struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileStore uses the default AWS credential chain. S3_ENDPOINT points the
// client at an S3-compatible server such as MinIO.
func NewS3FileStore(ctx context.Context, c map[string]string) (*S3FileStore, error) {
	bucket := config.GetString(c, "S3_BUCKET", "")
	if bucket == "" {
		return nil, errs.NewConfigError("S3_BUCKET")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.GetString(c, "AWS_REGION", "ap-northeast-2")))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	endpoint := config.GetString(c, "S3_ENDPOINT", "")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3FileStore{
		client: client,
		bucket: bucket,
		prefix: config.GetString(c, "S3_PREFIX", "cms/files"),
	}, nil
}

func (s *S3FileStore) key(docNo string) string {
	return path.Join(s.prefix, docNo)
}

func (s *S3FileStore) Put(ctx context.Context, docNo string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(docNo)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", docNo, err)
	}
	return nil
}

func (s *S3FileStore) Get(ctx context.Context, docNo string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(docNo)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("get %s: %w", docNo, err)
	}

	return &Object{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}
