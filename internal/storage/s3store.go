package storage

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"

	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
)

// S3Store implements Store on an S3 bucket configured for static website hosting.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// S3StoreConfig contains configuration for the S3 store.
type S3StoreConfig struct {
	AWSConfig aws.Config
	Bucket    string
	Prefix    string
	BaseURL   string // optional, for testing
}

// NewS3Store creates a new S3-backed store.
func NewS3Store(cfg S3StoreConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.Wrap(internalerrors.ErrInvalidParameter, "publish bucket is not configured")
	}

	opts := []func(*s3.Options){}
	if cfg.BaseURL != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.BaseURL)
			o.UsePathStyle = true
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		})
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg.AWSConfig, opts...),
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// Location returns the s3:// URL of the site root.
func (s *S3Store) Location() string {
	if s.prefix == "" {
		return "s3://" + s.bucket
	}
	return "s3://" + s.bucket + "/" + s.prefix
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

// Put uploads an object.
func (s *S3Store) Put(ctx context.Context, obj Object) error {
	key, err := CleanKey(obj.Key)
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(obj.Body),
		ContentLength: aws.Int64(int64(len(obj.Body))),
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}
	if obj.CacheControl != "" {
		input.CacheControl = aws.String(obj.CacheControl)
	}
	if obj.SHA256 != "" {
		input.Metadata = map[string]string{"sha256": obj.SHA256}
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return errors.Wrapf(err, "put object %s", key)
	}
	return nil
}

// Get downloads an object.
func (s *S3Store) Get(ctx context.Context, key string) (*Object, error) {
	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, errors.Wrapf(internalerrors.ErrNotFound, "object %s", key)
		}
		return nil, errors.Wrapf(err, "get object %s", key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read object %s", key)
	}

	return &Object{
		Key:          key,
		Body:         data,
		ContentType:  aws.ToString(out.ContentType),
		CacheControl: aws.ToString(out.CacheControl),
		SHA256:       out.Metadata["sha256"],
	}, nil
}

// List returns the keys under the prefix, relative to it.
func (s *S3Store) List(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list objects")
		}
		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			if s.prefix != "" {
				key = strings.TrimPrefix(key, s.prefix+"/")
			}
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	return keys, nil
}
