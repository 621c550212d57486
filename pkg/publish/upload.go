package publish

import (
	"bytes"
	"context"
	"image"
	"mime"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"
	"golang.org/x/xerrors"

	"github.com/lumenpath/pathtracer/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 30 * time.Second

// S3Config describes where rendered images are uploaded
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Empty uses the AWS endpoint for Region
	Region    string
	Bucket    string
	Prefix    string // Key prefix, e.g. "renders/"
}

// Enabled reports whether enough is configured to upload
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Uploader stores rendered images in an S3-compatible bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewUploader creates an uploader from static credentials
func NewUploader(config S3Config, logger core.Logger) (*Uploader, error) {
	if !config.Enabled() {
		return nil, xerrors.New("S3 upload needs a bucket")
	}

	awsConfig := &aws.Config{
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, xerrors.Errorf("while creating S3 session: %w", err)
	}
	return NewUploaderWithClient(s3.New(sess), config, logger), nil
}

// NewUploaderWithClient creates an uploader around an existing S3 client
func NewUploaderWithClient(client s3iface.S3API, config S3Config, logger core.Logger) *Uploader {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Uploader{
		client: client,
		bucket: config.Bucket,
		prefix: config.Prefix,
		logger: logger,
	}
}

// UploadImage encodes img in the format implied by name and uploads it, returning the object key
func (u *Uploader) UploadImage(ctx context.Context, img image.Image, name string) (string, error) {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return "", xerrors.Errorf("while choosing format for %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return "", xerrors.Errorf("while encoding %q: %w", name, err)
	}

	key := u.prefix + name
	if err := u.upload(ctx, buf.Bytes(), key); err != nil {
		return "", err
	}
	return key, nil
}

func (u *Uploader) upload(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return xerrors.Errorf("while uploading %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.bucket, size)
	return nil
}
