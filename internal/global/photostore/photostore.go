// Package photostore keeps student profile photos in S3-compatible object
// storage. Uploads go through the server (multipart) or straight from the
// browser via a presigned PUT URL.
package photostore

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"student-portal-system/config"
)

type PhotoStore struct {
	Bucket  string
	Prefix  string
	BaseURL string

	s3Client *s3.Client
	uploader *manager.Uploader
}

// New builds a PhotoStore from the configured S3 section.
func New() *PhotoStore {
	cfg := config.Get().S3
	return &PhotoStore{
		Bucket:  cfg.Bucket,
		Prefix:  cfg.Prefix,
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// InitS3 lazily builds the S3 client from static credentials, honoring a
// custom endpoint and path-style addressing for MinIO-like backends.
func (ps *PhotoStore) InitS3(ctx context.Context) error {
	if ps.s3Client != nil {
		return nil
	}
	cfg := config.Get().S3

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("load s3 config: %w", err)
	}

	ps.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	ps.uploader = manager.NewUploader(ps.s3Client)
	return nil
}

// SaveImage streams an uploaded file into the bucket and returns its public
// URL. The object key is a nanosecond timestamp plus the original extension.
func (ps *PhotoStore) SaveImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := ps.InitS3(ctx); err != nil {
		return "", err
	}
	if ps.Bucket == "" {
		return "", fmt.Errorf("s3 bucket not configured")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := ps.objectKey(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = ps.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	return ps.BaseURL + "/" + key, nil
}

func (ps *PhotoStore) objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	unique := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	key := path.Join(strings.Trim(ps.Prefix, "/"), unique)
	return strings.TrimLeft(key, "/")
}
