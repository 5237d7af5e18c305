package photostore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignedUploadRequest asks for a direct-upload URL.
type PresignedUploadRequest struct {
	Filename    string
	ContentType string
	ExpiresIn   int64 // seconds, defaults to 15 minutes
}

// PresignedUploadResponse is everything the browser needs to PUT the file
// itself.
type PresignedUploadResponse struct {
	UploadURL string            `json:"uploadUrl"`
	FileKey   string            `json:"fileKey"`
	FileURL   string            `json:"fileUrl"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
}

// GeneratePresignedUploadURL issues a presigned PUT so the browser can
// upload a photo without routing the bytes through the API server.
func (ps *PhotoStore) GeneratePresignedUploadURL(ctx context.Context, req PresignedUploadRequest) (*PresignedUploadResponse, error) {
	if err := ps.InitS3(ctx); err != nil {
		return nil, err
	}

	if ps.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket not configured")
	}
	if req.Filename == "" {
		return nil, fmt.Errorf("filename required")
	}

	if req.ExpiresIn <= 0 {
		req.ExpiresIn = 900
	}

	key := ps.objectKey(req.Filename)

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presignClient := s3.NewPresignClient(ps.s3Client)

	presignedReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(req.ExpiresIn) * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("presign photo upload: %w", err)
	}

	return &PresignedUploadResponse{
		UploadURL: presignedReq.URL,
		FileKey:   key,
		FileURL:   ps.BaseURL + "/" + key,
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		Method:    presignedReq.Method,
		Headers:   map[string]string{"Content-Type": contentType},
	}, nil
}
