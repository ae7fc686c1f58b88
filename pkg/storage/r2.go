package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PresignTTL bounds how long issued upload/download URLs stay valid.
const PresignTTL = 5 * time.Minute

// PresignedUpload is an issued upload slot: the client PUTs the file to URL
// and the API records StorageKey against the upload row.
type PresignedUpload struct {
	URL        string `json:"presigned_url"`
	StorageKey string `json:"storage_key"`
}

// R2Storage signs and deletes objects in a Cloudflare R2 bucket through the
// S3 API.
type R2Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

func NewR2Storage(client *s3.Client, bucket string) *R2Storage {
	return &R2Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}
}

// PresignUpload issues a PUT URL for a customer CSV upload. The object key is
// namespaced by firm so tenant files never share a prefix:
// uploads/{ca_code}/{customer_id}/{fy}/{month}/{uuid}_{file_name}
func (s *R2Storage) PresignUpload(ctx context.Context, caCode, customerID, financialYear, month, fileName string) (*PresignedUpload, error) {
	storageKey := fmt.Sprintf("uploads/%s/%s/%s/%s/%s_%s",
		caCode, customerID, financialYear, month, uuid.NewString(), fileName)

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(storageKey),
		ContentType: aws.String("text/csv"),
	}, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload signature: %w", err)
	}

	return &PresignedUpload{
		URL:        req.URL,
		StorageKey: storageKey,
	}, nil
}

// PresignDownload issues a GET URL for an existing object.
func (s *R2Storage) PresignDownload(ctx context.Context, storageKey string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	}, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return "", fmt.Errorf("failed to generate download signature: %w", err)
	}
	return req.URL, nil
}

// Delete removes an object. Deleting a missing key is not an error in S3/R2.
func (s *R2Storage) Delete(ctx context.Context, storageKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", storageKey, err)
	}
	return nil
}
