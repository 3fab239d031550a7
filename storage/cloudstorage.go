package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/gigfit/backend/config"
)

// CloudStorageClient wraps Google Cloud Storage operations for the archive
// of generated proposals and raw posting snapshots
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.ArchiveBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// ArchiveProposal stores a generated (already sanitized) proposal
func (c *CloudStorageClient) ArchiveProposal(ctx context.Context, userEmail, jobID string, content []byte) (string, error) {
	objectName := fmt.Sprintf("proposals/%s/%s-%d.txt", sanitizeEmail(userEmail), jobID, time.Now().Unix())
	return c.write(ctx, objectName, content)
}

// ArchiveRawPosting stores the original pasted posting text for a saved job
func (c *CloudStorageClient) ArchiveRawPosting(ctx context.Context, userEmail, jobID string, content []byte) (string, error) {
	objectName := fmt.Sprintf("postings/%s/%s.txt", sanitizeEmail(userEmail), jobID)
	return c.write(ctx, objectName, content)
}

func (c *CloudStorageClient) write(ctx context.Context, objectName string, content []byte) (string, error) {
	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = "text/plain; charset=utf-8"

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
	return url, nil
}

// Download retrieves an archived object's content by its public URL
func (c *CloudStorageClient) Download(ctx context.Context, archiveURL string) ([]byte, error) {
	objectName, err := c.objectName(archiveURL)
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive object: %w", err)
	}

	return data, nil
}

// Delete removes an archived object by its public URL
func (c *CloudStorageClient) Delete(ctx context.Context, archiveURL string) error {
	objectName, err := c.objectName(archiveURL)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete archive object: %w", err)
	}
	return nil
}

// GetSignedURL generates a signed URL for temporary access to an archived
// object identified by its public URL
func (c *CloudStorageClient) GetSignedURL(ctx context.Context, archiveURL string, expiration time.Duration) (string, error) {
	objectName, err := c.objectName(archiveURL)
	if err != nil {
		return "", err
	}

	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}

	return url, nil
}

func (c *CloudStorageClient) objectName(archiveURL string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(archiveURL, prefix) {
		return "", fmt.Errorf("invalid archive URL format")
	}
	return strings.TrimPrefix(archiveURL, prefix), nil
}

func sanitizeEmail(email string) string {
	s := strings.ReplaceAll(email, "@", "_at_")
	return strings.ReplaceAll(s, ".", "_")
}
