// Package storage persists attachment files in the object store. Keys
// are namespaced by resource type and parent record number so files are
// grouped with the record they belong to:
//
//	cases/<case_number>/<uuid>-<label>
//	prescriptions/<prescription_number>/<uuid>-<label>
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const (
	NamespaceCases         = "cases"
	NamespacePrescriptions = "prescriptions"
)

type AttachmentStore struct {
	client *minio.Client
	bucket string
}

func NewAttachmentStore(client *minio.Client, bucket string) *AttachmentStore {
	return &AttachmentStore{client: client, bucket: bucket}
}

// Upload stores the file and returns the object key it was written under
func (s *AttachmentStore) Upload(ctx context.Context, namespace, recordNumber, label string, file io.Reader, size int64, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s-%s", namespace, recordNumber, uuid.New().String(), sanitizeLabel(label))
	_, err := s.client.PutObject(ctx, s.bucket, key, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store attachment %s: %w", key, err)
	}
	return key, nil
}

// Remove deletes a stored attachment by its object key
func (s *AttachmentStore) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// sanitizeLabel keeps object keys flat and predictable
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	label = strings.ReplaceAll(label, "/", "-")
	label = strings.ReplaceAll(label, " ", "_")
	if label == "" {
		return "attachment"
	}
	return label
}
