package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrInvalidUpload is returned for files whose extension is not an allowed
// image type.
var ErrInvalidUpload = errors.New("invalid upload: jpg, jpeg, png or gif only")

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// StoredName validates the extension of an uploaded filename and returns the
// random name the object is stored under, keeping only the extension from
// the original.
func StoredName(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrInvalidUpload
	}
	return strings.ReplaceAll(uuid.New().String(), "-", "") + ext, nil
}

// ContentType returns the MIME type for a stored object name.
func ContentType(name string) string {
	if ct, ok := allowedExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ImageStore keeps uploaded images in a MinIO bucket. The rest of the app
// only ever holds the stored object name.
type ImageStore struct {
	client *minio.Client
	bucket string
}

func NewImageStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &ImageStore{client: client, bucket: bucket}, nil
}

// Save validates the filename, stores the bytes under a fresh random name
// and returns that name.
func (s *ImageStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	name, err := StoredName(filename)
	if err != nil {
		return "", err
	}
	reader := bytes.NewReader(data)
	_, err = s.client.PutObject(ctx, s.bucket, name, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: ContentType(name),
	})
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return name, nil
}

// Open returns a reader over the stored object along with its content type.
func (s *ImageStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, "", err
	}
	return obj, ContentType(name), nil
}

// Remove deletes a stored object.
func (s *ImageStore) Remove(ctx context.Context, name string) error {
	return s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{})
}
