// Package s3 implements the object store port on any S3-compatible backend
// (MinIO, AWS S3) via the MinIO client.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"doctrans/internal/storage"
)

type Store struct {
	client *minio.Client
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return &Store{client: client}, nil
}

func (s *Store) Put(ctx context.Context, container, key string, data []byte, contentType string) error {
	if err := s.ensureBucket(ctx, container); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, container, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to put blob %s/%s: %w", container, key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, container, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, container, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get blob %s/%s: %w", container, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, storage.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s/%s: %w", container, key, err)
	}
	return data, nil
}

func (s *Store) List(ctx context.Context, container string) ([]storage.BlobInfo, error) {
	exists, err := s.client.BucketExists(ctx, container)
	if err != nil {
		return nil, fmt.Errorf("failed to check container %s: %w", container, err)
	}
	if !exists {
		return []storage.BlobInfo{}, nil
	}

	blobs := []storage.BlobInfo{}
	for obj := range s.client.ListObjects(ctx, container, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list container %s: %w", container, obj.Err)
		}
		blobs = append(blobs, storage.BlobInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return blobs, nil
}

func (s *Store) Delete(ctx context.Context, container, key string) error {
	err := s.client.RemoveObject(ctx, container, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete blob %s/%s: %w", container, key, err)
	}
	return nil
}

// SignedURL presigns a GET or PUT for a single object. The Azure-style
// container-wide SAS narrows to per-object URLs on S3; the batch collaborator
// receives one URL for its input document and one for its output slot.
func (s *Store) SignedURL(ctx context.Context, container, key string, perms storage.Permissions, ttl time.Duration) (string, error) {
	if perms.Write {
		if err := s.ensureBucket(ctx, container); err != nil {
			return "", err
		}
		u, err := s.client.PresignedPutObject(ctx, container, key, ttl)
		if err != nil {
			return "", fmt.Errorf("failed to presign put %s/%s: %w", container, key, err)
		}
		return u.String(), nil
	}
	u, err := s.client.PresignedGetObject(ctx, container, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign get %s/%s: %w", container, key, err)
	}
	return u.String(), nil
}

func (s *Store) ensureBucket(ctx context.Context, container string) error {
	exists, err := s.client.BucketExists(ctx, container)
	if err != nil {
		return fmt.Errorf("failed to check container %s: %w", container, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, container, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create container %s: %w", container, err)
		}
	}
	return nil
}
