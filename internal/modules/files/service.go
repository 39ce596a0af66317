package files

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"doctrans/internal/storage"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

// Service owns the source and translated containers: upload, listing with
// grouping, download and delete.
type Service struct {
	store               storage.ObjectStore
	sourceContainer     string
	translatedContainer string
}

func NewService(store storage.ObjectStore, sourceContainer, translatedContainer string) *Service {
	return &Service{
		store:               store,
		sourceContainer:     sourceContainer,
		translatedContainer: translatedContainer,
	}
}

// Upload stores a document under a timestamped key and returns its metadata.
func (s *Service) Upload(ctx context.Context, originalName string, data []byte, contentType string) (*SourceFile, error) {
	if originalName == "" {
		return nil, ErrValidation
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	now := time.Now()
	key := fmt.Sprintf("%d_%s", now.UnixMilli(), originalName)
	if err := s.store.Put(ctx, s.sourceContainer, key, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &SourceFile{
		StorageKey:  key,
		DisplayName: originalName,
		Size:        int64(len(data)),
		UploadedAt:  now,
	}, nil
}

// ListGroups lists both containers and reconstructs the file groups.
func (s *Service) ListGroups(ctx context.Context) ([]FileGroup, error) {
	sourceBlobs, err := s.store.List(ctx, s.sourceContainer)
	if err != nil {
		return nil, fmt.Errorf("failed to list source files: %w", err)
	}
	translatedBlobs, err := s.store.List(ctx, s.translatedContainer)
	if err != nil {
		return nil, fmt.Errorf("failed to list translated files: %w", err)
	}

	sources := make([]SourceFile, 0, len(sourceBlobs))
	for _, b := range sourceBlobs {
		sources = append(sources, SourceFile{
			StorageKey:  b.Key,
			DisplayName: DisplayName(b.Key),
			Size:        b.Size,
			UploadedAt:  b.LastModified,
		})
	}

	translations := make([]TranslatedArtifact, 0, len(translatedBlobs))
	for _, b := range translatedBlobs {
		translations = append(translations, TranslatedArtifact{
			StorageKey: b.Key,
			Size:       b.Size,
			ProducedAt: b.LastModified,
		})
	}

	return GroupFiles(sources, translations), nil
}

// Download fetches a blob from one of the two known containers.
func (s *Service) Download(ctx context.Context, container, key string) ([]byte, error) {
	if container != s.sourceContainer && container != s.translatedContainer {
		return nil, ErrUnknownContainer
	}
	data, err := s.store.Get(ctx, container, key)
	if errors.Is(err, storage.ErrBlobNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	return data, nil
}

// Delete removes a source file and every translated artifact whose decoded
// origin matches it. The source delete is the primary operation; artifact
// deletes are best-effort.
func (s *Service) Delete(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return ErrValidation
	}
	err := s.store.Delete(ctx, s.sourceContainer, storageKey)
	if errors.Is(err, storage.ErrBlobNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	srcBase := baseName(DisplayName(storageKey))
	translatedBlobs, err := s.store.List(ctx, s.translatedContainer)
	if err != nil {
		log.Printf("delete: failed to list translations for %s: %v", storageKey, err)
		return nil
	}
	for _, b := range translatedBlobs {
		d := DecodeTranslationKey(b.Key)
		match := (d.Kind == KindFlatTranslation && d.OriginBase == srcBase) ||
			(d.Kind == KindPathTranslation && d.OriginKey == storageKey)
		if !match {
			continue
		}
		if err := s.store.Delete(ctx, s.translatedContainer, b.Key); err != nil {
			log.Printf("delete: failed to delete translation %s: %v", b.Key, err)
		}
	}
	return nil
}
