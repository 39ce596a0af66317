package files

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doctrans/internal/storage"
)

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Put(ctx context.Context, container, key string, data []byte, contentType string) error {
	args := m.Called(ctx, container, key, data, contentType)
	return args.Error(0)
}

func (m *mockObjectStore) Get(ctx context.Context, container, key string) ([]byte, error) {
	args := m.Called(ctx, container, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockObjectStore) List(ctx context.Context, container string) ([]storage.BlobInfo, error) {
	args := m.Called(ctx, container)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.BlobInfo), args.Error(1)
}

func (m *mockObjectStore) Delete(ctx context.Context, container, key string) error {
	args := m.Called(ctx, container, key)
	return args.Error(0)
}

func (m *mockObjectStore) SignedURL(ctx context.Context, container, key string, perms storage.Permissions, ttl time.Duration) (string, error) {
	args := m.Called(ctx, container, key, perms, ttl)
	return args.String(0), args.Error(1)
}

func TestUpload_KeyCarriesTimestampPrefix(t *testing.T) {
	store := new(mockObjectStore)
	svc := NewService(store, "source-files", "translated-files")

	var storedKey string
	store.On("Put", mock.Anything, "source-files", mock.AnythingOfType("string"),
		[]byte("hello"), "text/plain").
		Run(func(args mock.Arguments) { storedKey = args.String(2) }).
		Return(nil)

	f, err := svc.Upload(context.Background(), "report.docx", []byte("hello"), "text/plain")

	require.NoError(t, err)
	assert.Equal(t, storedKey, f.StorageKey)
	assert.True(t, strings.HasSuffix(storedKey, "_report.docx"), "key %q", storedKey)
	assert.Equal(t, "report.docx", f.DisplayName)
	assert.Equal(t, int64(5), f.Size)
	store.AssertExpectations(t)
}

func TestUpload_Validation(t *testing.T) {
	store := new(mockObjectStore)
	svc := NewService(store, "source-files", "translated-files")

	_, err := svc.Upload(context.Background(), "", []byte("x"), "text/plain")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Upload(context.Background(), "a.txt", nil, "text/plain")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = svc.Upload(context.Background(), "a.txt", make([]byte, MaxFileSize+1), "text/plain")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	store.AssertNotCalled(t, "Put")
}

func TestDownload_UnknownContainerRejected(t *testing.T) {
	store := new(mockObjectStore)
	svc := NewService(store, "source-files", "translated-files")

	_, err := svc.Download(context.Background(), "secrets", "key")
	assert.ErrorIs(t, err, ErrUnknownContainer)
	store.AssertNotCalled(t, "Get")
}

func TestDownload_NotFound(t *testing.T) {
	store := new(mockObjectStore)
	svc := NewService(store, "source-files", "translated-files")

	store.On("Get", mock.Anything, "source-files", "missing").
		Return(nil, storage.ErrBlobNotFound)

	_, err := svc.Download(context.Background(), "source-files", "missing")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDelete_CascadesToMatchingTranslations(t *testing.T) {
	store := new(mockObjectStore)
	svc := NewService(store, "source-files", "translated-files")

	store.On("Delete", mock.Anything, "source-files", "100_report.docx").Return(nil)
	store.On("List", mock.Anything, "translated-files").Return([]storage.BlobInfo{
		{Key: "300_translated_de_report.txt"},
		{Key: "de/100_report.docx"},
		{Key: "300_translated_de_other.txt"},
		{Key: "de/999_other.docx"},
	}, nil)
	store.On("Delete", mock.Anything, "translated-files", "300_translated_de_report.txt").Return(nil)
	store.On("Delete", mock.Anything, "translated-files", "de/100_report.docx").Return(nil)

	err := svc.Delete(context.Background(), "100_report.docx")

	require.NoError(t, err)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Delete", mock.Anything, "translated-files", "300_translated_de_other.txt")
	store.AssertNotCalled(t, "Delete", mock.Anything, "translated-files", "de/999_other.docx")
}

func TestDelete_SourceNotFound(t *testing.T) {
	store := new(mockObjectStore)
	svc := NewService(store, "source-files", "translated-files")

	store.On("Delete", mock.Anything, "source-files", "missing").
		Return(storage.ErrBlobNotFound)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrFileNotFound)
	store.AssertNotCalled(t, "List")
}

func TestDelete_ListFailureIsNotFatal(t *testing.T) {
	store := new(mockObjectStore)
	svc := NewService(store, "source-files", "translated-files")

	store.On("Delete", mock.Anything, "source-files", "100_report.docx").Return(nil)
	store.On("List", mock.Anything, "translated-files").
		Return(nil, assert.AnError)

	err := svc.Delete(context.Background(), "100_report.docx")
	assert.NoError(t, err)
}
