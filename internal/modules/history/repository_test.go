package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctrans/internal/database"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))
	return NewRepository(db)
}

func TestCreateAndRecent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &Record{
			ID:             fmt.Sprintf("trans_%d", i),
			Type:           TypeText,
			SourceLanguage: "auto",
			TargetLanguage: "de",
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
			OriginalText:   "hello",
			TranslatedText: "hallo",
		}))
	}

	records, err := repo.Recent(ctx, RecentLimit)
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Newest first.
	assert.Equal(t, "trans_2", records[0].ID)
	assert.Equal(t, "trans_0", records[2].ID)
}

func TestRecent_LimitApplied(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &Record{
			ID:        fmt.Sprintf("trans_%d", i),
			Type:      TypeText,
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Out-of-range limits fall back to the default cap.
	records, err = repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestRecent_Empty(t *testing.T) {
	repo := newTestRepo(t)

	records, err := repo.Recent(context.Background(), RecentLimit)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreate_FileRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	conf := 0.92
	require.NoError(t, repo.Create(ctx, &Record{
		ID:                 "trans_file",
		Type:               TypeFile,
		SourceLanguage:     "auto",
		TargetLanguage:     "fr",
		Timestamp:          time.Now(),
		OriginalFileName:   "report.docx",
		TranslatedFileName: "fr/100_report.docx",
		OriginalSize:       2048,
		TranslatedSize:     2100,
		FileType:           "document",
		Confidence:         &conf,
	}))

	records, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, TypeFile, records[0].Type)
	assert.Equal(t, "fr/100_report.docx", records[0].TranslatedFileName)
	require.NotNil(t, records[0].Confidence)
	assert.InDelta(t, 0.92, *records[0].Confidence, 1e-9)
}
