package translation

import (
	"context"

	"doctrans/internal/modules/history"
	"doctrans/internal/modules/jobs"
	"doctrans/internal/translator"
)

// TextTranslator is the synchronous translation API.
type TextTranslator interface {
	Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (*translator.Result, error)
	TranslateLong(ctx context.Context, text, targetLanguage string, chunkSize int) (string, error)
}

// AsyncSubmitter starts batch document translation jobs for the
// formatting-preserving path.
type AsyncSubmitter interface {
	Submit(ctx context.Context, sourceFileKey, targetLanguage string) (*jobs.TranslationJob, error)
}

// TextExtractor extracts plain text from an uploaded document.
type TextExtractor interface {
	Extract(fileName string, data []byte) (string, error)
}

// HistoryRecorder persists completed-translation records, best effort.
type HistoryRecorder interface {
	Create(ctx context.Context, r *history.Record) error
}
