package translation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"doctrans/internal/extract"
	"doctrans/internal/modules/files"
	"doctrans/internal/modules/history"
	"doctrans/internal/storage"
	"doctrans/internal/translator"
)

// Service handles the synchronous translation paths: short text, uploaded
// files and already-stored files. Formatting-preserving document
// translation is delegated to the async job coordinator.
type Service struct {
	texts               TextTranslator
	async               AsyncSubmitter
	extractor           TextExtractor
	blobs               storage.ObjectStore
	records             HistoryRecorder
	sourceContainer     string
	translatedContainer string
}

func NewService(
	texts TextTranslator,
	async AsyncSubmitter,
	extractor TextExtractor,
	blobs storage.ObjectStore,
	records HistoryRecorder,
	sourceContainer, translatedContainer string,
) *Service {
	return &Service{
		texts:               texts,
		async:               async,
		extractor:           extractor,
		blobs:               blobs,
		records:             records,
		sourceContainer:     sourceContainer,
		translatedContainer: translatedContainer,
	}
}

// TranslateText performs one synchronous text translation and records it
// in the history, best effort.
func (s *Service) TranslateText(ctx context.Context, req TranslateTextRequest) (*TranslateTextResponse, error) {
	if req.Text == "" || req.TargetLanguage == "" {
		return nil, ErrValidation
	}

	res, err := s.texts.Translate(ctx, req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("trans_%d", time.Now().UnixMilli())
	s.record(ctx, &history.Record{
		ID:             id,
		Type:           history.TypeText,
		SourceLanguage: sourceOrAuto(req.SourceLanguage),
		TargetLanguage: req.TargetLanguage,
		Timestamp:      time.Now(),
		OriginalText:   req.Text,
		TranslatedText: res.TranslatedText,
		Confidence:     confidence(res),
	})

	return &TranslateTextResponse{
		TranslatedText:   res.TranslatedText,
		TranslationID:    id,
		DetectedLanguage: res.DetectedLanguage,
	}, nil
}

// TranslateFile extracts text from an uploaded document, translates it in
// chunks and returns the result as a plain-text file. The translated
// artifact is also stored for the file library, best effort.
func (s *Service) TranslateFile(ctx context.Context, fileName string, data []byte, targetLanguage string) (*FileResult, error) {
	if fileName == "" || targetLanguage == "" {
		return nil, ErrValidation
	}

	text, err := s.extractor.Extract(fileName, data)
	if err != nil {
		return nil, err
	}

	translated, err := s.texts.TranslateLong(ctx, text, targetLanguage, translator.DefaultChunkSize)
	if err != nil {
		return nil, err
	}

	artifactKey := flatArtifactKey(targetLanguage, fileName)
	content := []byte(translated)
	if err := s.blobs.Put(ctx, s.translatedContainer, artifactKey, content, "text/plain; charset=utf-8"); err != nil {
		log.Printf("translation: failed to store translated file %s: %v", artifactKey, err)
	}

	s.record(ctx, &history.Record{
		ID:                 "trans_" + uuid.New().String(),
		Type:               history.TypeFile,
		SourceLanguage:     "auto",
		TargetLanguage:     targetLanguage,
		Timestamp:          time.Now(),
		OriginalFileName:   fileName,
		TranslatedFileName: artifactKey,
		OriginalSize:       int64(len(data)),
		TranslatedSize:     int64(len(content)),
		FileType:           "text",
	})

	return &FileResult{TranslatedFileName: artifactKey, Content: content}, nil
}

// TranslateExistingFile translates a file already in the source container.
// With formatting preservation requested on a capable format it submits an
// asynchronous batch job; otherwise it extracts, translates and stores a
// plain-text artifact immediately.
func (s *Service) TranslateExistingFile(ctx context.Context, req TranslateExistingFileRequest) (*ExistingFileResult, error) {
	if req.FileName == "" || req.TargetLanguage == "" {
		return nil, ErrValidation
	}

	displayName := files.DisplayName(req.FileName)
	if req.PreserveFormatting && extract.SupportsFormatting(displayName) {
		job, err := s.async.Submit(ctx, req.FileName, req.TargetLanguage)
		if err != nil {
			return nil, err
		}
		return &ExistingFileResult{Async: true, JobID: job.ID}, nil
	}

	data, err := s.blobs.Get(ctx, s.sourceContainer, req.FileName)
	if errors.Is(err, storage.ErrBlobNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrValidation, "file not found")
	}
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.Extract(displayName, data)
	if err != nil {
		return nil, err
	}

	translated, err := s.texts.TranslateLong(ctx, text, req.TargetLanguage, translator.DefaultChunkSize)
	if err != nil {
		return nil, err
	}

	artifactKey := flatArtifactKey(req.TargetLanguage, displayName)
	content := []byte(translated)
	if err := s.blobs.Put(ctx, s.translatedContainer, artifactKey, content, "text/plain; charset=utf-8"); err != nil {
		return nil, fmt.Errorf("failed to store translated file: %w", err)
	}

	s.record(ctx, &history.Record{
		ID:                 "trans_" + uuid.New().String(),
		Type:               history.TypeFile,
		SourceLanguage:     "auto",
		TargetLanguage:     req.TargetLanguage,
		Timestamp:          time.Now(),
		OriginalFileName:   displayName,
		TranslatedFileName: artifactKey,
		OriginalSize:       int64(len(data)),
		TranslatedSize:     int64(len(content)),
		FileType:           "text",
	})

	return &ExistingFileResult{Async: false, TranslatedFileName: artifactKey}, nil
}

// flatArtifactKey builds the flat-scheme storage key for a plain-text
// translation: <epochMillis>_translated_<lang>_<base>.txt.
func flatArtifactKey(language, displayName string) string {
	base := strings.TrimSuffix(displayName, path.Ext(displayName))
	return fmt.Sprintf("%d_translated_%s_%s.txt", time.Now().UnixMilli(), language, base)
}

func (s *Service) record(ctx context.Context, rec *history.Record) {
	if s.records == nil {
		return
	}
	if err := s.records.Create(ctx, rec); err != nil {
		// Best-effort side record: the translation already succeeded.
		log.Printf("translation: failed to save history record: %v", err)
	}
}

func sourceOrAuto(lang string) string {
	if lang == "" {
		return "auto"
	}
	return lang
}

func confidence(res *translator.Result) *float64 {
	if res.DetectedLanguage == "" {
		return nil
	}
	c := res.Confidence
	return &c
}
