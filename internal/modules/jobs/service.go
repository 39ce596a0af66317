package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"doctrans/internal/modules/files"
	"doctrans/internal/modules/history"
	"doctrans/internal/storage"
	"doctrans/internal/translator"
)

// CredentialTTL bounds the delegated storage credentials handed to the
// batch API. Jobs normally finish in well under two hours.
const CredentialTTL = 2 * time.Hour

// Service coordinates asynchronous batch document translations: it stages
// the source document, submits the batch job and reconciles the external
// job state into the simplified processing/completed/failed view clients
// poll for.
type Service struct {
	store               JobStore
	batch               BatchAPI
	blobs               storage.ObjectStore
	records             HistoryRecorder
	sourceContainer     string
	translatedContainer string
}

func NewService(
	store JobStore,
	batch BatchAPI,
	blobs storage.ObjectStore,
	records HistoryRecorder,
	sourceContainer, translatedContainer string,
) *Service {
	return &Service{
		store:               store,
		batch:               batch,
		blobs:               blobs,
		records:             records,
		sourceContainer:     sourceContainer,
		translatedContainer: translatedContainer,
	}
}

// StatusView is the polling contract exposed to clients.
type StatusView struct {
	Status             string `json:"status"`
	Progress           int    `json:"progress"`
	TranslatedFileName string `json:"translatedFileName,omitempty"`
	Error              string `json:"error,omitempty"`
}

// Submit stages the source document into a per-job input container,
// issues time-boxed delegated credentials for the staging locations and
// submits the batch translation. The batch API operates over whole
// containers with a filename filter, so each job gets its own staging pair
// — one file per job, no cross-job contamination.
//
// Either a job is registered or none is: any submission failure propagates
// without a partial record.
func (s *Service) Submit(ctx context.Context, sourceFileKey, targetLanguage string) (*TranslationJob, error) {
	if sourceFileKey == "" || targetLanguage == "" {
		return nil, ErrValidation
	}

	data, err := s.blobs.Get(ctx, s.sourceContainer, sourceFileKey)
	if errors.Is(err, storage.ErrBlobNotFound) {
		return nil, ErrSourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	tag := strings.Split(uuid.New().String(), "-")[0]
	inputContainer := "job-" + tag + "-in"
	outputContainer := "job-" + tag + "-out"

	if err := s.blobs.Put(ctx, inputContainer, sourceFileKey, data, "application/octet-stream"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	sourceURL, err := s.blobs.SignedURL(ctx, inputContainer, sourceFileKey,
		storage.Permissions{Read: true}, CredentialTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	targetURL, err := s.blobs.SignedURL(ctx, outputContainer, targetLanguage+"/"+sourceFileKey,
		storage.Permissions{Write: true}, CredentialTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	jobID, err := s.batch.SubmitBatch(ctx, translator.BatchRequest{
		Source:  translator.BatchSource{URL: sourceURL, Filter: sourceFileKey},
		Targets: []translator.BatchTarget{{URL: targetURL, Language: targetLanguage}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	job := &TranslationJob{
		ID:              jobID,
		SourceFileKey:   sourceFileKey,
		DisplayName:     files.DisplayName(sourceFileKey),
		TargetLanguage:  targetLanguage,
		Status:          StatusNotStarted,
		CreatedAt:       time.Now(),
		InputContainer:  inputContainer,
		OutputContainer: outputContainer,
	}
	if err := s.store.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to register job: %w", err)
	}
	return job, nil
}

// PollStatus queries the external job state, updates the stored job and
// maps the result onto the simplified client view. The poll mutates the
// job on purpose: it keeps the cached state warm so callers never have to
// re-derive progress.
func (s *Service) PollStatus(ctx context.Context, jobID string) (*StatusView, error) {
	job, err := s.store.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	st, err := s.batch.GetStatus(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	job.Status = Status(st.Status)
	job.LastCheckedAt = time.Now()

	var view *StatusView
	switch job.Status {
	case StatusSucceeded:
		if job.ResolvedArtifactKey == "" {
			// One-time resolution; the key is cached so repeated polls on a
			// terminal job never re-scan.
			key := s.resolveArtifact(ctx, job)
			if key != "" {
				job.ResolvedArtifactKey = key
				s.publishArtifact(ctx, job)
			}
		}
		// A Succeeded job whose output cannot be located is a consistency
		// fault; report completion with no filename rather than blocking
		// the caller on a secondary lookup.
		view = &StatusView{Status: "completed", Progress: 100, TranslatedFileName: job.ResolvedArtifactKey}

	case StatusFailed, StatusValidationFailed:
		job.LastError = st.Error
		view = &StatusView{Status: "failed", Error: st.Error}

	default: // NotStarted, Running, Cancelling
		view = &StatusView{Status: "processing", Progress: processingProgress(st)}
	}

	if err := s.store.Save(ctx, job); err != nil {
		log.Printf("jobs: failed to update job %s: %v", jobID, err)
	}
	return view, nil
}

// processingProgress derives a monotonic percentage from the count of
// documents completed so far, capped below 100: a still-polling client
// must never read 100%.
func processingProgress(st *translator.BatchStatus) int {
	if st.DocumentsTotal <= 0 {
		return 0
	}
	p := st.DocumentsSucceeded * 100 / st.DocumentsTotal
	if p > 99 {
		p = 99
	}
	return p
}

// resolveArtifact scans the job's output staging container for a blob
// whose path carries the target language segment.
func (s *Service) resolveArtifact(ctx context.Context, job *TranslationJob) string {
	blobs, err := s.blobs.List(ctx, job.OutputContainer)
	if err != nil {
		log.Printf("jobs: failed to scan output for job %s: %v", job.ID, err)
		return ""
	}

	prefix := job.TargetLanguage + "/"
	fallback := ""
	for _, b := range blobs {
		if !strings.HasPrefix(b.Key, prefix) {
			continue
		}
		if strings.TrimPrefix(b.Key, prefix) == job.SourceFileKey {
			return b.Key
		}
		if fallback == "" {
			fallback = b.Key
		}
	}
	return fallback
}

// publishArtifact copies the resolved output into the shared translated
// container (where listing picks it up as a path-scheme artifact) and
// writes a history record. Both are secondary to the completed job:
// failures are logged and swallowed.
func (s *Service) publishArtifact(ctx context.Context, job *TranslationJob) {
	data, err := s.blobs.Get(ctx, job.OutputContainer, job.ResolvedArtifactKey)
	if err != nil {
		log.Printf("jobs: failed to read output %s for job %s: %v", job.ResolvedArtifactKey, job.ID, err)
		return
	}
	if err := s.blobs.Put(ctx, s.translatedContainer, job.ResolvedArtifactKey, data, "application/octet-stream"); err != nil {
		log.Printf("jobs: failed to publish artifact %s for job %s: %v", job.ResolvedArtifactKey, job.ID, err)
	}

	if s.records == nil {
		return
	}
	rec := &history.Record{
		ID:                 "trans_" + uuid.New().String(),
		Type:               history.TypeFile,
		SourceLanguage:     "auto",
		TargetLanguage:     job.TargetLanguage,
		Timestamp:          time.Now(),
		OriginalFileName:   job.DisplayName,
		TranslatedFileName: job.ResolvedArtifactKey,
		TranslatedSize:     int64(len(data)),
		FileType:           "document",
	}
	if err := s.records.Create(ctx, rec); err != nil {
		log.Printf("jobs: failed to save history record for job %s: %v", job.ID, err)
	}
}
