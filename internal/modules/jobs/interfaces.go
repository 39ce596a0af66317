package jobs

import (
	"context"

	"doctrans/internal/modules/history"
	"doctrans/internal/translator"
)

// BatchAPI is the external asynchronous batch document translation service.
type BatchAPI interface {
	SubmitBatch(ctx context.Context, req translator.BatchRequest) (string, error)
	GetStatus(ctx context.Context, jobID string) (*translator.BatchStatus, error)
}

// HistoryRecorder persists completed-translation records. Writes are best
// effort; the coordinator never fails a poll over a history error.
type HistoryRecorder interface {
	Create(ctx context.Context, r *history.Record) error
}
