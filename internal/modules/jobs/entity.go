package jobs

import "time"

// Status mirrors the external batch API's job lifecycle. Cancelling is
// observed, never initiated; callers treat it like Running.
type Status string

const (
	StatusNotStarted       Status = "NotStarted"
	StatusRunning          Status = "Running"
	StatusSucceeded        Status = "Succeeded"
	StatusFailed           Status = "Failed"
	StatusValidationFailed Status = "ValidationFailed"
	StatusCancelling       Status = "Cancelling"
)

// TranslationJob is one asynchronous batch document translation. Jobs live
// in the coordinator's store for the lifetime of the process and are
// mutated only by status polling.
type TranslationJob struct {
	ID              string    `json:"jobId"`
	SourceFileKey   string    `json:"sourceFileKey"`
	DisplayName     string    `json:"displayName"`
	TargetLanguage  string    `json:"targetLanguage"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	LastCheckedAt   time.Time `json:"lastCheckedAt"`
	InputContainer  string    `json:"-"`
	OutputContainer string    `json:"-"`
	// ResolvedArtifactKey is the translated blob once located after a
	// Succeeded status. Empty until resolved; cached afterwards.
	ResolvedArtifactKey string `json:"translatedFileName,omitempty"`
	// LastError carries the external API's error detail verbatim for
	// terminal failures.
	LastError string `json:"error,omitempty"`
}
