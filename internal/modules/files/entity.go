package files

import "time"

// SourceFile is an uploaded document in the source container. The storage
// key carries an epoch-millisecond prefix so repeated uploads of the same
// name never collide.
type SourceFile struct {
	StorageKey  string    `json:"fileName"`
	DisplayName string    `json:"displayName"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadDate"`
}

// TranslatedArtifact is a translated derivative in the translated container.
type TranslatedArtifact struct {
	StorageKey string    `json:"fileName"`
	Language   string    `json:"language"`
	Size       int64     `json:"size"`
	ProducedAt time.Time `json:"producedAt"`
}

// FileGroup relates one source file to all of its translated derivatives.
// Groups are computed on every listing; they are never persisted.
type FileGroup struct {
	OriginalFile SourceFile           `json:"originalFile"`
	Translations []TranslatedArtifact `json:"translations"`
}
