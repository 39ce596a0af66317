package translation

type TranslateTextRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
	SourceLanguage string `json:"sourceLanguage"`
}

type TranslateTextResponse struct {
	TranslatedText   string `json:"translatedText"`
	TranslationID    string `json:"translationId"`
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
}

type TranslateExistingFileRequest struct {
	FileName           string `json:"fileName" validate:"required"`
	TargetLanguage     string `json:"targetLanguage" validate:"required,len=2"`
	PreserveFormatting bool   `json:"preserveFormatting"`
}

// ExistingFileResult is either an immediately completed translation or a
// handle to an asynchronous job the client should poll.
type ExistingFileResult struct {
	Async              bool   `json:"async"`
	JobID              string `json:"jobId,omitempty"`
	TranslatedFileName string `json:"translatedFileName,omitempty"`
}

// FileResult is a synchronously translated upload, returned as an
// attachment.
type FileResult struct {
	TranslatedFileName string
	Content            []byte
}
