package history

import "time"

const (
	TypeText = "text"
	TypeFile = "file"
)

// Record is one completed translation, text or file. Records are append
// only; the history view reads the most recent 100.
type Record struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	Type           string    `gorm:"column:type" json:"type"`
	SourceLanguage string    `gorm:"column:source_language" json:"sourceLanguage"`
	TargetLanguage string    `gorm:"column:target_language" json:"targetLanguage"`
	Timestamp      time.Time `gorm:"column:timestamp;index" json:"timestamp"`

	// Text translations.
	OriginalText   string   `gorm:"column:original_text" json:"originalText,omitempty"`
	TranslatedText string   `gorm:"column:translated_text" json:"translatedText,omitempty"`
	Confidence     *float64 `gorm:"column:confidence" json:"confidence,omitempty"`

	// File translations.
	OriginalFileName   string `gorm:"column:original_file_name" json:"originalFileName,omitempty"`
	TranslatedFileName string `gorm:"column:translated_file_name" json:"translatedFileName,omitempty"`
	OriginalSize       int64  `gorm:"column:original_size" json:"originalSize,omitempty"`
	TranslatedSize     int64  `gorm:"column:translated_size" json:"translatedSize,omitempty"`
	FileType           string `gorm:"column:file_type" json:"fileType,omitempty"`
}

func (Record) TableName() string { return "translations" }
