// Package extract turns uploaded documents into plain text for the
// synchronous translation path. Binary formats (docx, pdf) are handled by
// an external extraction collaborator behind the Extractor interface; this
// package ships the plain-text implementation and the format routing.
package extract

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrNoExtractableText  = errors.New("no extractable text")
	supportedExtensions   = map[string]bool{".txt": true, ".doc": true, ".docx": true, ".pdf": true}
	formattingCapableExts = map[string]bool{".doc": true, ".docx": true}
)

// Extractor extracts plain text from a named document.
type Extractor interface {
	Extract(fileName string, data []byte) (string, error)
}

// SupportsFormatting reports whether the batch document translation flow
// can preserve formatting for this file type.
func SupportsFormatting(fileName string) bool {
	return formattingCapableExts[strings.ToLower(filepath.Ext(fileName))]
}

// Service routes extraction by file extension. Plain text is handled
// inline; binary formats are delegated to the configured binary extractor,
// if any.
type Service struct {
	binary Extractor
}

// NewService builds an extraction service. binary may be nil, in which
// case only .txt files are extractable.
func NewService(binary Extractor) *Service {
	return &Service{binary: binary}
}

func (s *Service) Extract(fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !supportedExtensions[ext] {
		return "", ErrUnsupportedFormat
	}

	var (
		text string
		err  error
	)
	switch ext {
	case ".txt":
		if !utf8.Valid(data) {
			return "", ErrNoExtractableText
		}
		text = string(data)
	default:
		if s.binary == nil {
			return "", ErrUnsupportedFormat
		}
		text, err = s.binary.Extract(fileName, data)
		if err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoExtractableText
	}
	return text, nil
}
