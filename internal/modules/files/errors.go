package files

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrFileNotFound     = errors.New("file not found")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile        = errors.New("file is empty")
	ErrUnknownContainer = errors.New("unknown container")
)
