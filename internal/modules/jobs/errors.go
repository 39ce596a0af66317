package jobs

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrJobNotFound     = errors.New("translation job not found")
	ErrSourceNotFound  = errors.New("source file not found")
	ErrExternalService = errors.New("external service error")
)
