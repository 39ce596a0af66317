package translation

import "errors"

var ErrValidation = errors.New("validation error")
