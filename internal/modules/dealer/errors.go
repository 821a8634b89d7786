package dealer

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid dealer credentials")
	ErrValidation         = errors.New("validation error")
)
