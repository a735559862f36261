package models

import "errors"

var (
	ErrNotFound        = errors.New("requested item not found")
	ErrBadRequest      = errors.New("bad request")
	ErrValidation      = errors.New("validation failed")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidState    = errors.New("invalid state transition")
	ErrSubmission      = errors.New("submission failed")
	ErrContent         = errors.New("invalid site content")
)
