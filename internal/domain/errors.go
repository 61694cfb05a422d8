package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrNegativeDuration = errors.New("interval duration is negative")
	ErrInvalidStage     = errors.New("unknown sleep stage")
	ErrInvalidSensor    = errors.New("unknown sensor kind")
	ErrInvalidInput     = errors.New("invalid input")
)
