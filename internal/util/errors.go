package util

import "errors"

var (
	ErrIncompleteAnswers    = errors.New("answers are incomplete")
	ErrInvalidTransition    = errors.New("invalid wizard transition")
	ErrSessionNotFound      = errors.New("session not found")
	ErrGenerationInProgress = errors.New("calendar generation already in progress")
	ErrCalendarAborted      = errors.New("calendar generation aborted")
	ErrEmptyPrompt          = errors.New("prompt is required")
)
