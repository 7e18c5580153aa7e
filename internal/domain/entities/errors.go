package entities

import "errors"

// Domain errors
var (
	ErrTranscriptNotFound  = errors.New("transcript not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDuplicateTranscript = errors.New("transcript already exists")
	ErrInvalidEmail        = errors.New("invalid email")
)
