package service

import "errors"

var (
	// ErrValidation marks malformed caller input. No partial report is
	// produced when it is returned.
	ErrValidation = errors.New("invalid scores")
	ErrNoScores   = errors.New("no scores")
)
