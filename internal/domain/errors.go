package domain

import "errors"

var (
	ErrInvalidSession  = errors.New("invalid session")
	ErrSessionExists   = errors.New("session already exists")
	ErrSessionNotFound = errors.New("session not found")
)
