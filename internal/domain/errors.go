package domain

import "errors"

var (
	ErrNotFound             = errors.New("entity not found")
	ErrMissingSubjectPlayer = errors.New("subject player (participant 1) not found in snapshot")
	ErrNoSnapshot           = errors.New("no game snapshot available")
	ErrSnapshotOutOfRange   = errors.New("snapshot index out of range")
)
