package task

import "errors"

var (
	ErrTitleRequired = errors.New("task title required")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrNotFound      = errors.New("task not found")
)
