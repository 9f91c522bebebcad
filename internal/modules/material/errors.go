package material

import "errors"

var (
	ErrGroupRequired = errors.New("group id required")
	ErrURLRequired   = errors.New("material url required")
	ErrFileRequired  = errors.New("file required")
	ErrNotFound      = errors.New("material not found")
	ErrNotAFile      = errors.New("material is not a file")
	ErrFileMissing   = errors.New("stored file missing")
)
