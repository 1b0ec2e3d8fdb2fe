// Package apperr defines the error categories reported by slugpm commands.
package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrCreateFailed = errors.New("create failed")
	ErrMoveFailed   = errors.New("move failed")
	ErrAppendFailed = errors.New("append failed")
	ErrInvalidInput = errors.New("invalid input")
)
