package repository

import "errors"

var (
	ErrNotFound       = errors.New("office transaction not found")
	ErrOfficeNotFound = errors.New("office not found")
)
