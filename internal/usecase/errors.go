package usecase

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrUnknownEdit          = errors.New("unknown edit")
	ErrNotFound             = errors.New("not found")
	ErrPersonalNotRemovable = errors.New("personal details cannot be removed")
	ErrInvalidEdit          = errors.New("invalid edit")
)
