package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrTeamNotRegistered = errors.New("team is not registered")
)
