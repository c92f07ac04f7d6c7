package service

import (
	"errors"

	"github.com/mmerino90/wellness-tracker/internal/store"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidWindow       = errors.New("window must span at least one day")
	ErrHashingPassword     = errors.New("error hashing password")
)

// ErrNoMoodData is returned by mood aggregates over an empty window.
var ErrNoMoodData = store.ErrNoMoodData
