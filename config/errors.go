package config

import "errors"

// Sentinel errors for Settings validation and loading.
var (
	// ErrInvalidSettings indicates a Settings value failed Validate.
	ErrInvalidSettings = errors.New("config: invalid settings")

	// ErrLoadFailed indicates Load could not read or decode the given file.
	ErrLoadFailed = errors.New("config: failed to load settings")
)
