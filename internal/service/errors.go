package service

import "errors"

// ErrValidation marks user-input failures caught before any network call.
// Screens surface these as blocking alerts; the request is never attempted.
var ErrValidation = errors.New("validation failed")
