package mastery

import "errors"

// Domain errors for the mastery tracker.
//
// Not-found kinds are recoverable by the caller (initialize, then retry).
// Validation kinds are the caller's fault and are never retried.
// ErrUpdateFailed and ErrInitializationFailed wrap persistence failures so
// callers are insulated from the storage technology; retry policy belongs
// to the storage implementation, never to this package.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrPathNotFound       = errors.New("learning path not found")
	ErrNoProgressData     = errors.New("no progress data for user")
	ErrNoMasteryData      = errors.New("no mastery data for content")
	ErrAlreadyInitialized = errors.New("user progress already initialized")

	ErrInvalidSessionResult = errors.New("invalid session result")

	ErrUpdateFailed         = errors.New("progress update failed")
	ErrInitializationFailed = errors.New("progress initialization failed")
)
