package service

import "errors"

// Error kinds surfaced by the sync and scheduling workflows. Precondition
// failures are detected before any mutation; ErrSyncFailed wraps whatever
// broke after the cycle started.
var (
	ErrSourceNotConnected       = errors.New("wordpress blog is not connected")
	ErrDestinationNotConfigured = errors.New("facebook is not connected or has no page selected")
	ErrIncompleteSelection      = errors.New("a copy and an image must be selected")
	ErrSelectionNotFound        = errors.New("selected copy or image not found")
	ErrSyncFailed               = errors.New("sync cycle failed")
	ErrSyncInFlight             = errors.New("a sync cycle is already running")
	ErrGeneration               = errors.New("content generation failed")
	ErrArticleNotFound          = errors.New("article not found")
	ErrAPIKeyNotFound           = errors.New("api key not found")
	ErrAPIKeyLimit              = errors.New("api key limit reached")
)
