package main

import "errors"

// Every failure the rule components can produce maps to one of these
// sentinel errors so callers can match with errors.Is. Wrapped messages
// carry the offending name or id.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuotaExceeded    = errors.New("weekly quota would be exceeded")
	ErrInvalidDuration  = errors.New("duration must be a non-zero multiple of 15 minutes")
	ErrTagLimitExceeded = errors.New("maximum of 7 tags allowed")
	ErrDuplicateName    = errors.New("name already exists")
	ErrAmbiguousID      = errors.New("id prefix matches more than one session")
	ErrStorage          = errors.New("storage error")
)
