package common

import "time"

const (
	// MaxRequestBody limits JSON request bodies for review and coach endpoints.
	MaxRequestBody = 1 << 20
	// DefaultPageLimit is the page size when the client does not send one.
	DefaultPageLimit = 20
	// MaxPageLimit caps client supplied page sizes.
	MaxPageLimit = 100
	// RequestTimeout bounds a single handler's work.
	RequestTimeout = 5 * time.Second
)
