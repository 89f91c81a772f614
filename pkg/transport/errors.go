package transport

import "errors"

// Transport errors.
var (
	// ErrClosed is returned when an operation is attempted on a closed
	// transport.
	ErrClosed = errors.New("transport: closed")

	// ErrNoHandler is returned when no session handler is configured.
	ErrNoHandler = errors.New("transport: no session handler configured")

	// ErrAlreadyStarted is returned when Start is called on an already
	// running transport.
	ErrAlreadyStarted = errors.New("transport: already started")

	// ErrPeerBusy is the reason Manager logs when it closes a TCP
	// connection that arrives while a peer is already active (spec.md §6:
	// one TCP peer at a time).
	ErrPeerBusy = errors.New("transport: peer already connected")
)
