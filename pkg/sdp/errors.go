package sdp

import "errors"

// Package-level sentinel errors for SDP responder operations.
var (
	// ErrInterfaceNotFound is returned when the configured interface name
	// does not match any system interface.
	ErrInterfaceNotFound = errors.New("sdp: interface not found")

	// ErrNoLinkLocalAddress is returned when the configured interface has
	// no IPv6 link-local (fe80::/10) address.
	ErrNoLinkLocalAddress = errors.New("sdp: interface has no link-local address")

	// ErrAlreadyStarted is returned when Start is called on an
	// already-started responder.
	ErrAlreadyStarted = errors.New("sdp: already started")

	// ErrClosed is returned when an operation is attempted on a closed
	// responder.
	ErrClosed = errors.New("sdp: closed")
)
