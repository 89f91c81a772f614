package v2gtp

import "errors"

// Package-level sentinel errors for V2GTP framing operations.
var (
	// ErrHeaderTooShort is returned when fewer than HeaderLength bytes are
	// available to read a header from.
	ErrHeaderTooShort = errors.New("v2gtp: header too short")

	// ErrBadVersion is returned when the version/inverted-version pair in
	// bytes 0-1 does not match the expected magic.
	ErrBadVersion = errors.New("v2gtp: bad version magic")

	// ErrBufferTooSmall is returned when WriteHeader's destination buffer
	// cannot hold a full header.
	ErrBufferTooSmall = errors.New("v2gtp: destination buffer too small")

	// ErrFrameTruncated is returned when a declared payload length exceeds
	// the number of payload bytes actually available.
	ErrFrameTruncated = errors.New("v2gtp: frame shorter than declared payload length")

	// ErrFrameOverlong is returned when more bytes were received than the
	// header's declared payload length accounts for.
	ErrFrameOverlong = errors.New("v2gtp: frame longer than declared payload length")
)
