package exi

import "errors"

// Package-level sentinel errors for EXI encode/decode operations.
var (
	// ErrBufferExhausted is returned when a read or write runs past the
	// end of the bound buffer.
	ErrBufferExhausted = errors.New("exi: buffer exhausted")

	// ErrStringTooLong is returned when a string field exceeds 255 bytes.
	ErrStringTooLong = errors.New("exi: string exceeds 255 bytes")

	// ErrUnknownTag is returned when a decoded message-kind tag does not
	// match any known document type.
	ErrUnknownTag = errors.New("exi: unknown message tag")

	// ErrUnsupportedType is returned when Encode is asked to serialize a
	// Go value with no registered tag.
	ErrUnsupportedType = errors.New("exi: unsupported document type")
)
