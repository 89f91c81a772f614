// Package v2gtp implements the V2G Transfer Protocol framing used to carry
// SDP and EXI-encoded payloads over UDP and TCP (ISO 15118-2 §4.1).
//
// A V2GTP header is a fixed 8-byte structure:
//
//	byte 0:   version            (0x01)
//	byte 1:   inverted version   (0xFE)
//	byte 2-3: payload type       (big-endian uint16)
//	byte 4-7: payload length     (big-endian uint32)
package v2gtp

import "encoding/binary"

// Header is the decoded form of a V2GTP frame header.
type Header struct {
	// Type identifies the payload that follows the header.
	Type PayloadType
	// PayloadLength is the declared length, in bytes, of the payload.
	PayloadLength uint32
}

// ReadHeader decodes a V2GTP header from the first HeaderLength bytes of
// buf. It does not consume or validate anything beyond the header itself.
func ReadHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLength {
		return Header{}, ErrHeaderTooShort
	}

	if buf[0] != Version || buf[1] != InvertedVersion {
		return Header{}, ErrBadVersion
	}

	return Header{
		Type:          PayloadType(binary.BigEndian.Uint16(buf[2:4])),
		PayloadLength: binary.BigEndian.Uint32(buf[4:8]),
	}, nil
}

// WriteHeader encodes a V2GTP header into the first HeaderLength bytes of
// buf. buf must have length >= HeaderLength.
func WriteHeader(buf []byte, payloadLen uint32, payloadType PayloadType) error {
	if len(buf) < HeaderLength {
		return ErrBufferTooSmall
	}

	buf[0] = Version
	buf[1] = InvertedVersion
	binary.BigEndian.PutUint16(buf[2:4], uint16(payloadType))
	binary.BigEndian.PutUint32(buf[4:8], payloadLen)

	return nil
}

// ValidateFrame checks that a frame whose header declared payloadLen bytes
// of payload actually has exactly that many bytes available in
// availablePayload. Truncated and over-long frames are both rejected per
// spec (the invariant is an exact match, not an upper bound).
func ValidateFrame(payloadLen uint32, availablePayload int) error {
	if availablePayload < int(payloadLen) {
		return ErrFrameTruncated
	}
	if availablePayload > int(payloadLen) {
		return ErrFrameOverlong
	}
	return nil
}
