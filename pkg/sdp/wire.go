// Package sdp implements the SECC Discovery Protocol responder: a UDP
// multicast listener on ff02::1:15118 that answers discovery requests with
// the EVSE's link-local address and TCP port (spec §4.2).
package sdp

import (
	"encoding/binary"
	"net"

	"github.com/v2gredux/secc-go/pkg/v2gtp"
)

// security and transport are the only values this EVSE ever emits or
// accepts: no TLS, TCP transport (spec §4.2).
const (
	security  byte = 0x10
	transport byte = 0x00
)

// requestPayloadLen is the SDP discovery request's fixed payload: one
// security byte, one transport byte.
const requestPayloadLen = 2

// responsePayloadLen is the SDP discovery response's fixed payload: a
// 16-byte IPv6 address, a 2-byte TCP port, and the security/transport
// bytes.
const responsePayloadLen = 16 + 2 + 1 + 1

// matchRequest reports whether frame is exactly the V2GTP-framed SDP
// discovery request this EVSE answers: header type SDP_REQUEST, payload
// length 2, payload bytes security=0x10, transport=0x00. Any other byte
// pattern — including a single altered byte — does not match and is
// silently dropped, not NACKed (spec §4.2).
func matchRequest(frame []byte) bool {
	if len(frame) != v2gtp.HeaderLength+requestPayloadLen {
		return false
	}

	hdr, err := v2gtp.ReadHeader(frame)
	if err != nil {
		return false
	}
	if hdr.Type != v2gtp.SDPRequest {
		return false
	}
	if err := v2gtp.ValidateFrame(hdr.PayloadLength, len(frame)-v2gtp.HeaderLength); err != nil {
		return false
	}

	payload := frame[v2gtp.HeaderLength:]
	return payload[0] == security && payload[1] == transport
}

// buildResponse encodes the SDP discovery response for the given
// link-local address and TCP port.
func buildResponse(addr net.IP, port uint16) ([]byte, error) {
	ip16 := addr.To16()
	if ip16 == nil {
		return nil, ErrNoLinkLocalAddress
	}

	frame := make([]byte, v2gtp.HeaderLength+responsePayloadLen)
	if err := v2gtp.WriteHeader(frame, responsePayloadLen, v2gtp.SDPResponse); err != nil {
		return nil, err
	}

	payload := frame[v2gtp.HeaderLength:]
	copy(payload[0:16], ip16)
	binary.BigEndian.PutUint16(payload[16:18], port)
	payload[18] = security
	payload[19] = transport

	return frame, nil
}
