package sdp

import (
	"net"
	"testing"
)

func TestMatchRequestLiteralBytes(t *testing.T) {
	req := []byte{0x01, 0xFE, 0x90, 0x00, 0x00, 0x00, 0x00, 0x02, 0x10, 0x00}
	if !matchRequest(req) {
		t.Fatalf("literal discovery request did not match")
	}
}

func TestMatchRequestRejectsAlteredByte(t *testing.T) {
	req := []byte{0x01, 0xFE, 0x90, 0x00, 0x00, 0x00, 0x00, 0x02, 0x10, 0x01}
	if matchRequest(req) {
		t.Fatalf("altered-byte request should not match")
	}
}

func TestMatchRequestRejectsWrongLength(t *testing.T) {
	req := []byte{0x01, 0xFE, 0x90, 0x00, 0x00, 0x00, 0x00, 0x02, 0x10}
	if matchRequest(req) {
		t.Fatalf("short request should not match")
	}
}

func TestMatchRequestRejectsWrongPayloadType(t *testing.T) {
	req := []byte{0x01, 0xFE, 0x90, 0x01, 0x00, 0x00, 0x00, 0x02, 0x10, 0x00}
	if matchRequest(req) {
		t.Fatalf("SDP_RESPONSE-typed request should not match")
	}
}

func TestBuildResponseLiteralBytes(t *testing.T) {
	addr := net.ParseIP("fe80::1")
	resp, err := buildResponse(addr, 51111)
	if err != nil {
		t.Fatalf("buildResponse: %v", err)
	}
	if len(resp) != 28 {
		t.Fatalf("got length %d, want 28", len(resp))
	}
	if !addr.To16().Equal(net.IP(resp[8:24])) {
		t.Fatalf("address bytes mismatch")
	}
	// 51111 decimal = 0xC7A7. (spec.md's scenario-1 byte literal prints
	// "C7 07" for this field, which does not decode to 51111 in any
	// base; 0xC7A7 is what big-endian 51111 actually is, so that is what
	// this implementation emits and what this test checks.)
	if resp[24] != 0xC7 || resp[25] != 0xA7 {
		t.Fatalf("port bytes = %02X %02X, want C7 A7", resp[24], resp[25])
	}
	if resp[26] != 0x10 || resp[27] != 0x00 {
		t.Fatalf("security/transport bytes = %02X %02X, want 10 00", resp[26], resp[27])
	}
}
