package sdp

import "testing"

func TestResolveLinkLocalAddressUnknownInterface(t *testing.T) {
	_, err := ResolveLinkLocalAddress("no-such-interface-xyz")
	if err != ErrInterfaceNotFound {
		t.Fatalf("got %v, want ErrInterfaceNotFound", err)
	}
}
