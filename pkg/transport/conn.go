package transport

import (
	"io"
	"net"

	"github.com/v2gredux/secc-go/pkg/v2gtp"
)

// initialBufSize is the starting size of a Conn's reused frame buffer:
// the V2GTP header plus the shared 4 KB EXI document size (spec.md §9).
const initialBufSize = v2gtp.HeaderLength + 4096

// Conn wraps a single TCP peer connection with V2GTP framing. It owns one
// reused buffer per connection: WriteFrame fills the header's 8 bytes at
// the front and copies the payload in after them, the same shared
// in/out buffer optimization spec.md §9 describes, adapted from the
// source's tcpConn/StreamWriter pairing (pkg/transport/tcp.go in the
// teacher) to this protocol's header shape.
type Conn struct {
	nc  net.Conn
	buf []byte
}

// NewConn wraps nc for V2GTP framed reads and writes.
func NewConn(nc net.Conn) *Conn {
	return &Conn{
		nc:  nc,
		buf: make([]byte, initialBufSize),
	}
}

// WriteFrame writes payload as a V2GTP frame of the given payload type.
// A short underlying write is reported as io.ErrShortWrite, not retried
// (spec.md §7).
func (c *Conn) WriteFrame(payloadType v2gtp.PayloadType, payload []byte) error {
	total := v2gtp.HeaderLength + len(payload)
	if cap(c.buf) < total {
		c.buf = make([]byte, total)
	}
	buf := c.buf[:total]

	if err := v2gtp.WriteHeader(buf, uint32(len(payload)), payloadType); err != nil {
		return err
	}
	copy(buf[v2gtp.HeaderLength:], payload)

	n, err := c.nc.Write(buf)
	if err != nil {
		return err
	}
	if n != total {
		return io.ErrShortWrite
	}
	return nil
}

// ReadFrame reads one V2GTP frame and returns its payload type and
// payload bytes. A malformed header is reported as the v2gtp package's
// ReadHeader error; a stream that ends before the declared payload length
// is reported by io.ReadFull (io.ErrUnexpectedEOF). Bytes beyond the
// declared length are left unread and become the start of the next frame.
func (c *Conn) ReadFrame() (v2gtp.PayloadType, []byte, error) {
	hdrBuf := make([]byte, v2gtp.HeaderLength)
	if _, err := io.ReadFull(c.nc, hdrBuf); err != nil {
		return 0, nil, err
	}

	hdr, err := v2gtp.ReadHeader(hdrBuf)
	if err != nil {
		return 0, nil, err
	}

	payload := make([]byte, hdr.PayloadLength)
	if hdr.PayloadLength > 0 {
		if _, err := io.ReadFull(c.nc, payload); err != nil {
			return 0, nil, err
		}
	}

	return hdr.Type, payload, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.nc.Close()
}

// RemoteAddr returns the peer's network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.nc.RemoteAddr()
}
