// Package randsrc provides the EVSE's one source of random bytes: 8-byte
// SessionID generation during SessionSetupRes (spec §9 design note). It
// keeps the init/get part of the source's random API (New, SessionID) but
// backs it with Go's CSPRNG instead of a platform-specific /dev/urandom
// handle, so there is nothing to deinit.
package randsrc

import "crypto/rand"

// Source reads random bytes from crypto/rand.Reader. The zero value is
// ready to use; Source exists so callers are handed an explicit value,
// constructed once and passed in, rather than reading the package-level
// rand.Reader directly.
type Source struct{}

// New returns a Source backed by crypto/rand.Reader.
func New() *Source {
	return &Source{}
}

// SessionID returns 8 fresh random bytes suitable for use as a
// SessionSetupRes SessionID, grounded on the teacher's own
// generateRandomInstanceName (pkg/discovery/advertiser.go), which reads
// crypto/rand into an [8]byte buffer the same way.
func (s *Source) SessionID() ([8]byte, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return buf, err
	}
	return buf, nil
}
