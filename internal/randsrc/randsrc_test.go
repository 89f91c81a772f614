package randsrc

import "testing"

func TestSourceSessionIDNotAllZero(t *testing.T) {
	s := New()
	id, err := s.SessionID()
	if err != nil {
		t.Fatalf("SessionID: %v", err)
	}
	var zero [8]byte
	if id == zero {
		t.Fatalf("SessionID returned all-zero bytes (statistically near impossible)")
	}
}

func TestSourceSessionIDVaries(t *testing.T) {
	s := New()
	a, err := s.SessionID()
	if err != nil {
		t.Fatalf("SessionID: %v", err)
	}
	b, err := s.SessionID()
	if err != nil {
		t.Fatalf("SessionID: %v", err)
	}
	if a == b {
		t.Fatalf("two consecutive SessionID calls returned identical bytes")
	}
}
