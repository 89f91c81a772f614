package transport

import (
	"testing"
	"time"
)

func TestPipeAutoProcess(t *testing.T) {
	p := NewPipe()
	defer p.Close()

	if !p.AutoProcess() {
		t.Fatal("AutoProcess should default to true")
	}

	testData := []byte("auto-delivered message")
	done := make(chan error, 1)

	go func() {
		buf := make([]byte, 64)
		n, err := p.Conn1().Read(buf)
		if err != nil {
			done <- err
			return
		}
		if string(buf[:n]) != string(testData) {
			done <- errMismatch
			return
		}
		done <- nil
	}()

	time.Sleep(10 * time.Millisecond)

	if _, err := p.Conn0().Write(testData); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("read error: %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for auto-delivered data")
	}
}

func TestPipeManualProcess(t *testing.T) {
	p := NewPipeWithConfig(PipeConfig{AutoProcess: false})
	defer p.Close()

	testData := []byte("manually-delivered message")
	if _, err := p.Conn0().Write(testData); err != nil {
		t.Fatalf("write: %v", err)
	}

	if n := p.Process(); n == 0 {
		t.Fatal("Process delivered nothing")
	}

	buf := make([]byte, 64)
	n, err := p.Conn1().Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf[:n]) != string(testData) {
		t.Fatalf("got %q, want %q", buf[:n], testData)
	}
}

func TestPipeAutoProcessToggle(t *testing.T) {
	p := NewPipe()
	defer p.Close()

	p.SetAutoProcess(false)
	if p.AutoProcess() {
		t.Fatal("AutoProcess should be false after disabling")
	}

	p.SetAutoProcess(true)
	if !p.AutoProcess() {
		t.Fatal("AutoProcess should be true after re-enabling")
	}
}

func TestPipeCondition(t *testing.T) {
	p := NewPipe()
	defer p.Close()

	cond := NetworkCondition{DropRate: 0.5, DelayMin: time.Millisecond, DelayMax: 2 * time.Millisecond}
	p.SetCondition(cond)

	got := p.Condition()
	if got != cond {
		t.Fatalf("got %+v, want %+v", got, cond)
	}
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

const errMismatch sentinelError = "data mismatch"
