package api

import (
	"testing"
	"time"
)

func TestSetShutdownTimeout(t *testing.T) {
	s := &Server{shutdownTimeout: 5 * time.Second}

	s.SetShutdownTimeout(42 * time.Second)
	if s.shutdownTimeout != 42*time.Second {
		t.Errorf("expected 42s shutdown timeout, got %v", s.shutdownTimeout)
	}

	s.SetShutdownTimeout(0)
	if s.shutdownTimeout != 42*time.Second {
		t.Errorf("zero duration must not clear the timeout, got %v", s.shutdownTimeout)
	}
}
