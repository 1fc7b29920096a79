package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestSpinnerBasic(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Searching...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Searching...") {
		t.Errorf("spinner should draw its message, got %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Error("Stop() should clear the line")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, &bytes.Buffer{}, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessage(t *testing.T) {
	var status bytes.Buffer
	s := newSpinner(context.Background(), &bytes.Buffer{}, "Working...")
	s.Start()
	s.StopWithSuccess(&status, "Done!")
	if !strings.Contains(status.String(), "Done!") {
		t.Errorf("StopWithSuccess() output = %q", status.String())
	}

	status.Reset()
	s = newSpinner(context.Background(), &bytes.Buffer{}, "Working...")
	s.Start()
	s.StopWithError(&status, "Failed!")
	if !strings.Contains(status.String(), "Failed!") {
		t.Errorf("StopWithError() output = %q", status.String())
	}
}

func TestNilSpinner(t *testing.T) {
	var s *Spinner
	s.Start()
	s.Stop()
	if s.Cancelled() {
		t.Error("nil spinner should not report cancellation")
	}
}

func TestStartSpinnerNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if s := startSpinner(context.Background(), f, "hidden"); s != nil {
		s.Stop()
		t.Error("startSpinner() should not start on a regular file")
	}
}
