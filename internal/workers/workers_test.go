package workers

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"explicit", 3, 3},
		{"one", 1, 1},
		{"auto", 0, runtime.GOMAXPROCS(0)},
		{"negative is auto", -1, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.in); got != tt.want {
				t.Errorf("Count(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripeVisitsEveryIndexOnce(t *testing.T) {
	const n, items = 4, 103
	var hits [items]int32

	err := Stripe(context.Background(), n, func(ctx context.Context, w int) error {
		for i := w; i < items; i += n {
			atomic.AddInt32(&hits[i], 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Stripe() error: %v", err)
	}
	for i, h := range hits {
		if h != 1 {
			t.Errorf("index %d visited %d times, want 1", i, h)
		}
	}
}

func TestStripeFirstErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	var cancelled atomic.Int32

	err := Stripe(context.Background(), 3, func(ctx context.Context, w int) error {
		if w == 0 {
			return boom
		}
		<-ctx.Done()
		cancelled.Add(1)
		return ctx.Err()
	})
	if !errors.Is(err, boom) {
		t.Errorf("Stripe() error = %v, want %v", err, boom)
	}
	if cancelled.Load() != 2 {
		t.Errorf("%d workers saw cancellation, want 2", cancelled.Load())
	}
}
