package waiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func midJitter(n int64) int64 { return n / 2 }

func fullJitter(n int64) int64 { return n - 1 }

func TestComputeDelay(t *testing.T) {
	cases := map[string]struct {
		totalAttempts  int64
		minDelay       time.Duration
		maxDelay       time.Duration
		maxWaitTime    time.Duration
		jitter         func(int64) int64
		expectedDelays []time.Duration
		expectedError  string
	}{
		"standard": {
			totalAttempts:  8,
			minDelay:       2 * time.Second,
			maxDelay:       120 * time.Second,
			maxWaitTime:    300 * time.Second,
			jitter:         midJitter,
			expectedDelays: []time.Duration{2, 3, 5, 9, 17, 33, 61, 61},
		},
		"no jitter spread": {
			totalAttempts:  4,
			minDelay:       2 * time.Second,
			maxDelay:       120 * time.Second,
			maxWaitTime:    300 * time.Second,
			jitter:         func(int64) int64 { return 0 },
			expectedDelays: []time.Duration{2, 2, 2, 2},
		},
		"last attempt shortened": {
			totalAttempts:  6,
			minDelay:       2 * time.Second,
			maxDelay:       120 * time.Second,
			maxWaitTime:    60 * time.Second,
			jitter:         midJitter,
			expectedDelays: []time.Duration{2, 3, 5, 9, 17, 22},
		},
		"zero minDelay": {
			totalAttempts:  3,
			minDelay:       0,
			maxDelay:       120 * time.Second,
			maxWaitTime:    300 * time.Second,
			expectedDelays: []time.Duration{0, 0, 0},
		},
		"zero maxDelay": {
			totalAttempts:  3,
			minDelay:       10 * time.Second,
			maxDelay:       0,
			maxWaitTime:    300 * time.Second,
			expectedDelays: []time.Duration{0, 0, 0},
			expectedError:  "maximum delay must be greater than minimum delay",
		},
		"zero remaining time": {
			totalAttempts:  3,
			minDelay:       10 * time.Second,
			maxWaitTime:    0,
			expectedDelays: []time.Duration{0, 0, 0},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			var attempt int64
			var delays = make([]time.Duration, c.totalAttempts)

			remainingTime := c.maxWaitTime

			for {
				attempt++

				if c.totalAttempts < attempt {
					break
				}

				if remainingTime <= 0 {
					break
				}

				delay, e := ComputeDelay(c.jitter, c.minDelay, c.maxDelay, remainingTime, attempt)
				if e != nil {
					err = e
					break
				}
				delays[attempt-1] = delay

				remainingTime -= delay
			}

			if len(c.expectedError) != 0 {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				if e, a := c.expectedError, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expected error %v, got %v instead", e, a)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			for i, expectedDelay := range c.expectedDelays {
				if e, a := expectedDelay*time.Second, delays[i]; e != a {
					t.Fatalf("attempt %d : expected delay to be %v, got %v", i+1, e, a)
				}
			}
		})
	}
}

func TestComputeDelayJitterBounds(t *testing.T) {
	minDelay, maxDelay := 2*time.Second, 120*time.Second
	for attempt := int64(1); attempt <= 10; attempt++ {
		ceiling := maxDelay
		if shift := attempt - 1; minDelay<<uint(shift) < maxDelay {
			ceiling = minDelay << uint(shift)
		}
		for i := 0; i < 50; i++ {
			delay, err := ComputeDelay(nil, minDelay, maxDelay, time.Hour, attempt)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if delay < minDelay || delay > ceiling {
				t.Fatalf("attempt %d: expected delay within [%v, %v], got %v", attempt, minDelay, ceiling, delay)
			}
		}
	}
}

var errAttempt = errors.New("attempt failed")

func TestWait(t *testing.T) {
	cases := map[string]struct {
		results     []bool
		failAt      int64
		maxWait     time.Duration
		expectCalls int64
		expectErr   error
	}{
		"done first attempt": {
			results:     []bool{true},
			maxWait:     time.Minute,
			expectCalls: 1,
		},
		"done third attempt": {
			results:     []bool{false, false, true},
			maxWait:     time.Minute,
			expectCalls: 3,
		},
		"attempt error": {
			results:     []bool{false, false, false},
			failAt:      2,
			maxWait:     time.Minute,
			expectCalls: 2,
			expectErr:   errAttempt,
		},
		"max wait exceeded": {
			results:     []bool{false, false, false, false, false, false, false, false},
			maxWait:     10 * time.Second,
			expectCalls: 5,
			expectErr:   ErrMaxWaitExceeded,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var calls int64
			var slept []time.Duration
			opts := Options{
				MinDelay: time.Second,
				MaxDelay: 4 * time.Second,
				Jitter:   fullJitter,
				Sleep: func(ctx context.Context, d time.Duration) error {
					slept = append(slept, d)
					return nil
				},
			}

			err := Wait(context.Background(), c.maxWait, opts, func(ctx context.Context, attempt int64) (bool, error) {
				calls++
				if attempt == c.failAt {
					return false, errAttempt
				}
				return c.results[attempt-1], nil
			})
			if !errors.Is(err, c.expectErr) {
				t.Fatalf("expected error %v, got %v", c.expectErr, err)
			}
			if e, a := c.expectCalls, calls; e != a {
				t.Errorf("expected %d attempts, got %d (delays %v)", e, a, slept)
			}
		})
	}
}

func TestWaitInvalidOptions(t *testing.T) {
	noop := func(context.Context, int64) (bool, error) { return true, nil }

	if err := Wait(context.Background(), 0, Options{}, noop); err == nil {
		t.Errorf("expected error for zero max wait")
	}
	opts := Options{MinDelay: 2 * time.Second, MaxDelay: time.Second}
	if err := Wait(context.Background(), time.Minute, opts, noop); err == nil {
		t.Errorf("expected error for min delay above max delay")
	}
}

func TestSleepWithContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := SleepWithContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context canceled, got %v", err)
	}
}
