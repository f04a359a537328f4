// Package waiter polls an operation until it reports a terminal state or the
// maximum wait time elapses.
package waiter

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	smithytime "github.com/aws-amplify/aws-sdk-connect-go/time"
)

// ErrMaxWaitExceeded is returned when the resource does not reach a terminal
// state within the maximum wait time.
var ErrMaxWaitExceeded = errors.New("exceeded max wait time for waiter")

// Options bounds the delay between polling attempts.
type Options struct {
	MinDelay time.Duration
	MaxDelay time.Duration

	// Sleep is used between attempts. Defaults to SleepWithContext.
	Sleep func(context.Context, time.Duration) error

	// Jitter returns a value in [0, n) used to spread each delay between
	// MinDelay and the exponential delay. Defaults to math/rand Int63n.
	Jitter func(n int64) int64
}

// RetryableFunc performs one attempt. It returns true once the waiter should
// stop; a non-nil error stops the waiter as failed.
type RetryableFunc func(ctx context.Context, attempt int64) (bool, error)

// Wait invokes fn until it reports done, returns an error, or maxWaitDur
// elapses.
func Wait(ctx context.Context, maxWaitDur time.Duration, opts Options, fn RetryableFunc) error {
	if maxWaitDur <= 0 {
		return fmt.Errorf("maximum wait time for waiter must be greater than zero")
	}
	if opts.MinDelay > opts.MaxDelay {
		return fmt.Errorf("minimum waiter delay %v must be lesser than or equal to maximum waiter delay of %v",
			opts.MinDelay, opts.MaxDelay)
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = SleepWithContext
	}

	ctx, cancel := context.WithTimeout(ctx, maxWaitDur)
	defer cancel()

	remaining := maxWaitDur
	var attempt int64
	for {
		attempt++
		start := time.Now()

		done, err := fn(ctx, attempt)
		if err != nil || done {
			return err
		}

		remaining -= time.Since(start)
		if remaining < opts.MinDelay || remaining <= 0 {
			break
		}

		delay, err := ComputeDelay(opts.Jitter, opts.MinDelay, opts.MaxDelay, remaining, attempt)
		if err != nil {
			return err
		}
		remaining -= delay

		if err := sleep(ctx, delay); err != nil {
			return fmt.Errorf("request cancelled while waiting, %w", err)
		}
	}

	return ErrMaxWaitExceeded
}

// ComputeDelay computes the delay before the next attempt. The exponential
// delay doubles from minDelay up to maxDelay, and the returned delay is picked
// by jitter between minDelay and that value. The delay is shortened so that
// minDelay of remainingTime is left for the final attempt. A nil jitter uses
// math/rand.
func ComputeDelay(jitter func(int64) int64, minDelay, maxDelay, remainingTime time.Duration, attempt int64) (time.Duration, error) {
	if minDelay > maxDelay {
		return 0, fmt.Errorf("maximum delay must be greater than minimum delay")
	}
	if attempt <= 0 || remainingTime <= 0 {
		return 0, nil
	}
	if jitter == nil {
		jitter = rand.Int63n
	}

	delay := maxDelay
	if shift := attempt - 1; shift < 62 && minDelay <= maxDelay>>uint(shift) {
		delay = smithytime.DurationMin(maxDelay, minDelay<<uint(shift))
	}
	if delay > minDelay {
		delay = time.Duration(jitter(int64(delay-minDelay))) + minDelay
	}

	if remainingTime-delay <= minDelay {
		delay = remainingTime - minDelay
	}
	if delay < 0 {
		delay = 0
	}

	return delay, nil
}

// SleepWithContext will wait for the timer duration to expire, or the context
// is canceled. Which ever happens first. If the context is canceled the
// Context's error will be returned.
func SleepWithContext(ctx context.Context, dur time.Duration) error {
	t := time.NewTimer(dur)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
