package connect

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmespath/go-jmespath"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
	"github.com/aws-amplify/aws-sdk-connect-go/waiter"
)

// DescribeInstanceAPIClient is a client that implements the DescribeInstance
// operation.
type DescribeInstanceAPIClient interface {
	DescribeInstance(context.Context, *DescribeInstanceInput, ...func(*Options)) (*DescribeInstanceOutput, error)
}

var _ DescribeInstanceAPIClient = (*Client)(nil)

// InstanceActiveWaiterOptions are waiter options for InstanceActiveWaiter
type InstanceActiveWaiterOptions struct {

	// Set of options to modify how an operation is invoked. These apply to all
	// operations invoked for this client. Use functional options on operation
	// call to modify this list for per operation behavior.
	APIOptions []func(*middleware.Stack) error

	// Functional options to be passed to all operations invoked by this client.
	ClientOptions []func(*Options)

	// MinDelay is the minimum amount of time to delay between retries. If unset,
	// InstanceActiveWaiter will use default minimum delay of 5 seconds. Note that
	// MinDelay must resolve to a value lesser than or equal to the MaxDelay.
	MinDelay time.Duration

	// MaxDelay is the maximum amount of time to delay between retries. If unset
	// or set to zero, InstanceActiveWaiter will use default max delay of 120
	// seconds. Note that MaxDelay must resolve to value greater than or equal to
	// the MinDelay.
	MaxDelay time.Duration

	// Retryable is function that can be used to override the service defined
	// waiter-behavior based on operation output, or returned error. This function
	// is used by the waiter to decide if a state is retryable or a terminal state.
	Retryable func(context.Context, *DescribeInstanceInput, *DescribeInstanceOutput, error) (bool, error)
}

// InstanceActiveWaiter defines the waiters for InstanceActive
type InstanceActiveWaiter struct {
	client DescribeInstanceAPIClient

	options InstanceActiveWaiterOptions
}

// NewInstanceActiveWaiter constructs a InstanceActiveWaiter.
func NewInstanceActiveWaiter(client DescribeInstanceAPIClient, optFns ...func(*InstanceActiveWaiterOptions)) *InstanceActiveWaiter {
	options := InstanceActiveWaiterOptions{}
	options.MinDelay = 5 * time.Second
	options.MaxDelay = 120 * time.Second
	options.Retryable = instanceActiveStateRetryable

	for _, fn := range optFns {
		fn(&options)
	}
	return &InstanceActiveWaiter{
		client:  client,
		options: options,
	}
}

// Wait calls the waiter function for InstanceActive waiter. The maxWaitDur is
// the maximum wait duration the waiter will wait. The maxWaitDur is required
// and must be greater than zero.
func (w *InstanceActiveWaiter) Wait(ctx context.Context, params *DescribeInstanceInput, maxWaitDur time.Duration, optFns ...func(*InstanceActiveWaiterOptions)) error {
	_, err := w.WaitForOutput(ctx, params, maxWaitDur, optFns...)
	return err
}

// WaitForOutput calls the waiter function for InstanceActive waiter and
// returns the output of the successful operation.
func (w *InstanceActiveWaiter) WaitForOutput(ctx context.Context, params *DescribeInstanceInput, maxWaitDur time.Duration, optFns ...func(*InstanceActiveWaiterOptions)) (*DescribeInstanceOutput, error) {
	options := w.options
	for _, fn := range optFns {
		fn(&options)
	}
	if options.MaxDelay <= 0 {
		options.MaxDelay = 120 * time.Second
	}

	var out *DescribeInstanceOutput
	err := waiter.Wait(ctx, maxWaitDur, waiter.Options{
		MinDelay: options.MinDelay,
		MaxDelay: options.MaxDelay,
	}, func(ctx context.Context, attempt int64) (bool, error) {
		var err error
		out, err = w.client.DescribeInstance(ctx, params, waiterClientOptions(options.APIOptions, options.ClientOptions)...)

		retryable, err := options.Retryable(ctx, params, out, err)
		if err != nil {
			return false, err
		}
		return !retryable, nil
	})
	if errors.Is(err, waiter.ErrMaxWaitExceeded) {
		return nil, fmt.Errorf("exceeded max wait time for InstanceActive waiter")
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func instanceActiveStateRetryable(ctx context.Context, input *DescribeInstanceInput, output *DescribeInstanceOutput, err error) (bool, error) {
	if err != nil {
		return false, err
	}

	pathValue, err := jmespath.Search("Instance.InstanceStatus", output)
	if err != nil {
		return false, fmt.Errorf("error evaluating waiter state: %w", err)
	}
	if pathValue == nil {
		return true, nil
	}

	value, ok := pathValue.(types.InstanceStatus)
	if !ok {
		return false, fmt.Errorf("waiter comparator expected types.InstanceStatus value, got %T", pathValue)
	}

	switch value {
	case types.InstanceStatusActive:
		return false, nil
	case types.InstanceStatusCreationFailed:
		return false, fmt.Errorf("waiter state transitioned to Failure")
	}
	return true, nil
}

// DescribeVocabularyAPIClient is a client that implements the
// DescribeVocabulary operation.
type DescribeVocabularyAPIClient interface {
	DescribeVocabulary(context.Context, *DescribeVocabularyInput, ...func(*Options)) (*DescribeVocabularyOutput, error)
}

var _ DescribeVocabularyAPIClient = (*Client)(nil)

// VocabularyActiveWaiterOptions are waiter options for VocabularyActiveWaiter
type VocabularyActiveWaiterOptions struct {

	// Set of options to modify how an operation is invoked. These apply to all
	// operations invoked for this client. Use functional options on operation
	// call to modify this list for per operation behavior.
	APIOptions []func(*middleware.Stack) error

	// Functional options to be passed to all operations invoked by this client.
	ClientOptions []func(*Options)

	// MinDelay is the minimum amount of time to delay between retries. If unset,
	// VocabularyActiveWaiter will use default minimum delay of 10 seconds.
	MinDelay time.Duration

	// MaxDelay is the maximum amount of time to delay between retries. If unset
	// or set to zero, VocabularyActiveWaiter will use default max delay of 120
	// seconds.
	MaxDelay time.Duration

	// Retryable is function that can be used to override the service defined
	// waiter-behavior based on operation output, or returned error.
	Retryable func(context.Context, *DescribeVocabularyInput, *DescribeVocabularyOutput, error) (bool, error)
}

// VocabularyActiveWaiter defines the waiters for VocabularyActive
type VocabularyActiveWaiter struct {
	client DescribeVocabularyAPIClient

	options VocabularyActiveWaiterOptions
}

// NewVocabularyActiveWaiter constructs a VocabularyActiveWaiter.
func NewVocabularyActiveWaiter(client DescribeVocabularyAPIClient, optFns ...func(*VocabularyActiveWaiterOptions)) *VocabularyActiveWaiter {
	options := VocabularyActiveWaiterOptions{}
	options.MinDelay = 10 * time.Second
	options.MaxDelay = 120 * time.Second
	options.Retryable = vocabularyActiveStateRetryable

	for _, fn := range optFns {
		fn(&options)
	}
	return &VocabularyActiveWaiter{
		client:  client,
		options: options,
	}
}

// Wait calls the waiter function for VocabularyActive waiter.
func (w *VocabularyActiveWaiter) Wait(ctx context.Context, params *DescribeVocabularyInput, maxWaitDur time.Duration, optFns ...func(*VocabularyActiveWaiterOptions)) error {
	_, err := w.WaitForOutput(ctx, params, maxWaitDur, optFns...)
	return err
}

// WaitForOutput calls the waiter function for VocabularyActive waiter and
// returns the output of the successful operation.
func (w *VocabularyActiveWaiter) WaitForOutput(ctx context.Context, params *DescribeVocabularyInput, maxWaitDur time.Duration, optFns ...func(*VocabularyActiveWaiterOptions)) (*DescribeVocabularyOutput, error) {
	options := w.options
	for _, fn := range optFns {
		fn(&options)
	}
	if options.MaxDelay <= 0 {
		options.MaxDelay = 120 * time.Second
	}

	var out *DescribeVocabularyOutput
	err := waiter.Wait(ctx, maxWaitDur, waiter.Options{
		MinDelay: options.MinDelay,
		MaxDelay: options.MaxDelay,
	}, func(ctx context.Context, attempt int64) (bool, error) {
		var err error
		out, err = w.client.DescribeVocabulary(ctx, params, waiterClientOptions(options.APIOptions, options.ClientOptions)...)

		retryable, err := options.Retryable(ctx, params, out, err)
		if err != nil {
			return false, err
		}
		return !retryable, nil
	})
	if errors.Is(err, waiter.ErrMaxWaitExceeded) {
		return nil, fmt.Errorf("exceeded max wait time for VocabularyActive waiter")
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func vocabularyActiveStateRetryable(ctx context.Context, input *DescribeVocabularyInput, output *DescribeVocabularyOutput, err error) (bool, error) {
	if err != nil {
		return false, err
	}

	pathValue, err := jmespath.Search("Vocabulary.State", output)
	if err != nil {
		return false, fmt.Errorf("error evaluating waiter state: %w", err)
	}
	if pathValue == nil {
		return true, nil
	}

	value, ok := pathValue.(types.VocabularyState)
	if !ok {
		return false, fmt.Errorf("waiter comparator expected types.VocabularyState value, got %T", pathValue)
	}

	switch value {
	case types.VocabularyStateActive:
		return false, nil
	case types.VocabularyStateCreationFailed, types.VocabularyStateDeleteInProgress:
		return false, fmt.Errorf("waiter state transitioned to Failure")
	}
	return true, nil
}

func waiterClientOptions(apiOptions []func(*middleware.Stack) error, clientOptions []func(*Options)) []func(*Options) {
	optFns := make([]func(*Options), 0, len(clientOptions)+1)
	optFns = append(optFns, func(o *Options) {
		o.APIOptions = append(o.APIOptions, apiOptions...)
	})
	return append(optFns, clientOptions...)
}
