package connect

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
)

// validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

type validateInputMiddleware struct{}

func addValidateInputMiddleware(stack *middleware.Stack) error {
	return stack.Initialize.Add(&validateInputMiddleware{}, middleware.After)
}

func (*validateInputMiddleware) ID() string {
	return id.OperationInputValidation
}

func (m *validateInputMiddleware) HandleInitialize(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (
	out middleware.InitializeOutput, metadata middleware.Metadata, err error,
) {
	if err := validateInput(in.Parameters); err != nil {
		return out, metadata, err
	}
	return next.HandleInitialize(ctx, in)
}

// validateInput checks the required and range constraints declared on the
// input's struct tags, including those of nested structures.
func validateInput(params interface{}) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	invalid := &core.InvalidParamsError{Context: reflect.Indirect(reflect.ValueOf(params)).Type().Name()}
	for _, fe := range fieldErrs {
		_, field, _ := strings.Cut(fe.StructNamespace(), ".")
		switch fe.Tag() {
		case "required":
			invalid.Add(core.NewErrParamRequired(field))
		case "min":
			invalid.Add(core.NewErrParamInvalid(field, fmt.Sprintf("minimum field %s of %s", sizeOrValue(fe.Kind()), fe.Param())))
		case "max":
			invalid.Add(core.NewErrParamInvalid(field, fmt.Sprintf("maximum field %s of %s", sizeOrValue(fe.Kind()), fe.Param())))
		default:
			invalid.Add(core.NewErrParamInvalid(field, fmt.Sprintf("failed %s constraint", fe.Tag())))
		}
	}
	return invalid
}

func sizeOrValue(k reflect.Kind) string {
	switch k {
	case reflect.String, reflect.Slice, reflect.Map:
		return "size"
	default:
		return "value"
	}
}

// idempotencyTokenFiller is implemented by inputs with a member the client
// fills with a fresh token when left unset.
type idempotencyTokenFiller interface {
	fillIdempotencyToken(IdempotencyTokenProvider) error
}

type idempotencyTokenMiddleware struct {
	tokenProvider IdempotencyTokenProvider
}

// hasIdempotencyToken reports whether the input of op has a member marked
// with the idempotencyToken trait.
func hasIdempotencyToken(op *core.Schema) bool {
	for _, m := range op.Member("input").Members() {
		if core.HasTrait[*traits.IdempotencyToken](m) {
			return true
		}
	}
	return false
}

func addIdempotencyTokenMiddleware(stack *middleware.Stack, options Options, op *core.Schema) error {
	if !hasIdempotencyToken(op) {
		return nil
	}
	return stack.Initialize.Add(&idempotencyTokenMiddleware{
		tokenProvider: options.IdempotencyTokenProvider,
	}, middleware.After)
}

func (*idempotencyTokenMiddleware) ID() string {
	return id.OperationIdempotencyTokenAutoFill
}

func (m *idempotencyTokenMiddleware) HandleInitialize(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (
	out middleware.InitializeOutput, metadata middleware.Metadata, err error,
) {
	if m.tokenProvider == nil {
		return next.HandleInitialize(ctx, in)
	}

	if input, ok := in.Parameters.(idempotencyTokenFiller); ok {
		if err := input.fillIdempotencyToken(m.tokenProvider); err != nil {
			return out, metadata, fmt.Errorf("failed to generate idempotency token, %w", err)
		}
	}

	return next.HandleInitialize(ctx, in)
}
