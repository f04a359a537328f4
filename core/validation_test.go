package core

import (
	"errors"
	"strings"
	"testing"
)

func TestInvalidParamsError(t *testing.T) {
	nested := InvalidParamsError{Context: "OutboundCallerConfig"}
	nested.Add(NewErrParamRequired("OutboundFlowId"))

	err := &InvalidParamsError{Context: "CreateQueueInput"}
	err.Add(NewErrParamRequired("InstanceId"))
	err.AddNested("OutboundCallerConfig", nested)
	err.Add(NewErrParamInvalid("MaxContacts", "value below minimum 0"))

	if e, a := 3, err.Len(); e != a {
		t.Fatalf("expected %v errors, got %v", e, a)
	}

	msg := err.Error()
	for _, expect := range []string{
		"3 validation error(s) found.",
		"missing required field, CreateQueueInput.InstanceId.",
		"missing required field, CreateQueueInput.OutboundCallerConfig.OutboundFlowId.",
		"value below minimum 0, CreateQueueInput.MaxContacts.",
	} {
		if !strings.Contains(msg, expect) {
			t.Errorf("expected %q in %q", expect, msg)
		}
	}

	var target *InvalidParamsError
	if !errors.As(error(err), &target) {
		t.Errorf("expected errors.As to find InvalidParamsError")
	}

	var required *ParamRequiredError
	if !errors.As(err.Errs()[0], &required) {
		t.Errorf("expected ParamRequiredError, got %T", err.Errs()[0])
	}
}

func TestErrorWrapping(t *testing.T) {
	base := errors.New("boom")

	cases := map[string]error{
		"serialization":   &SerializationError{Err: base},
		"deserialization": &DeserializationError{Err: base},
		"canceled":        &CanceledError{Err: base},
		"operation":       &OperationError{ServiceID: "Connect", OperationName: "DescribeQueue", Err: base},
	}

	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			if !errors.Is(err, base) {
				t.Errorf("expected %v to wrap %v", err, base)
			}
			if !strings.Contains(err.Error(), "boom") {
				t.Errorf("expected message to include cause, got %v", err.Error())
			}
		})
	}

	apiErr := &GenericAPIError{Code: "Unknown", Message: "oops", Fault: FaultServer}
	if e, a := "api error Unknown: oops", apiErr.Error(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	if e, a := "server", apiErr.ErrorFault().String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}
