// Package testing provides assertion helpers for comparing serialized
// requests and responses in tests.
package testing

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// T is the subset of testing.TB the assertions report through.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// epochTolerance absorbs float rounding of epoch-second timestamps.
var epochTolerance = cmpopts.EquateApprox(0, 1e-6)

func decodeDocument(name string, b []byte) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%s document is not JSON, %v", name, err)
	}
	return v, nil
}

// JSONEqual returns an error describing the difference between two JSON
// documents. Member order is ignored, and numbers match within a small
// absolute tolerance.
func JSONEqual(expectBytes, actualBytes []byte) error {
	expect, err := decodeDocument("expected", expectBytes)
	if err != nil {
		return err
	}
	actual, err := decodeDocument("actual", actualBytes)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(expect, actual, epochTolerance); diff != "" {
		return fmt.Errorf("JSON mismatch (-expect +actual):\n%s", diff)
	}
	return nil
}

// AssertJSONEqual reports a test error when the documents differ.
func AssertJSONEqual(t T, expect, actual []byte) bool {
	t.Helper()
	if err := JSONEqual(expect, actual); err != nil {
		t.Error(err)
		return false
	}
	return true
}
