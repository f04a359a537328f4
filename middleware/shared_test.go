package middleware

import (
	"context"
	"reflect"
	"testing"
)

type mockIder string

func (m mockIder) ID() string { return string(m) }

func noError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
}

func expectIDList(t *testing.T, expect, actual []string) {
	t.Helper()
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("expect %v middleware IDs, got %v", expect, actual)
	}
}

type recordedIDsKey struct{}

// recordID appends the id to the list of middleware invoked for the context.
func recordID(ctx context.Context, id string) context.Context {
	ids, _ := ctx.Value(recordedIDsKey{}).(*[]string)
	if ids == nil {
		ids = &[]string{}
		ctx = context.WithValue(ctx, recordedIDsKey{}, ids)
	}
	*ids = append(*ids, id)
	return ctx
}

func recordedIDs(ctx context.Context) []string {
	ids, _ := ctx.Value(recordedIDsKey{}).(*[]string)
	if ids == nil {
		return nil
	}
	return *ids
}
