package middleware

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestOrder(t *testing.T, ids ...string) *orderedIDs {
	t.Helper()
	o := newOrderedIDs()
	for _, id := range ids {
		noError(t, o.Add(mockIder(id), After))
	}
	return o
}

func assertOrder(t *testing.T, expect []string, o *orderedIDs) {
	t.Helper()
	if diff := cmp.Diff(expect, o.List()); diff != "" {
		t.Errorf("order mismatch (-expect +actual):\n%s", diff)
	}
}

func TestOrderedIDsAddInsert(t *testing.T) {
	o := newTestOrder(t, "ComputeContentLength", "Signing")
	noError(t, o.Add(mockIder("OperationInputValidation"), Before))
	noError(t, o.Insert(mockIder("UserAgent"), "ComputeContentLength", Before))
	noError(t, o.Insert(mockIder("RequestLogger"), "Signing", After))

	assertOrder(t, []string{
		"OperationInputValidation",
		"UserAgent",
		"ComputeContentLength",
		"Signing",
		"RequestLogger",
	}, o)

	cases := map[string]func() error{
		"add empty":          func() error { return o.Add(mockIder(""), After) },
		"add duplicate":      func() error { return o.Add(mockIder("Signing"), After) },
		"add bad position":   func() error { return o.Add(mockIder("Retry"), 42) },
		"insert empty":       func() error { return o.Insert(mockIder(""), "Signing", After) },
		"insert no relative": func() error { return o.Insert(mockIder("Retry"), "", After) },
		"insert duplicate":   func() error { return o.Insert(mockIder("UserAgent"), "Signing", After) },
		"insert missing":     func() error { return o.Insert(mockIder("Retry"), "Endpoint", After) },
		"insert bad position": func() error {
			return o.Insert(mockIder("Retry"), "Signing", 42)
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			if err := fn(); err == nil {
				t.Errorf("expect error, got none")
			}
		})
	}

	assertOrder(t, []string{
		"OperationInputValidation",
		"UserAgent",
		"ComputeContentLength",
		"Signing",
		"RequestLogger",
	}, o)
}

func TestOrderedIDsGetSwap(t *testing.T) {
	o := newTestOrder(t, "ResolveEndpoint", "Signing", "ClientMetrics")

	if m, ok := o.Get("Retry"); ok || m != nil {
		t.Fatalf("expect Retry not to be found, got %v", m)
	}
	m, ok := o.Get("Signing")
	if !ok {
		t.Fatalf("expect Signing to be found")
	}
	if e, a := "Signing", m.ID(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	if _, err := o.Swap("Signing", mockIder("")); err == nil {
		t.Errorf("expect error swapping in empty ID")
	}
	if _, err := o.Swap("", mockIder("AnonymousSigning")); err == nil {
		t.Errorf("expect error swapping empty ID")
	}
	if _, err := o.Swap("Retry", mockIder("AnonymousSigning")); err == nil {
		t.Errorf("expect error swapping unknown ID")
	}
	if _, err := o.Swap("Signing", mockIder("ClientMetrics")); err == nil {
		t.Errorf("expect error swapping to an existing ID")
	}

	removed, err := o.Swap("Signing", mockIder("AnonymousSigning"))
	noError(t, err)
	if e, a := "Signing", removed.ID(); e != a {
		t.Errorf("expect %v removed, got %v", e, a)
	}
	assertOrder(t, []string{"ResolveEndpoint", "AnonymousSigning", "ClientMetrics"}, o)
}

func TestOrderedIDsRemoveClear(t *testing.T) {
	o := newTestOrder(t, "UserAgent", "Signing")
	noError(t, o.Remove("UserAgent"))
	noError(t, o.Insert(mockIder("RequestLogger"), "Signing", After))

	if err := o.Remove(""); err == nil {
		t.Errorf("expect error removing empty ID")
	}
	if err := o.Remove("UserAgent"); err == nil {
		t.Errorf("expect error removing UserAgent twice")
	}
	assertOrder(t, []string{"Signing", "RequestLogger"}, o)

	o.Clear()
	noError(t, o.Add(mockIder("ClientMetrics"), After))
	assertOrder(t, []string{"ClientMetrics"}, o)
}

func TestOrderedIDsGetOrder(t *testing.T) {
	o := newTestOrder(t, "UserAgent", "ComputeContentLength")
	noError(t, o.Add(mockIder("OperationInputValidation"), Before))

	var actual []string
	for _, m := range o.GetOrder() {
		actual = append(actual, m.(ider).ID())
	}
	expect := []string{"OperationInputValidation", "UserAgent", "ComputeContentLength"}
	if diff := cmp.Diff(expect, actual); diff != "" {
		t.Errorf("order mismatch (-expect +actual):\n%s", diff)
	}
}

func TestOrderedIDsSlots(t *testing.T) {
	o := newOrderedIDs()
	noError(t, o.AddSlot("ResolveEndpoint", After))
	noError(t, o.AddSlot("Signing", After))
	noError(t, o.InsertSlot("RequestLogger", "Signing", After))
	noError(t, o.Insert(mockIder("ClientMetrics"), "Signing", After))

	assertOrder(t, []string{"ResolveEndpoint", "Signing", "ClientMetrics", "RequestLogger"}, o)

	noError(t, o.Add(mockIder("Signing"), After))

	var filled []string
	for _, m := range o.GetOrder() {
		filled = append(filled, m.(ider).ID())
	}
	if diff := cmp.Diff([]string{"Signing", "ClientMetrics"}, filled); diff != "" {
		t.Errorf("filled slots mismatch (-expect +actual):\n%s", diff)
	}
}
