package testing

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// HasQuery returns an error if any of the expected query parameters are
// missing from actual or carry different values.
func HasQuery(expect url.Values, actual url.Values) error {
	var errs []string
	for k, ev := range expect {
		av, ok := actual[k]
		if !ok {
			errs = append(errs, fmt.Sprintf("expect %q query parameter, was not set", k))
			continue
		}
		if e, a := strings.Join(ev, ","), strings.Join(av, ","); e != a {
			errs = append(errs, fmt.Sprintf("expect %q query parameter %q, got %q", k, e, a))
		}
	}
	return joinErrs(errs)
}

// NotHasQuery returns an error if any of the keys are set in actual.
func NotHasQuery(keys []string, actual url.Values) error {
	var errs []string
	for _, k := range keys {
		if _, ok := actual[k]; ok {
			errs = append(errs, fmt.Sprintf("expect %q query parameter to not be set, got %q", k, actual[k]))
		}
	}
	return joinErrs(errs)
}

// HasHeader returns an error if any of the expected headers are missing from
// actual or carry different values.
func HasHeader(expect http.Header, actual http.Header) error {
	var errs []string
	for k, ev := range expect {
		av := actual.Values(k)
		if e, a := strings.Join(ev, ","), strings.Join(av, ","); e != a {
			errs = append(errs, fmt.Sprintf("expect %q header %q, got %q", k, e, a))
		}
	}
	return joinErrs(errs)
}

// AssertHasQuery emits a testing error for every expected query parameter not
// found in actual.
func AssertHasQuery(t T, expect url.Values, actual url.Values) bool {
	t.Helper()

	if err := HasQuery(expect, actual); err != nil {
		t.Error(err)
		return false
	}
	return true
}

// AssertNotHasQuery emits a testing error for every key set in actual.
func AssertNotHasQuery(t T, keys []string, actual url.Values) bool {
	t.Helper()

	if err := NotHasQuery(keys, actual); err != nil {
		t.Error(err)
		return false
	}
	return true
}

// AssertHasHeader emits a testing error for every expected header not found
// in actual.
func AssertHasHeader(t T, expect http.Header, actual http.Header) bool {
	t.Helper()

	if err := HasHeader(expect, actual); err != nil {
		t.Error(err)
		return false
	}
	return true
}

func joinErrs(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	sort.Strings(errs)
	return fmt.Errorf("%s", strings.Join(errs, "\n"))
}
