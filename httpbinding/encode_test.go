package httpbinding

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncoder(t *testing.T) {
	req := &http.Request{
		Header: http.Header{"X-Amz-Trace": {"t-1"}},
		URL: &url.URL{
			Path:     "/attached-files/{InstanceId}/{FileId}",
			RawQuery: "associatedResourceArn=old",
		},
	}

	enc, err := NewEncoder(req.URL.Path, req.URL.RawQuery, req.Header)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	enc.SetHeader(" X-Amz-Client-Token ", "token-1")
	enc.SetQuery("associatedResourceArn", "arn:aws:connect:us-west-2:123456789012:instance/i-1")
	enc.SetQuery("urlExpiryInSeconds", "300")
	if err := enc.SetLabel("InstanceId", "i-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := enc.SetLabel("FileId", "report 2.pdf"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := enc.Encode(req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if e, a := "/attached-files/i-1/report 2.pdf", req.URL.Path; e != a {
		t.Errorf("expected path %v, got %v", e, a)
	}
	if e, a := "/attached-files/i-1/report%202.pdf", req.URL.RawPath; e != a {
		t.Errorf("expected raw path %v, got %v", e, a)
	}
	expectQuery := url.Values{
		"associatedResourceArn": {"arn:aws:connect:us-west-2:123456789012:instance/i-1"},
		"urlExpiryInSeconds":    {"300"},
	}
	if diff := cmp.Diff(expectQuery, req.URL.Query()); diff != "" {
		t.Errorf("query mismatch (-expect +actual):\n%s", diff)
	}
	expectHeader := http.Header{
		"X-Amz-Trace":        {"t-1"},
		"X-Amz-Client-Token": {"token-1"},
	}
	if diff := cmp.Diff(expectHeader, req.Header); diff != "" {
		t.Errorf("header mismatch (-expect +actual):\n%s", diff)
	}
}

func TestEncoderLabelErrors(t *testing.T) {
	enc, err := NewEncoder("/views/{InstanceId}/{ViewId}", "", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := enc.SetLabel("InstanceId", ""); err == nil {
		t.Errorf("expected error for empty label")
	}
	if e, a := "/views/{InstanceId}/{ViewId}", enc.Path(); e != a {
		t.Errorf("expected path unchanged %v, got %v", e, a)
	}
	if err := enc.SetLabel("QueueId", "q-1"); err == nil {
		t.Errorf("expected error for label missing from the template")
	}
	if _, err := NewEncoder("/views", "a=%zz", nil); err == nil {
		t.Errorf("expected error for malformed query")
	}
}

func TestEscapePath(t *testing.T) {
	cases := map[string]struct {
		Input     string
		EncodeSep bool
		Expect    string
	}{
		"arn": {
			Input:     "arn:aws:connect:us-west-2:123456789012:instance/abc",
			EncodeSep: true,
			Expect:    "arn%3Aaws%3Aconnect%3Aus-west-2%3A123456789012%3Ainstance%2Fabc",
		},
		"greedy keeps separators": {
			Input:  "a/b c",
			Expect: "a/b%20c",
		},
		"unreserved": {
			Input:     "AZaz09-._~",
			EncodeSep: true,
			Expect:    "AZaz09-._~",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.Expect, EscapePath(c.Input, c.EncodeSep); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestReplacePathElementGreedy(t *testing.T) {
	path, _, err := replacePathElement([]byte("/files/{Key+}"), nil, "Key", "dir/name.txt", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := "/files/dir/name.txt", string(path); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}
