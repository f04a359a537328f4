package testing

import (
	"net/http"
	"net/url"
	"testing"
)

func TestAssertJSON(t *testing.T) {
	cases := map[string]struct {
		X, Y  []byte
		Equal bool
	}{
		"equal": {
			X:     []byte(`{"Queue":{"Tags":{"team":"support","tier":"gold"},"Name":"billing"}}`),
			Y:     []byte(`{"Queue":{"Name":"billing","Tags":{"tier":"gold","team":"support"}}}`),
			Equal: true,
		},
		"epoch rounding": {
			X:     []byte(`{"CreatedTime":1700000000.5}`),
			Y:     []byte(`{"CreatedTime":1700000000.5000001}`),
			Equal: true,
		},
		"bad document": {
			X:     []byte(`{"Queue":`),
			Y:     []byte(`{"Queue":{}}`),
			Equal: false,
		},
		"not equal": {
			X:     []byte(`{"Queue":{"Tags":{"team":"support","tier":"gold"}}}`),
			Y:     []byte(`{"Queue":{"Tags":{"team":"support"}}}`),
			Equal: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := JSONEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect JSON to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect JSON to not be equal")
			}
		})
	}
}

func TestHasQuery(t *testing.T) {
	actual := url.Values{"nextToken": {"abc"}, "queueTypes": {"STANDARD,AGENT"}}

	if err := HasQuery(url.Values{"nextToken": {"abc"}}, actual); err != nil {
		t.Errorf("expect no error, got %v", err)
	}
	if err := HasQuery(url.Values{"maxResults": {"10"}}, actual); err == nil {
		t.Errorf("expect error for missing parameter")
	}
	if err := NotHasQuery([]string{"maxResults"}, actual); err != nil {
		t.Errorf("expect no error, got %v", err)
	}
	if err := NotHasQuery([]string{"nextToken"}, actual); err == nil {
		t.Errorf("expect error for present parameter")
	}
}

func TestHasHeader(t *testing.T) {
	actual := http.Header{}
	actual.Set("Content-Type", "application/x-amz-json-1.1")

	if err := HasHeader(http.Header{"Content-Type": {"application/x-amz-json-1.1"}}, actual); err != nil {
		t.Errorf("expect no error, got %v", err)
	}
	if err := HasHeader(http.Header{"Content-Type": {"application/json"}}, actual); err == nil {
		t.Errorf("expect error for mismatched header")
	}
}
