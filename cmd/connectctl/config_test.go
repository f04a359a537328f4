package main

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfiguration(t *testing.T) {
	cases := map[string]struct {
		Input     string
		Expect    func() *Configuration
		ExpectErr string
	}{
		"defaults": {
			Input:  "",
			Expect: defaultConfiguration,
		},
		"full": {
			Input: `
region: eu-central-1
profile: support
endpoint: http://localhost:8080
instanceId: 3d1d3a4b
log:
  level: debug
  formatter: json
  requests: true
http:
  retryMax: 5
  retryWaitMin: 50ms
  retryWaitMax: 1s
  timeout: 10s
`,
			Expect: func() *Configuration {
				c := defaultConfiguration()
				c.Region = "eu-central-1"
				c.Profile = "support"
				c.Endpoint = "http://localhost:8080"
				c.InstanceID = "3d1d3a4b"
				c.Log.Level = "debug"
				c.Log.Formatter = "json"
				c.Log.Requests = true
				c.HTTP.RetryMax = 5
				c.HTTP.RetryWaitMin = 50 * time.Millisecond
				c.HTTP.RetryWaitMax = time.Second
				c.HTTP.Timeout = 10 * time.Second
				return c
			},
		},
		"partial keeps defaults": {
			Input: "region: us-east-1\nhttp:\n  retryMax: 0\n",
			Expect: func() *Configuration {
				c := defaultConfiguration()
				c.Region = "us-east-1"
				c.HTTP.RetryMax = 0
				return c
			},
		},
		"bad formatter": {
			Input:     "log:\n  formatter: logstash\n",
			ExpectErr: `unsupported logging formatter: "logstash"`,
		},
		"inverted retry wait": {
			Input:     "http:\n  retryWaitMin: 2s\n  retryWaitMax: 1s\n",
			ExpectErr: "http.retryWaitMin 2s exceeds http.retryWaitMax 1s",
		},
		"malformed": {
			Input:     "region: [",
			ExpectErr: "parse configuration",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := parseConfiguration([]byte(c.Input))
			if len(c.ExpectErr) != 0 {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
					t.Errorf("expected error to contain %q, got %q", e, a)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if diff := cmp.Diff(c.Expect(), actual); len(diff) != 0 {
				t.Errorf("configuration mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
