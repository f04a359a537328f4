package endpoints

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	custom := "http://localhost:8080/connect"
	badCustom := "ftp://localhost"

	cases := map[string]struct {
		params    Parameters
		expect    string
		expectErr string
	}{
		"standard": {
			params: Parameters{Region: "us-west-2"},
			expect: "https://connect.us-west-2.amazonaws.com",
		},
		"fips": {
			params: Parameters{Region: "us-east-1", UseFIPS: true},
			expect: "https://connect-fips.us-east-1.amazonaws.com",
		},
		"dualstack": {
			params: Parameters{Region: "eu-west-2", UseDualStack: true},
			expect: "https://connect.eu-west-2.api.aws",
		},
		"fips dualstack": {
			params: Parameters{Region: "us-east-1", UseFIPS: true, UseDualStack: true},
			expect: "https://connect-fips.us-east-1.api.aws",
		},
		"china": {
			params: Parameters{Region: "cn-north-1"},
			expect: "https://connect.cn-north-1.amazonaws.com.cn",
		},
		"govcloud": {
			params: Parameters{Region: "us-gov-west-1", UseFIPS: true},
			expect: "https://connect-fips.us-gov-west-1.amazonaws.com",
		},
		"iso dualstack": {
			params:    Parameters{Region: "us-iso-east-1", UseDualStack: true},
			expectErr: "does not support DualStack",
		},
		"custom endpoint": {
			params: Parameters{Region: "us-west-2", Endpoint: &custom},
			expect: "http://localhost:8080/connect",
		},
		"custom endpoint without region": {
			params: Parameters{Endpoint: &custom},
			expect: "http://localhost:8080/connect",
		},
		"custom endpoint with fips": {
			params:    Parameters{Region: "us-west-2", Endpoint: &custom, UseFIPS: true},
			expectErr: "FIPS and custom endpoint are not supported",
		},
		"custom endpoint with dualstack": {
			params:    Parameters{Region: "us-west-2", Endpoint: &custom, UseDualStack: true},
			expectErr: "Dualstack and custom endpoint are not supported",
		},
		"invalid custom endpoint": {
			params:    Parameters{Endpoint: &badCustom},
			expectErr: "unsupported scheme",
		},
		"custom endpoint trailing slash": {
			params: Parameters{Endpoint: ptr("http://127.0.0.1:52123/")},
			expect: "http://127.0.0.1:52123",
		},
		"custom endpoint ipv6": {
			params: Parameters{Endpoint: ptr("https://[::1]:8443")},
			expect: "https://[::1]:8443",
		},
		"custom endpoint with query": {
			params:    Parameters{Endpoint: ptr("https://connect.example.com?stage=beta")},
			expectErr: "must not include a query",
		},
		"custom endpoint without host": {
			params:    Parameters{Endpoint: ptr("https:///connect")},
			expectErr: "has no host",
		},
		"missing region": {
			params:    Parameters{},
			expectErr: "Missing Region",
		},
		"invalid region": {
			params:    Parameters{Region: "us-west-2.evil.com/"},
			expectErr: "not a valid host label",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			u, err := Resolve(c.params)
			if len(c.expectErr) != 0 {
				if err == nil {
					t.Fatalf("expected error, got %v", u)
				}
				if e, a := c.expectErr, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expected %q error in %q", e, a)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if e, a := c.expect, u.String(); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestGetPartition(t *testing.T) {
	cases := map[string]string{
		"us-east-1":      "aws",
		"ap-southeast-2": "aws",
		"cn-northwest-1": "aws-cn",
		"us-gov-east-1":  "aws-us-gov",
		"us-iso-east-1":  "aws-iso",
		"us-isob-east-1": "aws-iso-b",
	}

	for region, expect := range cases {
		t.Run(region, func(t *testing.T) {
			if e, a := expect, GetPartition(region).Name; e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func ptr(v string) *string { return &v }
