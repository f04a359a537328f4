package http

import (
	"testing"
)

func TestValidateEndpointHost(t *testing.T) {
	cases := map[string]struct {
		Input string
		Valid bool
	}{
		"regional host":   {Input: "connect.us-west-2.amazonaws.com", Valid: true},
		"fqdn host":       {Input: "connect.us-east-1.amazonaws.com.", Valid: true},
		"empty label":     {Input: "connect..amazonaws.com", Valid: false},
		"local with port": {Input: "127.0.0.1:8080", Valid: true},
		"invalid port":    {Input: "localhost:99999", Valid: false},
		"empty host":      {Input: ":1234", Valid: false},
		"empty port":      {Input: "localhost:", Valid: false},
		"underscore":      {Input: "connect_fake.local", Valid: false},
		"too long label":  {Input: "a123456789a123456789a123456789a123456789a123456789a123456789abcd.com", Valid: false},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateEndpointHost(c.Input)
			if e, a := c.Valid, err == nil; e != a {
				t.Errorf("expect valid %v, got %v, %v", e, a, err)
			}
		})
	}
}
