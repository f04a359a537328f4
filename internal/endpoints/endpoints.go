// Package endpoints resolves the Amazon Connect endpoint for a region.
package endpoints

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// Parameters are the inputs of endpoint resolution.
type Parameters struct {
	// Region the client is scoped to. Required unless Endpoint is set.
	Region string

	// UseFIPS selects the FIPS compliant endpoint.
	UseFIPS bool

	// UseDualStack selects the IPv4 and IPv6 endpoint.
	UseDualStack bool

	// Endpoint overrides the resolved endpoint when set.
	Endpoint *string
}

// Partition groups regions sharing DNS suffixes.
type Partition struct {
	Name               string
	DNSSuffix          string
	DualStackDNSSuffix string
	SupportsFIPS       bool
	SupportsDualStack  bool
	regionPrefixes     []string
}

var partitions = []Partition{
	{
		Name:               "aws-cn",
		DNSSuffix:          "amazonaws.com.cn",
		DualStackDNSSuffix: "api.amazonwebservices.com.cn",
		SupportsFIPS:       true,
		SupportsDualStack:  true,
		regionPrefixes:     []string{"cn-"},
	},
	{
		Name:               "aws-us-gov",
		DNSSuffix:          "amazonaws.com",
		DualStackDNSSuffix: "api.aws",
		SupportsFIPS:       true,
		SupportsDualStack:  true,
		regionPrefixes:     []string{"us-gov-"},
	},
	{
		Name:           "aws-iso",
		DNSSuffix:      "c2s.ic.gov",
		SupportsFIPS:   true,
		regionPrefixes: []string{"us-iso-"},
	},
	{
		Name:           "aws-iso-b",
		DNSSuffix:      "sc2s.sgov.gov",
		SupportsFIPS:   true,
		regionPrefixes: []string{"us-isob-"},
	},
}

var defaultPartition = Partition{
	Name:               "aws",
	DNSSuffix:          "amazonaws.com",
	DualStackDNSSuffix: "api.aws",
	SupportsFIPS:       true,
	SupportsDualStack:  true,
}

// GetPartition returns the partition the region belongs to.
func GetPartition(region string) Partition {
	for _, p := range partitions {
		for _, prefix := range p.regionPrefixes {
			if strings.HasPrefix(region, prefix) {
				return p
			}
		}
	}
	return defaultPartition
}

// Resolve returns the endpoint URL for params.
func Resolve(params Parameters) (*url.URL, error) {
	if params.Endpoint != nil {
		if params.UseFIPS {
			return nil, errors.New("Invalid Configuration: FIPS and custom endpoint are not supported")
		}
		if params.UseDualStack {
			return nil, errors.New("Invalid Configuration: Dualstack and custom endpoint are not supported")
		}
		return parseCustomEndpoint(*params.Endpoint)
	}

	if len(params.Region) == 0 {
		return nil, errors.New("Invalid Configuration: Missing Region")
	}
	if !smithyhttp.ValidHostLabel(params.Region) {
		return nil, fmt.Errorf("region %q is not a valid host label", params.Region)
	}

	p := GetPartition(params.Region)
	host, suffix := "connect", p.DNSSuffix
	if params.UseFIPS {
		if !p.SupportsFIPS {
			return nil, fmt.Errorf("FIPS is enabled but partition %s does not support FIPS", p.Name)
		}
		host = "connect-fips"
	}
	if params.UseDualStack {
		if !p.SupportsDualStack {
			return nil, fmt.Errorf("DualStack is enabled but partition %s does not support DualStack", p.Name)
		}
		suffix = p.DualStackDNSSuffix
	}

	return &url.URL{
		Scheme: "https",
		Host:   host + "." + params.Region + "." + suffix,
	}, nil
}

// parseCustomEndpoint accepts an http or https base URL without a query. The
// path is kept as a prefix for every operation path.
func parseCustomEndpoint(endpoint string) (*url.URL, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q, %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q has unsupported scheme %q", endpoint, u.Scheme)
	}
	if len(u.Host) == 0 {
		return nil, fmt.Errorf("endpoint %q has no host", endpoint)
	}
	if len(u.RawQuery) != 0 || len(u.Fragment) != 0 {
		return nil, fmt.Errorf("endpoint %q must not include a query or fragment", endpoint)
	}

	return &url.URL{
		Scheme:  u.Scheme,
		Host:    u.Host,
		Path:    strings.TrimSuffix(u.Path, "/"),
		RawPath: strings.TrimSuffix(u.RawPath, "/"),
	}, nil
}
