package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration is the content of the connectctl configuration file. Flags
// given on the command line take precedence over it.
type Configuration struct {
	// Region the requests are sent to.
	Region string `yaml:"region,omitempty"`

	// Profile names the shared config profile credentials are loaded from.
	Profile string `yaml:"profile,omitempty"`

	// Endpoint replaces the regional service endpoint.
	Endpoint string `yaml:"endpoint,omitempty"`

	// InstanceID is used by commands when --instance-id is not given.
	InstanceID string `yaml:"instanceId,omitempty"`

	Log struct {
		// Level is one of logrus' level names. Defaults to "info".
		Level string `yaml:"level,omitempty"`

		// Formatter is "text" or "json".
		Formatter string `yaml:"formatter,omitempty"`

		// Requests enables dumping requests and responses at the debug
		// level.
		Requests bool `yaml:"requests,omitempty"`
	} `yaml:"log,omitempty"`

	HTTP struct {
		// RetryMax is the number of retries for failed connections and 5xx
		// or 429 responses.
		RetryMax int `yaml:"retryMax,omitempty"`

		RetryWaitMin time.Duration `yaml:"retryWaitMin,omitempty"`
		RetryWaitMax time.Duration `yaml:"retryWaitMax,omitempty"`

		Timeout time.Duration `yaml:"timeout,omitempty"`
	} `yaml:"http,omitempty"`
}

func defaultConfiguration() *Configuration {
	config := &Configuration{}
	config.Log.Level = "info"
	config.Log.Formatter = "text"
	config.HTTP.RetryMax = 3
	config.HTTP.RetryWaitMin = 200 * time.Millisecond
	config.HTTP.RetryWaitMax = 5 * time.Second
	config.HTTP.Timeout = 30 * time.Second
	return config
}

// parseConfiguration reads a YAML configuration over the defaults.
func parseConfiguration(in []byte) (*Configuration, error) {
	config := defaultConfiguration()
	if err := yaml.Unmarshal(in, config); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	switch config.Log.Formatter {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unsupported logging formatter: %q", config.Log.Formatter)
	}
	if config.HTTP.RetryMax < 0 {
		return nil, fmt.Errorf("http.retryMax must not be negative")
	}
	if config.HTTP.RetryWaitMin > config.HTTP.RetryWaitMax {
		return nil, fmt.Errorf("http.retryWaitMin %v exceeds http.retryWaitMax %v",
			config.HTTP.RetryWaitMin, config.HTTP.RetryWaitMax)
	}
	return config, nil
}

func resolveConfiguration(path string) (*Configuration, error) {
	if len(path) == 0 {
		return defaultConfiguration(), nil
	}

	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfiguration(in)
}
