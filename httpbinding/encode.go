// Package httpbinding binds operation input members onto the URI path, query
// string and headers of an HTTP request.
package httpbinding

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Encoder accumulates the label, query and header bindings of one request.
// Labels are substituted into both the decoded path and its escaped form.
type Encoder struct {
	path, rawPath, scratch []byte

	query  url.Values
	header http.Header
}

// NewEncoder starts from the operation's path template and any query string
// and headers the request already carries.
func NewEncoder(pathTemplate, query string, header http.Header) (*Encoder, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("parse query %q, %w", query, err)
	}

	header = header.Clone()
	if header == nil {
		header = http.Header{}
	}
	return &Encoder{
		path:    []byte(pathTemplate),
		rawPath: []byte(pathTemplate),
		query:   values,
		header:  header,
	}, nil
}

// SetLabel substitutes {name} in the path template with value. Empty values
// are rejected so a label never collapses into an empty path segment.
func (e *Encoder) SetLabel(name, value string) (err error) {
	if len(value) == 0 {
		return fmt.Errorf("input member %s must not be empty", name)
	}
	if e.path, e.scratch, err = replacePathElement(e.path, e.scratch, name, value, false); err != nil {
		return err
	}
	e.rawPath, e.scratch, err = replacePathElement(e.rawPath, e.scratch, name, value, true)
	return err
}

// SetQuery replaces the query parameter name with value.
func (e *Encoder) SetQuery(name, value string) {
	e.query.Set(name, value)
}

// SetHeader replaces the header name with value.
func (e *Encoder) SetHeader(name, value string) {
	e.header.Set(strings.TrimSpace(name), value)
}

// Path returns the decoded path with the labels substituted so far.
func (e *Encoder) Path() string {
	return string(e.path)
}

// Encode writes the bound path, query and headers onto req.
func (e *Encoder) Encode(req *http.Request) (*http.Request, error) {
	req.URL.Path = string(e.path)
	req.URL.RawPath = string(e.rawPath)
	req.URL.RawQuery = e.query.Encode()
	req.Header = e.header
	return req, nil
}
