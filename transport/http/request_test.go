package http

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestRequestRewindable(t *testing.T) {
	cases := map[string]struct {
		Stream    io.Reader
		ExpectErr string
	}{
		"rewindable": {
			Stream: bytes.NewReader([]byte(`{"Name":"BasicQueue"}`)),
		},
		"not rewindable": {
			Stream:    bytes.NewBuffer([]byte(`{"Name":"BasicQueue"}`)),
			ExpectErr: "stream is not seekable",
		},
		"nil stream": {},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := NewStackRequest().(*Request)

			req, err := req.SetStream(c.Stream)
			if err != nil {
				t.Fatalf("expect no error setting stream, %v", err)
			}

			err = req.RewindStream()
			if len(c.ExpectErr) != 0 {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expect error to contain %v, got %v", e, a)
				}
				return
			}
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
		})
	}
}

func TestRequestRewindAfterRead(t *testing.T) {
	req := NewStackRequest().(*Request)
	req, err := req.SetStream(strings.NewReader("tags"))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	b, _ := io.ReadAll(req.GetStream())
	if e, a := "tags", string(b); e != a {
		t.Fatalf("expect %v, got %v", e, a)
	}

	if err := req.RewindStream(); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	b, _ = io.ReadAll(req.GetStream())
	if e, a := "tags", string(b); e != a {
		t.Errorf("expect %v after rewind, got %v", e, a)
	}
}

func TestRequestBuild(t *testing.T) {
	cases := map[string]struct {
		Stream        io.Reader
		ContentLength int64
		ExpectBody    string
		ExpectNilBody bool
		ExpectLength  int64
	}{
		"no stream": {
			ContentLength: -1,
			ExpectNilBody: true,
			ExpectLength:  0,
		},
		"empty buffer dropped": {
			Stream:        &bytes.Buffer{},
			ContentLength: -1,
			ExpectNilBody: true,
			ExpectLength:  0,
		},
		"known length": {
			Stream:        strings.NewReader(`{"Name":"q"}`),
			ContentLength: 12,
			ExpectBody:    `{"Name":"q"}`,
			ExpectLength:  12,
		},
		"unknown length": {
			Stream:        strings.NewReader(`{}`),
			ContentLength: -1,
			ExpectBody:    `{}`,
			ExpectLength:  -1,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := NewStackRequest().(*Request)
			req, err := req.SetStream(c.Stream)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			req.ContentLength = c.ContentLength

			built := req.Build(context.Background())

			if e, a := c.ExpectLength, built.ContentLength; e != a {
				t.Errorf("expect %v content length, got %v", e, a)
			}
			if c.ExpectNilBody {
				if built.Body != nil {
					t.Errorf("expect nil body")
				}
				return
			}
			b, err := io.ReadAll(built.Body)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.ExpectBody, string(b); e != a {
				t.Errorf("expect %v body, got %v", e, a)
			}
		})
	}
}

func TestRequestIsHTTPS(t *testing.T) {
	req := NewStackRequest().(*Request)
	if req.IsHTTPS() {
		t.Errorf("expect empty URL not to be https")
	}
	req.URL.Scheme = "https"
	if !req.IsHTTPS() {
		t.Errorf("expect https")
	}
}
