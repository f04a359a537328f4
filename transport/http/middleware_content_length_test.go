package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
)

func TestComputeContentLength(t *testing.T) {
	createQueue := `{"Name":"billing","HoursOfOperationId":"hours-1"}`

	cases := map[string]struct {
		Preset    int64
		Body      io.Reader
		ExpectLen int64
		ExpectErr string
	}{
		"json body": {
			Preset:    -1,
			Body:      strings.NewReader(createQueue),
			ExpectLen: int64(len(createQueue)),
		},
		"buffered body": {
			Preset:    -1,
			Body:      bytes.NewBufferString(`{"tags":{"team":"support"}}`),
			ExpectLen: 27,
		},
		"no body": {
			Preset:    -1,
			ExpectLen: 0,
		},
		"already set": {
			Preset:    4,
			Body:      strings.NewReader(createQueue),
			ExpectLen: 4,
		},
		"unseekable body": {
			Preset:    -1,
			Body:      &onceReader{data: []byte(createQueue)},
			ExpectLen: -1,
		},
		"seek failure": {
			Preset:    -1,
			Body:      &failingSeeker{err: errors.New("disk detached")},
			ExpectLen: -1,
			ExpectErr: "disk detached",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := NewStackRequest().(*Request)
			req, err := req.SetStream(c.Body)
			if err != nil {
				t.Fatalf("expect no error setting body, got %v", err)
			}
			req.ContentLength = c.Preset

			ctx := middleware.WithOperationName(context.Background(), "CreateQueue")
			var m ComputeContentLength
			_, _, err = m.HandleBuild(ctx, middleware.BuildInput{Request: req}, nopBuildHandler{})
			if len(c.ExpectErr) != 0 {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
					t.Errorf("expect %q in error, got %v", e, a)
				}
				if e, a := "CreateQueue", err.Error(); !strings.Contains(a, e) {
					t.Errorf("expect %q in error, got %v", e, a)
				}
			} else if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			if e, a := c.ExpectLen, req.ContentLength; e != a {
				t.Errorf("expect content length %v, got %v", e, a)
			}
		})
	}
}

type nopBuildHandler struct{}

func (nopBuildHandler) HandleBuild(ctx context.Context, in middleware.BuildInput) (
	out middleware.BuildOutput, metadata middleware.Metadata, err error,
) {
	return out, metadata, nil
}

// onceReader has neither a length nor a seeker.
type onceReader struct {
	data []byte
}

func (r *onceReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

// failingSeeker accepts the position probe in SetStream and fails the
// length probe after it.
type failingSeeker struct {
	err   error
	seeks int
}

func (r *failingSeeker) Read(p []byte) (int, error) { return 0, io.EOF }

func (r *failingSeeker) Seek(offset int64, whence int) (int64, error) {
	r.seeks++
	if r.seeks > 1 {
		return 0, r.err
	}
	return 0, nil
}
