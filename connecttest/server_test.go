package connecttest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	var got [][]int
	var token string
	for {
		page, next, err := page(items, token, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got = append(got, page)
		if next == nil {
			break
		}
		token = *next
	}

	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}, {5}}, got); len(diff) != 0 {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}

	all, next, err := page(items, "", 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 5 || next != nil {
		t.Errorf("expected single page of 5 items, got %v %v", all, next)
	}

	if _, _, err := page(items, "not a token!", 2); err == nil {
		t.Errorf("expected error for malformed token")
	}
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestServerErrors(t *testing.T) {
	srv := NewServer()
	inst := srv.AddInstance(types.Instance{}, 0)

	cases := map[string]struct {
		Method, Path, Body string
		FailNext           string
		ExpectStatus       int
		ExpectType         string
	}{
		"unknown instance": {
			Method:       http.MethodGet,
			Path:         "/instance/missing",
			ExpectStatus: http.StatusNotFound,
			ExpectType:   "ResourceNotFoundException",
		},
		"injected throttle": {
			Method:       http.MethodGet,
			Path:         "/instance/" + *inst.Id,
			FailNext:     "ThrottlingException",
			ExpectStatus: http.StatusTooManyRequests,
			ExpectType:   "ThrottlingException",
		},
		"missing queue name": {
			Method:       http.MethodPut,
			Path:         "/queues/" + *inst.Id,
			Body:         `{"HoursOfOperationId":"hop"}`,
			ExpectStatus: http.StatusBadRequest,
			ExpectType:   "InvalidParameterException",
		},
		"unknown route": {
			Method:       http.MethodGet,
			Path:         "/no-such-operation",
			ExpectStatus: http.StatusNotFound,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if len(c.FailNext) != 0 {
				srv.FailNext(c.FailNext)
			}
			rec := do(t, srv, c.Method, c.Path, c.Body)

			if e, a := c.ExpectStatus, rec.Code; e != a {
				t.Errorf("expected status %v, got %v", e, a)
			}
			if e, a := c.ExpectType, rec.Header().Get("X-Amzn-ErrorType"); e != a {
				t.Errorf("expected error type %q, got %q", e, a)
			}
			if len(rec.Header().Get("X-Amzn-Requestid")) == 0 {
				t.Errorf("expected request id header")
			}
		})
	}
}

func TestDescribeInstancePolls(t *testing.T) {
	srv := NewServer()
	inst := srv.AddInstance(types.Instance{}, 2)

	var statuses []string
	for i := 0; i < 3; i++ {
		rec := do(t, srv, http.MethodGet, "/instance/"+*inst.Id, "")
		body, _ := io.ReadAll(rec.Body)
		switch {
		case strings.Contains(string(body), `"CREATION_IN_PROGRESS"`):
			statuses = append(statuses, "CREATION_IN_PROGRESS")
		case strings.Contains(string(body), `"ACTIVE"`):
			statuses = append(statuses, "ACTIVE")
		}
	}

	expect := []string{"CREATION_IN_PROGRESS", "CREATION_IN_PROGRESS", "ACTIVE"}
	if diff := cmp.Diff(expect, statuses); len(diff) != 0 {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestTagsEscapedARN(t *testing.T) {
	srv := NewServer()
	inst := srv.AddInstance(types.Instance{Tags: map[string]string{"a": "1"}}, 0)
	path := "/tags/" + url.PathEscape(*inst.Arn)

	if rec := do(t, srv, http.MethodPost, path, `{"tags":{"b":"2"}}`); rec.Code != http.StatusOK {
		t.Fatalf("expected tag to succeed, got %v %s", rec.Code, rec.Body)
	}
	if rec := do(t, srv, http.MethodDelete, path+"?tagKeys=a", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected untag to succeed, got %v %s", rec.Code, rec.Body)
	}

	rec := do(t, srv, http.MethodGet, path, "")
	if e, a := `{"tags":{"b":"2"}}`, rec.Body.String(); e != a {
		t.Errorf("expected body %s, got %s", e, a)
	}

	reqs := srv.Requests()
	if e, a := 3, len(reqs); e != a {
		t.Fatalf("expected %v requests, got %v", e, a)
	}
	if e, a := "tagKeys=a", reqs[1].RawQuery; e != a {
		t.Errorf("expected query %q, got %q", e, a)
	}
}
