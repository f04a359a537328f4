package restjson_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	connect "github.com/aws-amplify/aws-sdk-connect-go"
	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/internal/protocol/restjson"
	"github.com/aws-amplify/aws-sdk-connect-go/internal/schemas"
	smithytesting "github.com/aws-amplify/aws-sdk-connect-go/testing"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

func TestSerializeRequest(t *testing.T) {
	cases := map[string]struct {
		Op            *core.Schema
		Input         core.Serializable
		ExpectMethod  string
		ExpectPath    string
		ExpectRawPath string
		ExpectQuery   url.Values
		ExpectNoQuery []string
		ExpectBody    string
		ExpectErr     string
	}{
		"labels and query without body": {
			Op: schemas.DeleteAttachedFile,
			Input: &connect.DeleteAttachedFileInput{
				InstanceId:            aws.String("inst-1"),
				FileId:                aws.String("file-1"),
				AssociatedResourceArn: aws.String("arn:aws:connect:us-west-2:123456789012:instance/inst-1/contact/c-1"),
			},
			ExpectMethod: http.MethodDelete,
			ExpectPath:   "/attached-files/inst-1/file-1",
			ExpectQuery: url.Values{
				"associatedResourceArn": {"arn:aws:connect:us-west-2:123456789012:instance/inst-1/contact/c-1"},
			},
		},
		"list query first page": {
			Op: schemas.ListQueues,
			Input: &connect.ListQueuesInput{
				InstanceId: aws.String("inst-1"),
				QueueTypes: []types.QueueType{types.QueueTypeStandard, types.QueueTypeAgent},
				MaxResults: aws.Int32(10),
			},
			ExpectMethod:  http.MethodGet,
			ExpectPath:    "/queues-summary/inst-1",
			ExpectQuery:   url.Values{"queueTypes": {"STANDARD,AGENT"}, "maxResults": {"10"}},
			ExpectNoQuery: []string{"nextToken"},
		},
		"list query next page": {
			Op: schemas.ListQueues,
			Input: &connect.ListQueuesInput{
				InstanceId: aws.String("inst-1"),
				NextToken:  aws.String("abc=="),
			},
			ExpectMethod:  http.MethodGet,
			ExpectPath:    "/queues-summary/inst-1",
			ExpectQuery:   url.Values{"nextToken": {"abc=="}},
			ExpectNoQuery: []string{"maxResults", "queueTypes"},
		},
		"document body": {
			Op: schemas.CreateQueue,
			Input: &connect.CreateQueueInput{
				InstanceId:         aws.String("inst-1"),
				Name:               aws.String("billing"),
				HoursOfOperationId: aws.String("hop-1"),
				MaxContacts:        aws.Int32(0),
				Tags:               map[string]string{"team": "billing"},
			},
			ExpectMethod: http.MethodPut,
			ExpectPath:   "/queues/inst-1",
			ExpectBody:   `{"Name":"billing","HoursOfOperationId":"hop-1","MaxContacts":0,"Tags":{"team":"billing"}}`,
		},
		"escaped label": {
			Op:            schemas.ListTagsForResource,
			Input:         &connect.ListTagsForResourceInput{ResourceArn: aws.String("arn:aws:connect:us-west-2:123456789012:instance/inst-1")},
			ExpectMethod:  http.MethodGet,
			ExpectPath:    "/tags/arn:aws:connect:us-west-2:123456789012:instance/inst-1",
			ExpectRawPath: "/tags/arn%3Aaws%3Aconnect%3Aus-west-2%3A123456789012%3Ainstance%2Finst-1",
		},
		"empty label": {
			Op:        schemas.DescribeQueue,
			Input:     &connect.DescribeQueueInput{InstanceId: aws.String("inst-1"), QueueId: aws.String("")},
			ExpectErr: "QueueId must not be empty",
		},
		"missing label": {
			Op:        schemas.DescribeQueue,
			Input:     &connect.DescribeQueueInput{InstanceId: aws.String("inst-1")},
			ExpectErr: "QueueId must not be empty",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := smithyhttp.NewStackRequest().(*smithyhttp.Request)

			err := restjson.New().SerializeRequest(context.Background(), c.Op, c.Input, req)
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

			if e, a := c.ExpectMethod, req.Method; e != a {
				t.Errorf("expected method %v, got %v", e, a)
			}
			if e, a := c.ExpectPath, req.URL.Path; e != a {
				t.Errorf("expected path %v, got %v", e, a)
			}
			if len(c.ExpectRawPath) != 0 {
				if e, a := c.ExpectRawPath, req.URL.RawPath; e != a {
					t.Errorf("expected raw path %v, got %v", e, a)
				}
			}

			query := req.URL.Query()
			smithytesting.AssertHasQuery(t, c.ExpectQuery, query)
			smithytesting.AssertNotHasQuery(t, c.ExpectNoQuery, query)
			smithytesting.AssertHasHeader(t, http.Header{"Content-Type": {restjson.ContentType}}, req.Header)

			var body []byte
			if stream := req.GetStream(); stream != nil {
				body, _ = io.ReadAll(stream)
			}
			if len(c.ExpectBody) == 0 {
				if len(body) != 0 {
					t.Errorf("expected no body, got %s", body)
				}
				return
			}
			smithytesting.AssertJSONEqual(t, []byte(c.ExpectBody), body)
		})
	}
}

func newResponse(status int, header http.Header, body string) *smithyhttp.Response {
	if header == nil {
		header = http.Header{}
	}
	return &smithyhttp.Response{Response: &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}}
}

func TestDeserializeResponse(t *testing.T) {
	resp := newResponse(200, nil, `{
		"Queue": {
			"Name": "billing",
			"QueueId": "q-1",
			"MaxContacts": 5,
			"Status": "ENABLED",
			"LastModifiedTime": 1700000000.5,
			"NewMember": {"nested": [1, 2, {"deep": null}]},
			"Tags": {"team": "billing"}
		},
		"Unknown": "ignored"
	}`)

	var out connect.DescribeQueueOutput
	if err := restjson.New().DeserializeResponse(context.Background(), types.Errors, resp, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	q := out.Queue
	if q == nil {
		t.Fatalf("expected queue, got none")
	}
	if e, a := "billing", aws.ToString(q.Name); e != a {
		t.Errorf("expected name %v, got %v", e, a)
	}
	if e, a := int32(5), aws.ToInt32(q.MaxContacts); e != a {
		t.Errorf("expected max contacts %v, got %v", e, a)
	}
	if e, a := types.QueueStatusEnabled, q.Status; e != a {
		t.Errorf("expected status %v, got %v", e, a)
	}
	if e, a := int64(1700000000500), q.LastModifiedTime.UnixMilli(); e != a {
		t.Errorf("expected time %v, got %v", e, a)
	}
	if e, a := "billing", q.Tags["team"]; e != a {
		t.Errorf("expected tag %v, got %v", e, a)
	}
}

func TestDeserializeEmptyResponse(t *testing.T) {
	var out connect.DeleteQueueOutput
	if err := restjson.New().DeserializeResponse(context.Background(), types.Errors, newResponse(200, nil, ""), &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestDeserializeErrorResponse(t *testing.T) {
	cases := map[string]struct {
		Status int
		Header http.Header
		Body   string
		Assert func(*testing.T, error)
	}{
		"header code with uri suffix": {
			Status: 404,
			Header: http.Header{"X-Amzn-Errortype": {"ResourceNotFoundException:http://internal.amazon.com/coral/com.amazonaws.connect/"}},
			Body:   `{"Message":"queue not found"}`,
			Assert: func(t *testing.T, err error) {
				var v *types.ResourceNotFoundException
				if !errors.As(err, &v) {
					t.Fatalf("expected resource not found, got %T", err)
				}
				if e, a := "queue not found", v.ErrorMessage(); e != a {
					t.Errorf("expected message %v, got %v", e, a)
				}
			},
		},
		"body type with namespace": {
			Status: 429,
			Body:   `{"__type":"com.amazonaws.connect#ThrottlingException","Message":"slow down"}`,
			Assert: func(t *testing.T, err error) {
				var v *types.ThrottlingException
				if !errors.As(err, &v) {
					t.Fatalf("expected throttling, got %T", err)
				}
			},
		},
		"body code": {
			Status: 400,
			Body:   `{"code":"InvalidRequestException","message":"bad"}`,
			Assert: func(t *testing.T, err error) {
				var v *types.InvalidRequestException
				if !errors.As(err, &v) {
					t.Fatalf("expected invalid request, got %T", err)
				}
			},
		},
		"unmodeled": {
			Status: 503,
			Header: http.Header{"X-Amzn-Errortype": {"ServiceUnavailableException"}},
			Body:   `{"message":"try later"}`,
			Assert: func(t *testing.T, err error) {
				var v *core.GenericAPIError
				if !errors.As(err, &v) {
					t.Fatalf("expected generic api error, got %T", err)
				}
				if e, a := "ServiceUnavailableException", v.ErrorCode(); e != a {
					t.Errorf("expected code %v, got %v", e, a)
				}
				if e, a := "try later", v.ErrorMessage(); e != a {
					t.Errorf("expected message %v, got %v", e, a)
				}
				if e, a := core.FaultServer, v.ErrorFault(); e != a {
					t.Errorf("expected fault %v, got %v", e, a)
				}
			},
		},
		"no code": {
			Status: 400,
			Body:   "",
			Assert: func(t *testing.T, err error) {
				var v *core.GenericAPIError
				if !errors.As(err, &v) {
					t.Fatalf("expected generic api error, got %T", err)
				}
				if e, a := "UnknownError", v.ErrorCode(); e != a {
					t.Errorf("expected code %v, got %v", e, a)
				}
			},
		},
		"malformed body": {
			Status: 500,
			Body:   `{"__type":`,
			Assert: func(t *testing.T, err error) {
				var v *core.DeserializationError
				if !errors.As(err, &v) {
					t.Fatalf("expected deserialization error, got %T", err)
				}
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var out connect.DescribeQueueOutput
			err := restjson.New().DeserializeResponse(context.Background(), types.Errors, newResponse(c.Status, c.Header, c.Body), &out)
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			c.Assert(t, err)
		})
	}
}
