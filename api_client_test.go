package connect_test

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	connect "github.com/aws-amplify/aws-sdk-connect-go"
	"github.com/aws-amplify/aws-sdk-connect-go/connecttest"
	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/logging"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

func newTestClient(t *testing.T, optFns ...func(*connect.Options)) (*connect.Client, *connecttest.Server) {
	t.Helper()

	srv := connecttest.NewServer()
	hs := httptest.NewServer(srv)
	t.Cleanup(hs.Close)

	client := connect.New(connect.Options{
		Region:       "us-west-2",
		BaseEndpoint: aws.String(hs.URL),
		HTTPClient:   hs.Client(),
	}, optFns...)
	return client, srv
}

type staticTokens []string

func (s *staticTokens) GetIdempotencyToken() (string, error) {
	if len(*s) == 0 {
		return "", fmt.Errorf("out of tokens")
	}
	t := (*s)[0]
	*s = (*s)[1:]
	return t, nil
}

func TestNilInput(t *testing.T) {
	client, srv := newTestClient(t)
	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()

	cv := reflect.ValueOf(client)
	var checked int
	for i := 0; i < cv.NumMethod(); i++ {
		method := cv.Type().Method(i)
		fn := cv.Method(i)
		if fn.Type().NumIn() != 3 || fn.Type().In(0) != ctxType || !fn.Type().IsVariadic() {
			continue
		}
		checked++

		t.Run(method.Name, func(t *testing.T) {
			out := fn.Call([]reflect.Value{
				reflect.ValueOf(context.Background()),
				reflect.Zero(fn.Type().In(1)),
			})
			err, _ := out[1].Interface().(error)
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if !out[0].IsNil() {
				t.Errorf("expected nil output, got %v", out[0])
			}

			var opErr *core.OperationError
			if !errors.As(err, &opErr) {
				t.Fatalf("expected operation error, got %T", err)
			}
			if e, a := method.Name, opErr.Operation(); e != a {
				t.Errorf("expected operation %v, got %v", e, a)
			}
			var invalid *core.InvalidParamsError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected invalid params error, got %v", err)
			}
		})
	}

	if e, a := 42, checked; e != a {
		t.Errorf("expected %v operations, got %v", e, a)
	}
	if e, a := 0, len(srv.Requests()); e != a {
		t.Errorf("expected %v requests, got %v", e, a)
	}
}

func TestInputValidation(t *testing.T) {
	cases := map[string]struct {
		Call   func(context.Context, *connect.Client) error
		Expect []string
	}{
		"missing label": {
			Call: func(ctx context.Context, c *connect.Client) error {
				_, err := c.DescribeQueue(ctx, &connect.DescribeQueueInput{InstanceId: aws.String("i")})
				return err
			},
			Expect: []string{"missing required field, DescribeQueueInput.QueueId."},
		},
		"below minimum": {
			Call: func(ctx context.Context, c *connect.Client) error {
				_, err := c.ListQueues(ctx, &connect.ListQueuesInput{
					InstanceId: aws.String("i"),
					MaxResults: aws.Int32(0),
				})
				return err
			},
			Expect: []string{"minimum field value of 1, ListQueuesInput.MaxResults."},
		},
		"nested required": {
			Call: func(ctx context.Context, c *connect.Client) error {
				_, err := c.CreateUser(ctx, &connect.CreateUserInput{
					InstanceId:         aws.String("i"),
					Username:           aws.String("jane"),
					PhoneConfig:        &types.UserPhoneConfig{},
					SecurityProfileIds: []string{"sp"},
					RoutingProfileId:   aws.String("rp"),
				})
				return err
			},
			Expect: []string{"missing required field, CreateUserInput.PhoneConfig.PhoneType."},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			client, srv := newTestClient(t)

			err := c.Call(context.Background(), client)
			var invalid *core.InvalidParamsError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected invalid params error, got %v", err)
			}

			var actual []string
			for _, e := range invalid.Errs() {
				actual = append(actual, e.Error())
			}
			if diff := cmp.Diff(c.Expect, actual); len(diff) != 0 {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
			if e, a := 0, len(srv.Requests()); e != a {
				t.Errorf("expected %v requests, got %v", e, a)
			}
		})
	}
}

func TestQueueLifecycle(t *testing.T) {
	ctx := context.Background()
	client, srv := newTestClient(t)
	inst := srv.AddInstance(types.Instance{InstanceAlias: aws.String("support")}, 0)

	var ids []string
	for _, name := range []string{"billing", "sales", "support"} {
		out, err := client.CreateQueue(ctx, &connect.CreateQueueInput{
			InstanceId:         inst.Id,
			Name:               aws.String(name),
			HoursOfOperationId: aws.String("hop-1"),
			MaxContacts:        aws.Int32(10),
			Tags:               map[string]string{"team": name},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.QueueId == nil || !strings.HasPrefix(aws.ToString(out.QueueArn), *inst.Arn+"/queue/") {
			t.Fatalf("unexpected create output %+v", out)
		}
		if _, ok := smithyhttp.GetRequestIDMetadata(out.ResultMetadata); !ok {
			t.Errorf("expected request id metadata")
		}
		ids = append(ids, *out.QueueId)
	}

	p := connect.NewListQueuesPaginator(client, &connect.ListQueuesInput{
		InstanceId: inst.Id,
		QueueTypes: []types.QueueType{types.QueueTypeStandard},
	}, func(o *connect.ListQueuesPaginatorOptions) {
		o.Limit = 2
	})
	var listed []string
	var pages int
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		pages++
		for _, q := range page.QueueSummaryList {
			listed = append(listed, aws.ToString(q.Id))
		}
	}
	if e, a := 2, pages; e != a {
		t.Errorf("expected %v pages, got %v", e, a)
	}
	sort.Strings(ids)
	if diff := cmp.Diff(ids, listed); len(diff) != 0 {
		t.Errorf("listed queues mismatch (-want +got):\n%s", diff)
	}

	var listQueries []string
	for _, r := range srv.Requests() {
		if strings.HasPrefix(r.Path, "/queues-summary/") {
			listQueries = append(listQueries, r.RawQuery)
		}
	}
	if e, a := 2, len(listQueries); e != a {
		t.Fatalf("expected %v list requests, got %v", e, a)
	}
	if strings.Contains(listQueries[0], "nextToken") {
		t.Errorf("expected first page without nextToken, got %q", listQueries[0])
	}
	if !strings.Contains(listQueries[1], "nextToken=") {
		t.Errorf("expected second page with nextToken, got %q", listQueries[1])
	}
	if !strings.Contains(listQueries[0], "queueTypes=STANDARD") {
		t.Errorf("expected queueTypes query, got %q", listQueries[0])
	}

	if _, err := client.UpdateQueueName(ctx, &connect.UpdateQueueNameInput{
		InstanceId: inst.Id,
		QueueId:    aws.String(ids[0]),
		Name:       aws.String("renamed"),
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	desc, err := client.DescribeQueue(ctx, &connect.DescribeQueueInput{InstanceId: inst.Id, QueueId: aws.String(ids[0])})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := "renamed", aws.ToString(desc.Queue.Name); e != a {
		t.Errorf("expected name %v, got %v", e, a)
	}
	if e, a := int32(10), aws.ToInt32(desc.Queue.MaxContacts); e != a {
		t.Errorf("expected max contacts %v, got %v", e, a)
	}
	if e, a := types.QueueStatusEnabled, desc.Queue.Status; e != a {
		t.Errorf("expected status %v, got %v", e, a)
	}
	if desc.Queue.LastModifiedTime == nil {
		t.Errorf("expected last modified time")
	}

	if _, err := client.DeleteQueue(ctx, &connect.DeleteQueueInput{InstanceId: inst.Id, QueueId: aws.String(ids[0])}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = client.DescribeQueue(ctx, &connect.DescribeQueueInput{InstanceId: inst.Id, QueueId: aws.String(ids[0])})
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		t.Fatalf("expected resource not found, got %v", err)
	}
	if e, a := "ResourceNotFoundException", notFound.ErrorCode(); e != a {
		t.Errorf("expected code %v, got %v", e, a)
	}
	var respErr *smithyhttp.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected response error, got %T", err)
	}
	if e, a := 404, respErr.HTTPStatusCode(); e != a {
		t.Errorf("expected status %v, got %v", e, a)
	}
}

func TestRequestHeaders(t *testing.T) {
	client, srv := newTestClient(t, func(o *connect.Options) {
		o.AppID = "connectctl"
		o.Credentials = credentials.NewStaticCredentialsProvider("AKID", "SECRET", "")
	})
	inst := srv.AddInstance(types.Instance{}, 0)

	if _, err := client.DescribeInstance(context.Background(), &connect.DescribeInstanceInput{InstanceId: inst.Id}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	reqs := srv.Requests()
	if e, a := 1, len(reqs); e != a {
		t.Fatalf("expected %v requests, got %v", e, a)
	}
	r := reqs[0]
	if e, a := "GET", r.Method; e != a {
		t.Errorf("expected method %v, got %v", e, a)
	}
	if e, a := "/instance/"+*inst.Id, r.Path; e != a {
		t.Errorf("expected path %v, got %v", e, a)
	}
	if e, a := "application/x-amz-json-1.1", r.Header.Get("Content-Type"); e != a {
		t.Errorf("expected content type %v, got %v", e, a)
	}
	if len(r.Body) != 0 {
		t.Errorf("expected no body, got %q", r.Body)
	}
	if a := r.Header.Get("Authorization"); !strings.HasPrefix(a, "AWS4-HMAC-SHA256 Credential=AKID/") {
		t.Errorf("expected sigv4 authorization, got %q", a)
	}
	if a := r.Header.Get("User-Agent"); !strings.Contains(a, "app#connectctl") {
		t.Errorf("expected app id in user agent, got %q", a)
	}
}

func TestServiceErrors(t *testing.T) {
	cases := map[string]struct {
		Code   string
		Status int
		Target func(error) bool
	}{
		"throttling": {
			Code:   "ThrottlingException",
			Status: 429,
			Target: func(err error) bool {
				var v *types.ThrottlingException
				return errors.As(err, &v)
			},
		},
		"access denied": {
			Code:   "AccessDeniedException",
			Status: 403,
			Target: func(err error) bool {
				var v *types.AccessDeniedException
				return errors.As(err, &v)
			},
		},
		"internal": {
			Code:   "InternalServiceException",
			Status: 500,
			Target: func(err error) bool {
				var v *types.InternalServiceException
				return errors.As(err, &v) && v.ErrorFault() == core.FaultServer
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			client, srv := newTestClient(t)
			inst := srv.AddInstance(types.Instance{}, 0)
			srv.FailNext(c.Code)

			_, err := client.DescribeInstance(context.Background(), &connect.DescribeInstanceInput{InstanceId: inst.Id})
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if !c.Target(err) {
				t.Errorf("expected %v, got %v", c.Code, err)
			}

			var apiErr core.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected api error, got %T", err)
			}
			if e, a := c.Code, apiErr.ErrorCode(); e != a {
				t.Errorf("expected code %v, got %v", e, a)
			}
			if e, a := "injected fault", apiErr.ErrorMessage(); e != a {
				t.Errorf("expected message %v, got %v", e, a)
			}

			var respErr *smithyhttp.ResponseError
			if !errors.As(err, &respErr) {
				t.Fatalf("expected response error, got %T", err)
			}
			if e, a := c.Status, respErr.HTTPStatusCode(); e != a {
				t.Errorf("expected status %v, got %v", e, a)
			}
		})
	}
}

func TestCreateVocabularyIdempotencyToken(t *testing.T) {
	tokens := staticTokens{"token-1"}
	client, srv := newTestClient(t, func(o *connect.Options) {
		o.IdempotencyTokenProvider = &tokens
	})
	inst := srv.AddInstance(types.Instance{}, 0)

	in := &connect.CreateVocabularyInput{
		InstanceId:     inst.Id,
		VocabularyName: aws.String("products"),
		LanguageCode:   types.VocabularyLanguageCodeEnUs,
		Content:        aws.String("Phrase\tIPA\tSoundsLike\tDisplayAs\n"),
	}
	first, err := client.CreateVocabulary(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := "token-1", aws.ToString(in.ClientToken); e != a {
		t.Errorf("expected token %v, got %v", e, a)
	}

	// The token provider is empty now, so a retry must reuse the filled token.
	second, err := client.CreateVocabulary(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := aws.ToString(first.VocabularyId), aws.ToString(second.VocabularyId); e != a {
		t.Errorf("expected repeated token to return %v, got %v", e, a)
	}

	reqs := srv.Requests()
	if !strings.Contains(string(reqs[0].Body), `"ClientToken":"token-1"`) {
		t.Errorf("expected client token in body, got %s", reqs[0].Body)
	}
	if strings.Contains(string(reqs[0].Body), "InstanceId") {
		t.Errorf("expected label member excluded from body, got %s", reqs[0].Body)
	}
}

var errStackInspected = errors.New("stack inspected")

func TestIdempotencyTokenMiddlewareRegistration(t *testing.T) {
	client, srv := newTestClient(t)

	cases := map[string]struct {
		Call        func(context.Context, func(*connect.Options)) error
		ExpectAdded bool
	}{
		"CreateVocabulary": {
			Call: func(ctx context.Context, fn func(*connect.Options)) error {
				_, err := client.CreateVocabulary(ctx, &connect.CreateVocabularyInput{}, fn)
				return err
			},
			ExpectAdded: true,
		},
		"CreateView": {
			Call: func(ctx context.Context, fn func(*connect.Options)) error {
				_, err := client.CreateView(ctx, &connect.CreateViewInput{}, fn)
				return err
			},
			ExpectAdded: true,
		},
		"CreateQueue": {
			Call: func(ctx context.Context, fn func(*connect.Options)) error {
				_, err := client.CreateQueue(ctx, &connect.CreateQueueInput{}, fn)
				return err
			},
		},
		"DescribeQueue": {
			Call: func(ctx context.Context, fn func(*connect.Options)) error {
				_, err := client.DescribeQueue(ctx, &connect.DescribeQueueInput{}, fn)
				return err
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var added bool
			err := c.Call(context.Background(), connect.WithAPIOptions(func(stack *middleware.Stack) error {
				_, added = stack.Initialize.Get(id.OperationIdempotencyTokenAutoFill)
				return errStackInspected
			}))
			if !errors.Is(err, errStackInspected) {
				t.Fatalf("expected stack inspection error, got %v", err)
			}
			if e, a := c.ExpectAdded, added; e != a {
				t.Errorf("expected token middleware added %v, got %v", e, a)
			}
		})
	}

	if e, a := 0, len(srv.Requests()); e != a {
		t.Errorf("expected %v requests, got %v", e, a)
	}
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	client, srv := newTestClient(t)
	inst := srv.AddInstance(types.Instance{}, 0)

	if _, err := client.TagResource(ctx, &connect.TagResourceInput{
		ResourceArn: inst.Arn,
		Tags:        map[string]string{"env": "prod", "team": "support", "cost": "42"},
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := client.UntagResource(ctx, &connect.UntagResourceInput{
		ResourceArn: inst.Arn,
		TagKeys:     []string{"cost", "team"},
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out, err := client.ListTagsForResource(ctx, &connect.ListTagsForResourceInput{ResourceArn: inst.Arn})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff(map[string]string{"env": "prod"}, out.Tags); len(diff) != 0 {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}

	for _, r := range srv.Requests() {
		if !strings.HasPrefix(r.Path, "/tags/arn%3Aaws%3Aconnect%3Aus-west-2%3A123456789012%3Ainstance%2F") {
			t.Errorf("expected escaped arn label, got %v", r.Path)
		}
	}
}

func TestInstanceActiveWaiter(t *testing.T) {
	cases := map[string]struct {
		Status      types.InstanceStatus
		Polls       int
		ExpectErr   bool
		ExpectCalls int
	}{
		"becomes active": {
			Polls:       2,
			ExpectCalls: 3,
		},
		"creation failed": {
			Status:      types.InstanceStatusCreationFailed,
			ExpectErr:   true,
			ExpectCalls: 1,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			client, srv := newTestClient(t)
			inst := srv.AddInstance(types.Instance{InstanceStatus: c.Status}, c.Polls)

			w := connect.NewInstanceActiveWaiter(client, func(o *connect.InstanceActiveWaiterOptions) {
				o.MinDelay = time.Millisecond
				o.MaxDelay = 2 * time.Millisecond
			})
			out, err := w.WaitForOutput(context.Background(), &connect.DescribeInstanceInput{InstanceId: inst.Id}, 5*time.Second)
			if c.ExpectErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if e, a := types.InstanceStatusActive, out.Instance.InstanceStatus; e != a {
					t.Errorf("expected status %v, got %v", e, a)
				}
			}
			if e, a := c.ExpectCalls, len(srv.Requests()); e != a {
				t.Errorf("expected %v calls, got %v", e, a)
			}
		})
	}
}

func TestVocabularyActiveWaiter(t *testing.T) {
	ctx := context.Background()
	client, srv := newTestClient(t)
	srv.VocabularyPolls = 1
	inst := srv.AddInstance(types.Instance{}, 0)

	created, err := client.CreateVocabulary(ctx, &connect.CreateVocabularyInput{
		InstanceId:     inst.Id,
		VocabularyName: aws.String("products"),
		LanguageCode:   types.VocabularyLanguageCodeEnUs,
		Content:        aws.String("Phrase\tIPA\tSoundsLike\tDisplayAs\n"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := types.VocabularyStateCreationInProgress, created.State; e != a {
		t.Errorf("expected state %v, got %v", e, a)
	}

	w := connect.NewVocabularyActiveWaiter(client, func(o *connect.VocabularyActiveWaiterOptions) {
		o.MinDelay = time.Millisecond
		o.MaxDelay = 2 * time.Millisecond
	})
	out, err := w.WaitForOutput(ctx, &connect.DescribeVocabularyInput{
		InstanceId:   inst.Id,
		VocabularyId: created.VocabularyId,
	}, 5*time.Second)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := types.VocabularyStateActive, out.Vocabulary.State; e != a {
		t.Errorf("expected state %v, got %v", e, a)
	}

	search, err := client.SearchVocabularies(ctx, &connect.SearchVocabulariesInput{
		InstanceId:     inst.Id,
		NameStartsWith: aws.String("prod"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := 1, len(search.VocabularySummaryList); e != a {
		t.Fatalf("expected %v vocabularies, got %v", e, a)
	}
}

func TestClientMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, srv := newTestClient(t, func(o *connect.Options) {
		o.MetricsRegisterer = reg
	})
	inst := srv.AddInstance(types.Instance{}, 0)

	ctx := context.Background()
	if _, err := client.DescribeInstance(ctx, &connect.DescribeInstanceInput{InstanceId: inst.Id}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := client.DescribeInstance(ctx, &connect.DescribeInstanceInput{InstanceId: aws.String("missing")}); err == nil {
		t.Fatalf("expected error, got none")
	}

	n, err := testutil.GatherAndCount(reg, "connect_client_calls_total")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := 2, n; e != a {
		t.Errorf("expected %v series, got %v", e, a)
	}
}

func TestClientLogMode(t *testing.T) {
	var mu sync.Mutex
	var logged []string
	logger := logging.LoggerFunc(func(c logging.Classification, format string, v ...interface{}) {
		mu.Lock()
		defer mu.Unlock()
		logged = append(logged, fmt.Sprintf(format, v...))
	})

	client, srv := newTestClient(t, func(o *connect.Options) {
		o.Logger = logger
		o.ClientLogMode = connect.LogRequest | connect.LogResponse
	})
	inst := srv.AddInstance(types.Instance{}, 0)

	if _, err := client.DescribeInstance(context.Background(), &connect.DescribeInstanceInput{InstanceId: inst.Id}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	all := strings.Join(logged, "\n")
	if !strings.Contains(all, "GET /instance/"+*inst.Id) {
		t.Errorf("expected request dump, got %q", all)
	}
	if !strings.Contains(all, "Response\n") {
		t.Errorf("expected response summary, got %q", all)
	}
}

func TestResolveEndpoint(t *testing.T) {
	cases := map[string]struct {
		Options   connect.Options
		Expect    string
		ExpectErr bool
	}{
		"regional": {
			Options: connect.Options{Region: "eu-west-2"},
			Expect:  "https://connect.eu-west-2.amazonaws.com",
		},
		"fips": {
			Options: connect.Options{Region: "us-east-1", UseFIPSEndpoint: true},
			Expect:  "https://connect-fips.us-east-1.amazonaws.com",
		},
		"base endpoint": {
			Options: connect.Options{BaseEndpoint: aws.String("http://localhost:8080")},
			Expect:  "http://localhost:8080",
		},
		"missing region": {
			ExpectErr: true,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := connect.ResolveEndpoint(c.Options)
			if c.ExpectErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if e, a := c.Expect, actual; e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}
