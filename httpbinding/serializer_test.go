package httpbinding

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
)

var (
	schemaString     = core.NewSchema("smithy.api#String", core.ShapeTypeString)
	schemaInteger    = core.NewSchema("smithy.api#Integer", core.ShapeTypeInteger)
	schemaTimestamp  = core.NewSchema("smithy.api#Timestamp", core.ShapeTypeTimestamp)
	schemaStringList = core.NewSchema("com.example#StringList", core.ShapeTypeList,
		core.WithMember("member", schemaString))
	schemaTagMap = core.NewSchema("com.example#TagMap", core.ShapeTypeMap,
		core.WithMember("key", schemaString),
		core.WithMember("value", schemaString))

	schemaListInput = core.NewSchema("com.example#ListInput", core.ShapeTypeStructure,
		core.WithMember("InstanceId", schemaString, &traits.HTTPLabel{}),
		core.WithMember("Types", schemaStringList, &traits.HTTPQuery{Name: "types"}),
		core.WithMember("NextToken", schemaString, &traits.HTTPQuery{Name: "nextToken"}),
		core.WithMember("MaxResults", schemaInteger, &traits.HTTPQuery{Name: "maxResults"}),
		core.WithMember("Since", schemaTimestamp, &traits.HTTPQuery{Name: "since"}),
		core.WithMember("Modified", schemaTimestamp, &traits.HTTPHeader{Name: "X-Modified"}),
		core.WithMember("Name", schemaString),
		core.WithMember("Ids", schemaStringList),
		core.WithMember("Tags", schemaTagMap),
	)
)

type listInput struct {
	InstanceId *string
	Types      []string
	NextToken  *string
	MaxResults *int32
	Since      *time.Time
	Modified   *time.Time
	Name       *string
	Ids        []string
	Tags       map[string]string
}

func (v *listInput) Serialize(s core.ShapeSerializer) {
	s.WriteStringPtr(schemaListInput.Member("InstanceId"), v.InstanceId)
	if v.Types != nil {
		s.WriteList(schemaListInput.Member("Types"))
		for _, item := range v.Types {
			s.WriteString(schemaStringList.Member("member"), item)
		}
		s.CloseList()
	}
	s.WriteStringPtr(schemaListInput.Member("NextToken"), v.NextToken)
	s.WriteInt32Ptr(schemaListInput.Member("MaxResults"), v.MaxResults)
	s.WriteTimePtr(schemaListInput.Member("Since"), v.Since)
	s.WriteTimePtr(schemaListInput.Member("Modified"), v.Modified)
	s.WriteStringPtr(schemaListInput.Member("Name"), v.Name)
	if v.Ids != nil {
		s.WriteList(schemaListInput.Member("Ids"))
		for _, item := range v.Ids {
			s.WriteString(schemaStringList.Member("member"), item)
		}
		s.CloseList()
	}
	if v.Tags != nil {
		s.WriteMap(schemaListInput.Member("Tags"))
		for k, tv := range v.Tags {
			s.WriteKey(schemaTagMap.Member("key"), k)
			s.WriteString(schemaTagMap.Member("value"), tv)
		}
		s.CloseMap()
	}
}

func ptr[T any](v T) *T { return &v }

func TestShapeSerializer(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := map[string]struct {
		Input       *listInput
		ExpectPath  string
		ExpectQuery string
		ExpectHead  http.Header
		ExpectErr   string
	}{
		"label only": {
			Input:      &listInput{InstanceId: ptr("i-1")},
			ExpectPath: "/queues-summary/i-1",
		},
		"all bindings": {
			Input: &listInput{
				InstanceId: ptr("i-1"),
				Types:      []string{"STANDARD", "AGENT"},
				NextToken:  ptr("abc"),
				MaxResults: ptr(int32(25)),
				Since:      &ts,
				Modified:   &ts,
				Name:       ptr("body only"),
				Ids:        []string{"x", "y"},
				Tags:       map[string]string{"k": "v"},
			},
			ExpectPath:  "/queues-summary/i-1",
			ExpectQuery: "maxResults=25&nextToken=abc&since=2024-01-02T03%3A04%3A05Z&types=STANDARD%2CAGENT",
			ExpectHead:  http.Header{"X-Modified": {"Tue, 02 Jan 2024 03:04:05 GMT"}},
		},
		"empty list is not written": {
			Input:      &listInput{InstanceId: ptr("i-1"), Types: []string{}},
			ExpectPath: "/queues-summary/i-1",
		},
		"list item containing a comma": {
			Input:       &listInput{InstanceId: ptr("i-1"), Types: []string{"a", "b,c"}},
			ExpectPath:  "/queues-summary/i-1",
			ExpectQuery: "types=a%2Cb%2Cc",
		},
		"missing label": {
			Input:     &listInput{NextToken: ptr("abc")},
			ExpectErr: "input member InstanceId must not be empty",
		},
		"empty label": {
			Input:     &listInput{InstanceId: ptr("")},
			ExpectErr: "input member InstanceId must not be empty",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			enc, err := NewEncoder("/queues-summary/{InstanceId}", "", http.Header{})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			s := NewShapeSerializer(enc)
			c.Input.Serialize(s)

			err = s.Finish(schemaListInput)
			if len(c.ExpectErr) != 0 {
				if err == nil || !strings.Contains(err.Error(), c.ExpectErr) {
					t.Fatalf("expected error %q, got %v", c.ExpectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			req, _ := http.NewRequest(http.MethodGet, "https://connect.us-west-2.amazonaws.com", nil)
			if _, err := enc.Encode(req); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if e, a := c.ExpectPath, req.URL.Path; e != a {
				t.Errorf("expected path %v, got %v", e, a)
			}
			if e, a := c.ExpectQuery, req.URL.RawQuery; e != a {
				t.Errorf("expected query %v, got %v", e, a)
			}
			for k := range c.ExpectHead {
				if e, a := c.ExpectHead.Get(k), req.Header.Get(k); e != a {
					t.Errorf("expected header %s %v, got %v", k, e, a)
				}
			}
			if len(c.ExpectHead) == 0 && len(req.Header) != 0 {
				t.Errorf("expected no headers, got %v", req.Header)
			}
		})
	}
}
