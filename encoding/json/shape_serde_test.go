package json

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
	smithytesting "github.com/aws-amplify/aws-sdk-connect-go/testing"
	"github.com/google/go-cmp/cmp"
)

var (
	schemaString    = core.NewSchema("smithy.api#String", core.ShapeTypeString)
	schemaInteger   = core.NewSchema("smithy.api#Integer", core.ShapeTypeInteger)
	schemaDouble    = core.NewSchema("smithy.api#Double", core.ShapeTypeDouble)
	schemaBoolean   = core.NewSchema("smithy.api#Boolean", core.ShapeTypeBoolean)
	schemaTimestamp = core.NewSchema("smithy.api#Timestamp", core.ShapeTypeTimestamp)

	schemaStringList = core.NewSchema("com.example#StringList", core.ShapeTypeList)
	schemaTagMap     = core.NewSchema("com.example#TagMap", core.ShapeTypeMap)
	schemaNode       = core.NewSchema("com.example#Node", core.ShapeTypeStructure)
	schemaNodeList   = core.NewSchema("com.example#NodeList", core.ShapeTypeList)
	schemaRecord     = core.NewSchema("com.example#Record", core.ShapeTypeStructure)
)

func init() {
	schemaStringList.Bind(core.WithMember("member", schemaString))
	schemaTagMap.Bind(core.WithMember("key", schemaString), core.WithMember("value", schemaString))
	schemaNodeList.Bind(core.WithMember("member", schemaNode))
	schemaNode.Bind(
		core.WithMember("Name", schemaString),
		core.WithMember("Children", schemaNodeList),
	)
	schemaRecord.Bind(
		core.WithMember("InstanceId", schemaString, &traits.HTTPLabel{}),
		core.WithMember("NextToken", schemaString, &traits.HTTPQuery{Name: "nextToken"}),
		core.WithMember("Name", schemaString),
		core.WithMember("Count", schemaInteger),
		core.WithMember("Weight", schemaDouble),
		core.WithMember("Enabled", schemaBoolean),
		core.WithMember("Created", schemaTimestamp),
		core.WithMember("Updated", schemaTimestamp, &traits.TimestampFormat{Format: traits.TimestampFormatDateTime}),
		core.WithMember("Ids", schemaStringList),
		core.WithMember("Tags", schemaTagMap),
		core.WithMember("Root", schemaNode),
		core.WithMember("Display", schemaString, &traits.JSONName{Name: "display_name"}),
	)
}

type node struct {
	Name     *string
	Children []node
}

func (v *node) Serialize(s core.ShapeSerializer) {
	s.WriteStringPtr(schemaNode.Member("Name"), v.Name)
	if v.Children != nil {
		s.WriteList(schemaNode.Member("Children"))
		for i := range v.Children {
			s.WriteStruct(schemaNodeList.Member("member"), &v.Children[i])
		}
		s.CloseList()
	}
}

func (v *node) Deserialize(d core.ShapeDeserializer) error {
	return core.ReadStruct(d, schemaNode, func(ms *core.Schema) error {
		switch ms.MemberName() {
		case "Name":
			return d.ReadStringPtr(ms, &v.Name)
		case "Children":
			return core.ReadList(d, ms, func() error {
				var item node
				ok, err := core.ReadValue(d, &item)
				if err != nil || !ok {
					return err
				}
				v.Children = append(v.Children, item)
				return nil
			})
		}
		return nil
	})
}

type record struct {
	InstanceId *string
	NextToken  *string
	Name       *string
	Count      *int32
	Weight     *float64
	Enabled    *bool
	Created    *time.Time
	Updated    *time.Time
	Ids        []string
	Tags       map[string]string
	Root       *node
	Display    *string
}

func (v *record) Serialize(s core.ShapeSerializer) {
	s.WriteStringPtr(schemaRecord.Member("InstanceId"), v.InstanceId)
	s.WriteStringPtr(schemaRecord.Member("NextToken"), v.NextToken)
	s.WriteStringPtr(schemaRecord.Member("Name"), v.Name)
	s.WriteInt32Ptr(schemaRecord.Member("Count"), v.Count)
	s.WriteFloat64Ptr(schemaRecord.Member("Weight"), v.Weight)
	s.WriteBoolPtr(schemaRecord.Member("Enabled"), v.Enabled)
	s.WriteTimePtr(schemaRecord.Member("Created"), v.Created)
	s.WriteTimePtr(schemaRecord.Member("Updated"), v.Updated)
	if v.Ids != nil {
		s.WriteList(schemaRecord.Member("Ids"))
		for _, id := range v.Ids {
			s.WriteString(schemaStringList.Member("member"), id)
		}
		s.CloseList()
	}
	if v.Tags != nil {
		s.WriteMap(schemaRecord.Member("Tags"))
		for k, tv := range v.Tags {
			s.WriteKey(schemaTagMap.Member("key"), k)
			s.WriteString(schemaTagMap.Member("value"), tv)
		}
		s.CloseMap()
	}
	if v.Root != nil {
		s.WriteStruct(schemaRecord.Member("Root"), v.Root)
	}
	s.WriteStringPtr(schemaRecord.Member("Display"), v.Display)
}

func (v *record) Deserialize(d core.ShapeDeserializer) error {
	return core.ReadStruct(d, schemaRecord, func(ms *core.Schema) error {
		switch ms.MemberName() {
		case "InstanceId":
			return d.ReadStringPtr(ms, &v.InstanceId)
		case "NextToken":
			return d.ReadStringPtr(ms, &v.NextToken)
		case "Name":
			return d.ReadStringPtr(ms, &v.Name)
		case "Count":
			return d.ReadInt32Ptr(ms, &v.Count)
		case "Weight":
			return d.ReadFloat64Ptr(ms, &v.Weight)
		case "Enabled":
			return d.ReadBoolPtr(ms, &v.Enabled)
		case "Created":
			return d.ReadTimePtr(ms, &v.Created)
		case "Updated":
			return d.ReadTimePtr(ms, &v.Updated)
		case "Ids":
			return core.ReadList(d, ms, func() error {
				var item string
				if err := d.ReadString(ms.Member("member"), &item); err != nil {
					return err
				}
				v.Ids = append(v.Ids, item)
				return nil
			})
		case "Tags":
			return core.ReadMap(d, ms, func(k string) error {
				var item string
				if err := d.ReadString(ms.Member("value"), &item); err != nil {
					return err
				}
				if v.Tags == nil {
					v.Tags = map[string]string{}
				}
				v.Tags[k] = item
				return nil
			})
		case "Root":
			return core.ReadStructPtr(d, &v.Root)
		case "Display":
			return d.ReadStringPtr(ms, &v.Display)
		}
		return nil
	})
}

func ptr[T any](v T) *T { return &v }

func serialize(v core.Serializable, opts ...func(*ShapeSerializerOptions)) []byte {
	s := NewShapeSerializer(opts...)
	s.WriteStruct(schemaRecord, v)
	return s.Bytes()
}

func TestShapeSerializer(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 250e6, time.UTC)

	cases := map[string]struct {
		Input  *record
		Opts   func(*ShapeSerializerOptions)
		Expect string
	}{
		"empty": {
			Input:  &record{},
			Expect: `{}`,
		},
		"scalars": {
			Input: &record{
				Name:    ptr("billing"),
				Count:   ptr(int32(5)),
				Weight:  ptr(0.5),
				Enabled: ptr(false),
				Created: &created,
				Updated: &created,
			},
			Expect: `{"Name":"billing","Count":5,"Weight":0.5,"Enabled":false,"Created":1714564800.25,"Updated":"2024-05-01T12:00:00.25Z"}`,
		},
		"containers": {
			Input: &record{
				Ids:  []string{"a", "b"},
				Tags: map[string]string{"k1": "v1", "k2": "v2"},
				Root: &node{
					Name:     ptr("root"),
					Children: []node{{Name: ptr("leaf")}, {}},
				},
			},
			Expect: `{"Ids":["a","b"],"Tags":{"k1":"v1","k2":"v2"},"Root":{"Name":"root","Children":[{"Name":"leaf"},{}]}}`,
		},
		"empty containers are written": {
			Input:  &record{Ids: []string{}, Tags: map[string]string{}},
			Expect: `{"Ids":[],"Tags":{}}`,
		},
		"http bound members written without bindings": {
			Input:  &record{InstanceId: ptr("i-1"), NextToken: ptr("abc")},
			Expect: `{"InstanceId":"i-1","NextToken":"abc"}`,
		},
		"http bound members skipped": {
			Input: &record{InstanceId: ptr("i-1"), NextToken: ptr("abc"), Name: ptr("n")},
			Opts: func(o *ShapeSerializerOptions) {
				o.HTTPBindings = true
			},
			Expect: `{"Name":"n"}`,
		},
		"json name": {
			Input: &record{Display: ptr("shown")},
			Opts: func(o *ShapeSerializerOptions) {
				o.UseJSONName = true
			},
			Expect: `{"display_name":"shown"}`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var opts []func(*ShapeSerializerOptions)
			if c.Opts != nil {
				opts = append(opts, c.Opts)
			}
			actual := serialize(c.Input, opts...)
			smithytesting.AssertJSONEqual(t, []byte(c.Expect), actual)
		})
	}
}

func TestShapeSerializerNested(t *testing.T) {
	s := NewShapeSerializer()
	s.WriteList(schemaNodeList)
	s.WriteStruct(schemaNodeList.Member("member"), &node{Name: ptr("a")})
	s.WriteNil(schemaNodeList.Member("member"))
	s.CloseList()

	if e, a := `[{"Name":"a"},null]`, string(s.Bytes()); e != a {
		t.Errorf("expected %s, got %s", e, a)
	}
}

func TestShapeDeserializer(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 250e6, time.UTC)

	cases := map[string]struct {
		Input  string
		Expect *record
	}{
		"scalars": {
			Input: `{"Name":"billing","Count":5,"Weight":0.5,"Enabled":true,"Created":1714564800.25,"Updated":"2024-05-01T12:00:00.25Z"}`,
			Expect: &record{
				Name:    ptr("billing"),
				Count:   ptr(int32(5)),
				Weight:  ptr(0.5),
				Enabled: ptr(true),
				Created: &created,
				Updated: &created,
			},
		},
		"timestamp string where epoch expected": {
			Input:  `{"Created":"2024-05-01T12:00:00.25Z"}`,
			Expect: &record{Created: &created},
		},
		"unknown keys are skipped": {
			Input:  `{"Unknown":{"deep":[1,{"x":null},[true]]},"Name":"n","Other":"x"}`,
			Expect: &record{Name: ptr("n")},
		},
		"nulls are absent": {
			Input:  `{"Name":null,"Count":null,"Ids":null,"Tags":null,"Root":null}`,
			Expect: &record{},
		},
		"scalar where structure expected": {
			Input:  `{"Root":"oops","Ids":7,"Tags":true}`,
			Expect: &record{},
		},
		"container kind mismatch": {
			Input:  `{"Root":["a"],"Ids":{"a":1},"Name":"kept"}`,
			Expect: &record{Name: ptr("kept")},
		},
		"null elements are dropped": {
			Input: `{"Ids":["a",null,"b"],"Tags":{"k1":"v1","k2":null}}`,
			Expect: &record{
				Ids:  []string{"a", "b"},
				Tags: map[string]string{"k1": "v1"},
			},
		},
		"recursive": {
			Input: `{"Root":{"Name":"r","Children":[{"Name":"c","Children":[]},null,"junk"]}}`,
			Expect: &record{
				Root: &node{Name: ptr("r"), Children: []node{{Name: ptr("c")}}},
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var actual record
			if err := core.Unmarshal(NewShapeDeserializer([]byte(c.Input)), &actual); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.Expect, &actual); len(diff) != 0 {
				t.Errorf("expect match\n%s", diff)
			}
		})
	}
}

func TestShapeDeserializerAbsentRoot(t *testing.T) {
	for _, input := range []string{`null`, `"text"`, `12`} {
		var actual record
		err := actual.Deserialize(NewShapeDeserializer([]byte(input)))
		if !errors.Is(err, core.ErrNoValue) {
			t.Errorf("%s: expect ErrNoValue, got %v", input, err)
		}
	}
}

func TestShapeDeserializerErrors(t *testing.T) {
	cases := map[string]string{
		"wrong scalar type": `{"Name":5}`,
		"int overflow":      `{"Count":4294967296}`,
		"fractional int":    `{"Count":1.5}`,
		"truncated":         `{"Name":"n"`,
		"bad timestamp":     `{"Created":"yesterday"}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var actual record
			if err := core.Unmarshal(NewShapeDeserializer([]byte(input)), &actual); err == nil {
				t.Errorf("expect error")
			}
		})
	}
}

func TestShapeDeserializerFloats(t *testing.T) {
	cases := map[string]float64{
		`"NaN"`:       math.NaN(),
		`"Infinity"`:  math.Inf(1),
		`"-Infinity"`: math.Inf(-1),
		`1.25`:        1.25,
	}

	for input, expect := range cases {
		var actual float64
		if err := NewShapeDeserializer([]byte(input)).ReadFloat64(schemaDouble, &actual); err != nil {
			t.Fatalf("%s: expect no error, got %v", input, err)
		}
		if math.IsNaN(expect) {
			if !math.IsNaN(actual) {
				t.Errorf("expect NaN, got %v", actual)
			}
			continue
		}
		if expect != actual {
			t.Errorf("expect %v, got %v", expect, actual)
		}
	}
}

func TestShapeRoundTrip(t *testing.T) {
	created := time.Date(2023, 11, 2, 8, 30, 15, 0, time.UTC)
	expect := &record{
		Name:    ptr("queue"),
		Count:   ptr(int32(-3)),
		Weight:  ptr(12.75),
		Enabled: ptr(true),
		Created: &created,
		Updated: &created,
		Ids:     []string{"x"},
		Tags:    map[string]string{"a": "b"},
		Root:    &node{Name: ptr("r"), Children: []node{{Name: ptr("c")}}},
		Display: ptr("d"),
	}

	b := serialize(expect)

	var actual record
	if err := core.Unmarshal(NewShapeDeserializer(b), &actual); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if diff := cmp.Diff(expect, &actual); len(diff) != 0 {
		t.Errorf("expect round trip to match\n%s", diff)
	}
}
