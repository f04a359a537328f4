package httpbinding

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
	smithytime "github.com/aws-amplify/aws-sdk-connect-go/time"
)

// ShapeSerializer serializes the top-level members of an operation input
// onto the URI path, query string and headers of a request according to their
// HTTP binding traits. Members without a binding, and everything nested below
// the input, are ignored; they belong to the body.
//
// List-valued query and header members are written as a single
// comma-separated value.
type ShapeSerializer struct {
	enc *Encoder

	depth  int
	list   *boundList
	labels map[string]bool
	err    error
}

type boundList struct {
	schema *core.Schema
	items  []string
}

var _ core.ShapeSerializer = (*ShapeSerializer)(nil)

// NewShapeSerializer returns a serializer writing bindings to enc.
func NewShapeSerializer(enc *Encoder) *ShapeSerializer {
	return &ShapeSerializer{
		enc:    enc,
		labels: map[string]bool{},
	}
}

// Bytes returns nil; bindings have no document form.
func (s *ShapeSerializer) Bytes() []byte {
	return nil
}

// Finish reports the first binding error, or a label member of the input
// that was never written.
func (s *ShapeSerializer) Finish(input *core.Schema) error {
	if s.err != nil {
		return s.err
	}
	for _, m := range input.Members() {
		if core.HasTrait[*traits.HTTPLabel](m) && !s.labels[m.MemberName()] {
			return fmt.Errorf("input member %s must not be empty", m.MemberName())
		}
	}
	return nil
}

func (s *ShapeSerializer) write(schema *core.Schema, v string) {
	if s.list != nil && s.depth == 1 {
		s.list.items = append(s.list.items, v)
		return
	}
	if s.depth > 0 {
		return
	}

	if core.HasTrait[*traits.HTTPLabel](schema) {
		name := schema.MemberName()
		if err := s.enc.SetLabel(name, v); err != nil && s.err == nil {
			s.err = err
		}
		s.labels[name] = true
	} else if q, ok := core.SchemaTrait[*traits.HTTPQuery](schema); ok {
		s.enc.SetQuery(q.Name, v)
	} else if h, ok := core.SchemaTrait[*traits.HTTPHeader](schema); ok {
		s.enc.SetHeader(h.Name, v)
	}
}

func isBound(schema *core.Schema) bool {
	return core.HasTrait[*traits.HTTPQuery](schema) || core.HasTrait[*traits.HTTPHeader](schema)
}

func (s *ShapeSerializer) WriteInt32(schema *core.Schema, v int32) {
	s.write(schema, strconv.FormatInt(int64(v), 10))
}

func (s *ShapeSerializer) WriteInt64(schema *core.Schema, v int64) {
	s.write(schema, strconv.FormatInt(v, 10))
}

func (s *ShapeSerializer) WriteInt32Ptr(schema *core.Schema, v *int32) {
	if v != nil {
		s.WriteInt32(schema, *v)
	}
}

func (s *ShapeSerializer) WriteInt64Ptr(schema *core.Schema, v *int64) {
	if v != nil {
		s.WriteInt64(schema, *v)
	}
}

func (s *ShapeSerializer) WriteFloat32(schema *core.Schema, v float32) {
	s.write(schema, strconv.FormatFloat(float64(v), 'f', -1, 32))
}

func (s *ShapeSerializer) WriteFloat64(schema *core.Schema, v float64) {
	s.write(schema, strconv.FormatFloat(v, 'f', -1, 64))
}

func (s *ShapeSerializer) WriteFloat32Ptr(schema *core.Schema, v *float32) {
	if v != nil {
		s.WriteFloat32(schema, *v)
	}
}

func (s *ShapeSerializer) WriteFloat64Ptr(schema *core.Schema, v *float64) {
	if v != nil {
		s.WriteFloat64(schema, *v)
	}
}

func (s *ShapeSerializer) WriteBool(schema *core.Schema, v bool) {
	s.write(schema, strconv.FormatBool(v))
}

func (s *ShapeSerializer) WriteBoolPtr(schema *core.Schema, v *bool) {
	if v != nil {
		s.WriteBool(schema, *v)
	}
}

func (s *ShapeSerializer) WriteString(schema *core.Schema, v string) {
	s.write(schema, v)
}

func (s *ShapeSerializer) WriteStringPtr(schema *core.Schema, v *string) {
	if v != nil {
		s.WriteString(schema, *v)
	}
}

func (s *ShapeSerializer) WriteBlob(schema *core.Schema, v []byte) {
	s.write(schema, base64.StdEncoding.EncodeToString(v))
}

// WriteTime uses the member's timestampFormat trait. Without one, headers
// carry http-dates and labels and query values carry date-times.
func (s *ShapeSerializer) WriteTime(schema *core.Schema, v time.Time) {
	format := traits.TimestampFormatDateTime
	if core.HasTrait[*traits.HTTPHeader](schema) {
		format = traits.TimestampFormatHTTPDate
	}
	if tf, ok := core.SchemaTrait[*traits.TimestampFormat](schema); ok {
		format = tf.Format
	}
	s.write(schema, formatTime(v, format))
}

func (s *ShapeSerializer) WriteTimePtr(schema *core.Schema, v *time.Time) {
	if v != nil {
		s.WriteTime(schema, *v)
	}
}

func formatTime(v time.Time, format string) string {
	switch format {
	case traits.TimestampFormatHTTPDate:
		return smithytime.FormatHTTPDate(v)
	case traits.TimestampFormatEpochSeconds:
		return strconv.FormatFloat(smithytime.FormatEpochSeconds(v), 'f', -1, 64)
	default:
		return smithytime.FormatDateTime(v)
	}
}

// WriteStruct ignores nested structures; only top-level members are bound.
func (s *ShapeSerializer) WriteStruct(schema *core.Schema, v core.Serializable) {}

func (s *ShapeSerializer) WriteNil(schema *core.Schema) {}

func (s *ShapeSerializer) WriteList(schema *core.Schema) {
	if s.depth == 0 && isBound(schema) {
		s.list = &boundList{schema: schema}
	}
	s.depth++
}

func (s *ShapeSerializer) CloseList() {
	s.depth--
	if s.depth != 0 || s.list == nil {
		return
	}

	l := s.list
	s.list = nil
	if len(l.items) == 0 {
		return
	}
	s.write(l.schema, strings.Join(l.items, ","))
}

func (s *ShapeSerializer) WriteMap(schema *core.Schema) {
	s.depth++
}

func (s *ShapeSerializer) WriteKey(schema *core.Schema, key string) {}

func (s *ShapeSerializer) CloseMap() {
	s.depth--
}
