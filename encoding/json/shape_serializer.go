package json

import (
	"time"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
	smithytime "github.com/aws-amplify/aws-sdk-connect-go/time"
)

// ShapeSerializer implements marshaling of Smithy shapes to JSON.
//
// The serializer keeps a stack of the containers being written. Scalars are
// written under the member name when the top is an object, appended when it
// is an array, and complete a pending map entry when it is a Value.
type ShapeSerializer struct {
	root *Encoder
	head stack[any]

	opts ShapeSerializerOptions
}

// ShapeSerializerOptions configures ShapeSerializer.
type ShapeSerializerOptions struct {
	// Whether to respect smithy.api#jsonName on member shapes.
	UseJSONName bool

	// Whether top-level members carrying an HTTP binding trait are skipped.
	HTTPBindings bool
}

// discard is pushed for containers whose content must not be written.
type discard struct{}

var _ core.ShapeSerializer = (*ShapeSerializer)(nil)

// NewShapeSerializer returns a serializer writing a single JSON value.
func NewShapeSerializer(opts ...func(*ShapeSerializerOptions)) *ShapeSerializer {
	ss := &ShapeSerializer{root: NewEncoder()}
	for _, opt := range opts {
		opt(&ss.opts)
	}
	return ss
}

// Bytes returns the document written so far.
func (ss *ShapeSerializer) Bytes() []byte {
	return ss.root.Bytes()
}

// next resolves where the value for s goes. It returns false when the value
// must be skipped.
func (ss *ShapeSerializer) next(s *core.Schema) (Value, bool) {
	switch enc := ss.head.Top().(type) {
	case *Object:
		if ss.opts.HTTPBindings && ss.head.Len() == 1 && isHTTPBound(s) {
			return Value{}, false
		}
		return enc.Key(ss.memberName(s)), true
	case *Array:
		return enc.Value(), true
	case Value:
		ss.head.Pop()
		return enc, true
	case discard:
		return Value{}, false
	default:
		return ss.root.Value, true
	}
}

func (ss *ShapeSerializer) memberName(s *core.Schema) string {
	if ss.opts.UseJSONName {
		if jn, ok := core.SchemaTrait[*traits.JSONName](s); ok {
			return jn.Name
		}
	}
	return s.MemberName()
}

func isHTTPBound(s *core.Schema) bool {
	return core.HasTrait[*traits.HTTPLabel](s) ||
		core.HasTrait[*traits.HTTPQuery](s) ||
		core.HasTrait[*traits.HTTPHeader](s)
}

func (ss *ShapeSerializer) WriteInt32Ptr(s *core.Schema, v *int32) {
	if v != nil {
		ss.WriteInt32(s, *v)
	}
}

func (ss *ShapeSerializer) WriteInt64Ptr(s *core.Schema, v *int64) {
	if v != nil {
		ss.WriteInt64(s, *v)
	}
}

func (ss *ShapeSerializer) WriteFloat32Ptr(s *core.Schema, v *float32) {
	if v != nil {
		ss.WriteFloat32(s, *v)
	}
}

func (ss *ShapeSerializer) WriteFloat64Ptr(s *core.Schema, v *float64) {
	if v != nil {
		ss.WriteFloat64(s, *v)
	}
}

func (ss *ShapeSerializer) WriteBoolPtr(s *core.Schema, v *bool) {
	if v != nil {
		ss.WriteBool(s, *v)
	}
}

func (ss *ShapeSerializer) WriteStringPtr(s *core.Schema, v *string) {
	if v != nil {
		ss.WriteString(s, *v)
	}
}

func (ss *ShapeSerializer) WriteTimePtr(s *core.Schema, v *time.Time) {
	if v != nil {
		ss.WriteTime(s, *v)
	}
}

func (ss *ShapeSerializer) WriteBool(s *core.Schema, v bool) {
	if enc, ok := ss.next(s); ok {
		enc.Boolean(v)
	}
}

func (ss *ShapeSerializer) WriteInt32(s *core.Schema, v int32) {
	if enc, ok := ss.next(s); ok {
		enc.Integer(v)
	}
}

func (ss *ShapeSerializer) WriteInt64(s *core.Schema, v int64) {
	if enc, ok := ss.next(s); ok {
		enc.Long(v)
	}
}

func (ss *ShapeSerializer) WriteFloat32(s *core.Schema, v float32) {
	if enc, ok := ss.next(s); ok {
		enc.Float(v)
	}
}

func (ss *ShapeSerializer) WriteFloat64(s *core.Schema, v float64) {
	if enc, ok := ss.next(s); ok {
		enc.Double(v)
	}
}

func (ss *ShapeSerializer) WriteString(s *core.Schema, v string) {
	if enc, ok := ss.next(s); ok {
		enc.String(v)
	}
}

func (ss *ShapeSerializer) WriteBlob(s *core.Schema, v []byte) {
	if enc, ok := ss.next(s); ok {
		enc.Base64EncodeBytes(v)
	}
}

// WriteTime writes v in the format named by the member's timestampFormat
// trait, epoch seconds by default.
func (ss *ShapeSerializer) WriteTime(s *core.Schema, v time.Time) {
	enc, ok := ss.next(s)
	if !ok {
		return
	}

	format := traits.TimestampFormatEpochSeconds
	if tf, ok := core.SchemaTrait[*traits.TimestampFormat](s); ok {
		format = tf.Format
	}

	switch format {
	case traits.TimestampFormatDateTime:
		enc.String(smithytime.FormatDateTime(v))
	case traits.TimestampFormatHTTPDate:
		enc.String(smithytime.FormatHTTPDate(v))
	default:
		enc.Double(smithytime.FormatEpochSeconds(v))
	}
}

func (ss *ShapeSerializer) WriteNil(s *core.Schema) {
	if enc, ok := ss.next(s); ok {
		enc.Null()
	}
}

// WriteStruct opens an object for s and lets v write its members into it.
func (ss *ShapeSerializer) WriteStruct(s *core.Schema, v core.Serializable) {
	enc, ok := ss.next(s)
	if !ok {
		return
	}

	obj := enc.Object()
	ss.head.Push(obj)
	v.Serialize(ss)
	ss.head.Pop()
	obj.Close()
}

func (ss *ShapeSerializer) WriteList(s *core.Schema) {
	enc, ok := ss.next(s)
	if !ok {
		ss.head.Push(discard{})
		return
	}
	ss.head.Push(enc.Array())
}

func (ss *ShapeSerializer) CloseList() {
	if enc, ok := ss.head.Top().(*Array); ok {
		enc.Close()
	}
	ss.head.Pop()
}

func (ss *ShapeSerializer) WriteMap(s *core.Schema) {
	enc, ok := ss.next(s)
	if !ok {
		ss.head.Push(discard{})
		return
	}
	ss.head.Push(enc.Object())
}

// WriteKey starts a map entry. The next write supplies its value.
func (ss *ShapeSerializer) WriteKey(s *core.Schema, key string) {
	if enc, ok := ss.head.Top().(*Object); ok {
		ss.head.Push(enc.Key(key))
	}
}

func (ss *ShapeSerializer) CloseMap() {
	if enc, ok := ss.head.Top().(*Object); ok {
		enc.Close()
	}
	ss.head.Pop()
}
