package json

import (
	"github.com/aws-amplify/aws-sdk-connect-go/core"
)

// Codec builds JSON shape serializers and deserializers sharing one set of
// member naming rules.
type Codec struct {
	// UseJSONName selects the jsonName trait over the member name as the
	// object key.
	UseJSONName bool

	// HTTPBindings leaves top-level members bound to labels, query
	// parameters or headers out of the document.
	HTTPBindings bool
}

var _ core.Codec = (*Codec)(nil)

// Serializer returns a serializer writing one JSON document.
func (c *Codec) Serializer() core.ShapeSerializer {
	return NewShapeSerializer(func(o *ShapeSerializerOptions) {
		o.UseJSONName, o.HTTPBindings = c.UseJSONName, c.HTTPBindings
	})
}

// Deserializer returns a deserializer reading the JSON document p.
func (c *Codec) Deserializer(p []byte) core.ShapeDeserializer {
	return NewShapeDeserializer(p, func(o *ShapeDeserializerOptions) {
		o.UseJSONName = c.UseJSONName
	})
}

// stack tracks the containers a serde is nested in. Top returns the zero
// value when empty.
type stack[T any] []T

func (s stack[T]) Top() (v T) {
	if len(s) != 0 {
		v = s[len(s)-1]
	}
	return v
}

func (s *stack[T]) Push(v T) { *s = append(*s, v) }

func (s *stack[T]) Pop() { *s = (*s)[:len(*s)-1] }

func (s stack[T]) Len() int { return len(s) }
