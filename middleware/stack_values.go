package middleware

import (
	"context"
	"reflect"
	"strings"
)

// WithStackValue adds a key value pair to the context that is intended to be
// scoped to a stack. Use ClearStackValues to get a new context with all stack
// values cleared.
func WithStackValue(ctx context.Context, key, value interface{}) context.Context {
	md, _ := ctx.Value(stackValuesKey{}).(*stackValues)

	md = withStackValue(md, key, value)
	return context.WithValue(ctx, stackValuesKey{}, md)
}

// ClearStackValues returns a context without any stack values.
func ClearStackValues(ctx context.Context) context.Context {
	return context.WithValue(ctx, stackValuesKey{}, nil)
}

// GetStackValue retrieves the value for a key from the context. Returns nil
// if the key is not set for the current stack.
func GetStackValue(ctx context.Context, key interface{}) interface{} {
	md, _ := ctx.Value(stackValuesKey{}).(*stackValues)
	if md == nil {
		return nil
	}

	return md.Value(key)
}

type stackValuesKey struct{}

type stackValues struct {
	key    interface{}
	value  interface{}
	parent *stackValues
}

func withStackValue(parent *stackValues, key, value interface{}) *stackValues {
	if key == nil {
		panic("nil key")
	}
	if !reflect.TypeOf(key).Comparable() {
		panic("key is not comparable")
	}
	return &stackValues{key: key, value: value, parent: parent}
}

func (c *stackValues) Value(key interface{}) interface{} {
	if c.key == key {
		return c.value
	}

	if c.parent == nil {
		return nil
	}

	return c.parent.Value(key)
}

func (c *stackValues) String() string {
	var str strings.Builder
	str.WriteRune('{')

	cc := c
	for cc != nil {
		str.WriteString("(" +
			reflect.TypeOf(cc.key).String() +
			": " +
			stringify(cc.value) +
			")")
		if cc.parent != nil {
			str.WriteString(" -> ")
		}
		cc = cc.parent
	}
	str.WriteRune('}')

	return str.String()
}

type stringer interface {
	String() string
}

func stringify(v interface{}) string {
	switch s := v.(type) {
	case stringer:
		return s.String()
	case string:
		return s
	}
	return "<not Stringer>"
}
