package json

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
	smithytime "github.com/aws-amplify/aws-sdk-connect-go/time"
)

// ShapeDeserializer implements unmarshaling of JSON into Smithy shapes.
//
// A null where a scalar is expected leaves the destination untouched. A null
// or a scalar where a container is expected is consumed and reported as
// absent. Object keys without a matching member are skipped.
type ShapeDeserializer struct {
	dec  *json.Decoder
	head stack[*core.Schema]

	peeked    json.Token
	hasPeeked bool

	opts ShapeDeserializerOptions
}

// ShapeDeserializerOptions configures ShapeDeserializer.
type ShapeDeserializerOptions struct {
	// Whether to respect smithy.api#jsonName on member shapes.
	UseJSONName bool
}

// NewShapeDeserializer returns a deserializer reading the JSON document p.
func NewShapeDeserializer(p []byte, opts ...func(*ShapeDeserializerOptions)) *ShapeDeserializer {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()

	d := &ShapeDeserializer{dec: dec}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

var _ core.ShapeDeserializer = (*ShapeDeserializer)(nil)

func (d *ShapeDeserializer) token() (json.Token, error) {
	if d.hasPeeked {
		d.hasPeeked = false
		return d.peeked, nil
	}
	return d.dec.Token()
}

func (d *ShapeDeserializer) peek() (json.Token, error) {
	if !d.hasPeeked {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		d.peeked, d.hasPeeked = tok, true
	}
	return d.peeked, nil
}

func (d *ShapeDeserializer) more() bool {
	if d.hasPeeked {
		delim, ok := d.peeked.(json.Delim)
		return !ok || (delim != '}' && delim != ']')
	}
	return d.dec.More()
}

// null consumes the next token if it is a JSON null.
func (d *ShapeDeserializer) null() (bool, error) {
	tok, err := d.peek()
	if err != nil {
		return false, err
	}
	if tok == nil {
		d.hasPeeked = false
		return true, nil
	}
	return false, nil
}

func (d *ShapeDeserializer) expectDelim(e json.Delim) error {
	tok, err := d.token()
	if err != nil {
		return err
	}

	if a, ok := tok.(json.Delim); ok {
		if e != a {
			return fmt.Errorf("expect %s, got %s", e, a)
		}
		return nil
	}

	return fmt.Errorf("expect delim, got %T", tok)
}

// openContainer consumes the opening delimiter e. Any other value is skipped
// and reported as absent; a mismatched delimiter is an error.
func (d *ShapeDeserializer) openContainer(e json.Delim) (bool, error) {
	tok, err := d.peek()
	if err != nil {
		return false, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		d.hasPeeked = false
		return false, nil
	}
	if delim != e {
		if delim == '{' || delim == '[' {
			return false, d.skip()
		}
		return false, fmt.Errorf("expect %s, got %s", e, delim)
	}

	d.hasPeeked = false
	return true, nil
}

func (d *ShapeDeserializer) ReadInt32(s *core.Schema, v *int32) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	n, err := d.readInt(math.MinInt32, math.MaxInt32)
	if err != nil {
		return err
	}
	*v = int32(n)
	return nil
}

func (d *ShapeDeserializer) ReadInt64(s *core.Schema, v *int64) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	n, err := d.readInt(math.MinInt64, math.MaxInt64)
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (d *ShapeDeserializer) ReadInt32Ptr(s *core.Schema, v **int32) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	if *v == nil {
		*v = new(int32)
	}
	return d.ReadInt32(s, *v)
}

func (d *ShapeDeserializer) ReadInt64Ptr(s *core.Schema, v **int64) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	if *v == nil {
		*v = new(int64)
	}
	return d.ReadInt64(s, *v)
}

func (d *ShapeDeserializer) readInt(min, max int64) (int64, error) {
	tok, err := d.token()
	if err != nil {
		return 0, err
	}

	num, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", tok)
	}

	n, err := num.Int64()
	if err != nil {
		return 0, err
	}

	if n < min || n > max {
		return 0, fmt.Errorf("int %d exceeds range [%d, %d]", n, min, max)
	}

	return n, nil
}

func (d *ShapeDeserializer) ReadFloat32(s *core.Schema, v *float32) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	n, err := d.readFloat()
	if err != nil {
		return err
	}
	*v = float32(n)
	return nil
}

func (d *ShapeDeserializer) ReadFloat64(s *core.Schema, v *float64) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	n, err := d.readFloat()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (d *ShapeDeserializer) ReadFloat32Ptr(s *core.Schema, v **float32) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	if *v == nil {
		*v = new(float32)
	}
	return d.ReadFloat32(s, *v)
}

func (d *ShapeDeserializer) ReadFloat64Ptr(s *core.Schema, v **float64) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	if *v == nil {
		*v = new(float64)
	}
	return d.ReadFloat64(s, *v)
}

func (d *ShapeDeserializer) readFloat() (float64, error) {
	tok, err := d.token()
	if err != nil {
		return 0, err
	}

	switch v := tok.(type) {
	case json.Number:
		return v.Float64()
	case string:
		switch {
		case strings.EqualFold(v, "NaN"):
			return math.NaN(), nil
		case strings.EqualFold(v, "Infinity"):
			return math.Inf(1), nil
		case strings.EqualFold(v, "-Infinity"):
			return math.Inf(-1), nil
		default:
			return 0, fmt.Errorf("unexpected string value for float: %s", v)
		}
	default:
		return 0, fmt.Errorf("expected number, got %T", tok)
	}
}

func (d *ShapeDeserializer) ReadBool(s *core.Schema, v *bool) error {
	if null, err := d.null(); null || err != nil {
		return err
	}

	tok, err := d.token()
	if err != nil {
		return err
	}

	b, ok := tok.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", tok)
	}

	*v = b
	return nil
}

func (d *ShapeDeserializer) ReadBoolPtr(s *core.Schema, v **bool) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	if *v == nil {
		*v = new(bool)
	}
	return d.ReadBool(s, *v)
}

func (d *ShapeDeserializer) ReadString(s *core.Schema, v *string) error {
	if null, err := d.null(); null || err != nil {
		return err
	}

	str, err := d.readString()
	if err != nil {
		return err
	}

	*v = str
	return nil
}

func (d *ShapeDeserializer) readString() (string, error) {
	tok, err := d.token()
	if err != nil {
		return "", err
	}

	str, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", tok)
	}
	return str, nil
}

func (d *ShapeDeserializer) ReadStringPtr(s *core.Schema, v **string) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	if *v == nil {
		*v = new(string)
	}
	return d.ReadString(s, *v)
}

func (d *ShapeDeserializer) ReadBlob(s *core.Schema, v *[]byte) error {
	if null, err := d.null(); null || err != nil {
		return err
	}

	str, err := d.readString()
	if err != nil {
		return err
	}

	b, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return fmt.Errorf("decode blob: %w", err)
	}

	*v = b
	return nil
}

// ReadTime reads either epoch seconds or a date-time string, whatever the
// member's timestampFormat trait says. http-date strings are accepted when
// the trait asks for them.
func (d *ShapeDeserializer) ReadTime(s *core.Schema, v *time.Time) error {
	if null, err := d.null(); null || err != nil {
		return err
	}

	tok, err := d.token()
	if err != nil {
		return err
	}

	switch tv := tok.(type) {
	case json.Number:
		f, err := tv.Float64()
		if err != nil {
			return err
		}
		*v = smithytime.ParseEpochSeconds(f)
		return nil
	case string:
		var t time.Time
		if tf, ok := core.SchemaTrait[*traits.TimestampFormat](s); ok && tf.Format == traits.TimestampFormatHTTPDate {
			t, err = smithytime.ParseHTTPDate(tv)
		} else {
			t, err = smithytime.ParseDateTime(tv)
		}
		if err != nil {
			return err
		}
		*v = t
		return nil
	default:
		return fmt.Errorf("expected timestamp, got %T", tok)
	}
}

func (d *ShapeDeserializer) ReadTimePtr(s *core.Schema, v **time.Time) error {
	if null, err := d.null(); null || err != nil {
		return err
	}
	if *v == nil {
		*v = new(time.Time)
	}
	return d.ReadTime(s, *v)
}

func (d *ShapeDeserializer) ReadList(s *core.Schema) (bool, error) {
	return d.openContainer('[')
}

// ReadListItem skips null elements.
func (d *ShapeDeserializer) ReadListItem(s *core.Schema) (bool, error) {
	for {
		if !d.more() {
			return false, d.expectDelim(']')
		}

		null, err := d.null()
		if err != nil {
			return false, err
		}
		if !null {
			return true, nil
		}
	}
}

func (d *ShapeDeserializer) ReadMap(s *core.Schema) (bool, error) {
	return d.openContainer('{')
}

// ReadMapKey skips entries whose value is null.
func (d *ShapeDeserializer) ReadMapKey(s *core.Schema) (string, bool, error) {
	for {
		if !d.more() {
			return "", false, d.expectDelim('}')
		}

		key, err := d.readString()
		if err != nil {
			return "", false, err
		}

		null, err := d.null()
		if err != nil {
			return "", false, err
		}
		if !null {
			return key, true, nil
		}
	}
}

func (d *ShapeDeserializer) ReadStruct(s *core.Schema) (bool, error) {
	ok, err := d.openContainer('{')
	if err != nil || !ok {
		return false, err
	}

	d.head.Push(s)
	return true, nil
}

func (d *ShapeDeserializer) ReadStructMember() (*core.Schema, error) {
	schema := d.head.Top()
	if schema == nil {
		return nil, fmt.Errorf("ReadStructMember called without ReadStruct")
	}

	for {
		if !d.more() {
			d.head.Pop()
			return nil, d.expectDelim('}')
		}

		key, err := d.readString()
		if err != nil {
			return nil, err
		}

		if member := d.member(schema, key); member != nil {
			return member, nil
		}
		if err := d.skip(); err != nil {
			return nil, err
		}
	}
}

func (d *ShapeDeserializer) member(s *core.Schema, key string) *core.Schema {
	if d.opts.UseJSONName {
		for _, m := range s.Members() {
			if jn, ok := core.SchemaTrait[*traits.JSONName](m); ok && jn.Name == key {
				return m
			}
		}
	}
	return s.Member(key)
}

// used to skip over a struct member that we didn't have a schema for, though
// it also calls itself
func (d *ShapeDeserializer) skip() error {
	tok, err := d.token()
	if err != nil {
		return err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			for d.more() {
				if _, err := d.token(); err != nil { // the key
					return err
				}
				if err := d.skip(); err != nil { // the value
					return err
				}
			}
			_, err := d.token() // the '}'
			return err
		case '[':
			for d.more() {
				if err := d.skip(); err != nil {
					return err
				}
			}
			_, err := d.token() // the ']'
			return err
		default:
			return fmt.Errorf("unexpected delimiter: %v", v)
		}
	default:
		return nil // scalar, don't have to do anything else
	}
}
