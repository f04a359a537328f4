package core

import (
	"context"
	"errors"
	"time"
)

// ClientProtocol defines the interface through which client-side operation
// request/responses are (de)serialized across the wire.
//
// TRequest and TResponse represent the input and output transport types for
// the protocol. In most cases this corresponds to *smithyhttp.Request and
// *smithyhttp.Response.
type ClientProtocol[TRequest, TResponse any] interface {
	ID() string

	// SerializeRequest binds the input of the operation described by the
	// schema onto the transport request.
	SerializeRequest(ctx context.Context, op *Schema, in Serializable, req TRequest) error

	// DeserializeResponse deserializes the transport response into the
	// modeled output, or into a modeled error found in the registry.
	DeserializeResponse(ctx context.Context, types *TypeRegistry, resp TResponse, out Deserializable) error
}

// Codec provides implementations of ShapeSerializer and ShapeDeserializer to
// be used by a Protocol.
type Codec interface {
	Serializer() ShapeSerializer
	Deserializer([]byte) ShapeDeserializer
}

// ShapeSerializer implements the marshaling of an in-code representation of a
// shape to an unspecified data format, which is determined by the
// implementation.
//
// Structures describe themselves through Serializable: WriteStruct opens the
// structure and hands the serializer back to it so it can write its members.
type ShapeSerializer interface {
	Bytes() []byte

	WriteInt32(*Schema, int32)
	WriteInt64(*Schema, int64)
	WriteInt32Ptr(*Schema, *int32)
	WriteInt64Ptr(*Schema, *int64)

	WriteFloat32(*Schema, float32)
	WriteFloat64(*Schema, float64)
	WriteFloat32Ptr(*Schema, *float32)
	WriteFloat64Ptr(*Schema, *float64)

	WriteBool(*Schema, bool)
	WriteBoolPtr(*Schema, *bool)

	WriteString(*Schema, string)
	WriteStringPtr(*Schema, *string)

	WriteBlob(*Schema, []byte)
	WriteTime(*Schema, time.Time)
	WriteTimePtr(*Schema, *time.Time)

	WriteStruct(*Schema, Serializable)

	WriteNil(*Schema)

	WriteList(*Schema)
	CloseList()

	WriteMap(*Schema)
	WriteKey(*Schema, string)
	CloseMap()
}

// ShapeDeserializer implements the unmarshaling from some unspecified data
// format to an encoded shape.
//
// Scalar reads leave the destination untouched when the payload holds a null.
// Container reads report whether a container was present: a null, a scalar
// or the other kind of container where one was expected is consumed and
// reported as absent.
type ShapeDeserializer interface {
	ReadInt32(*Schema, *int32) error
	ReadInt64(*Schema, *int64) error
	ReadInt32Ptr(*Schema, **int32) error
	ReadInt64Ptr(*Schema, **int64) error

	ReadFloat32(*Schema, *float32) error
	ReadFloat64(*Schema, *float64) error
	ReadFloat32Ptr(*Schema, **float32) error
	ReadFloat64Ptr(*Schema, **float64) error

	ReadBool(*Schema, *bool) error
	ReadBoolPtr(*Schema, **bool) error

	ReadString(*Schema, *string) error
	ReadStringPtr(*Schema, **string) error

	ReadTime(*Schema, *time.Time) error
	ReadTimePtr(*Schema, **time.Time) error

	ReadBlob(*Schema, *[]byte) error

	ReadList(*Schema) (bool, error)
	// returns true if there's another item in the list, false at the end and
	// an error if a decode error is encountered. use other deserializer
	// methods to read the expected type from the deserializer
	ReadListItem(*Schema) (bool, error)

	ReadMap(*Schema) (bool, error)
	// the bool will be true if there's another key in the map and the string
	// will have the value of that key, with any decode error in the error. use
	// other deserializer methods to read the expected type.
	ReadMapKey(*Schema) (string, bool, error)

	ReadStruct(*Schema) (bool, error)
	// returns the member schema for the current struct, nil when there are no
	// more members, with any decode error in the error. use other deserializer
	// methods to read the expected type.
	ReadStructMember() (*Schema, error)
}

// Serializable is an entity that can describe itself to a ShapeSerializer to
// be encoded to some format.
//
// Unlike the standard library marshaler interfaces, which idiomatically encode
// to []byte, the output format and data type here is not specified at all.
// HTTP-binding JSON protocols need to serialize some members to bytes (the
// HTTP request body) and others directly to fields on the HTTP request itself
// (e.g. the URI path).
type Serializable interface {
	Serialize(ShapeSerializer)
}

// Deserializable is an entity that can unmarshal itself from a
// ShapeDeserializer.
type Deserializable interface {
	Deserialize(ShapeDeserializer) error
}

// DeserializableError is implemented by modeled error types for a service.
type DeserializableError interface {
	Deserializable
	error
}

// ErrNoValue is returned by Deserialize implementations of structures when
// the payload holds no object where the structure was expected.
var ErrNoValue = errors.New("no value present")

// ReadStruct is a utility API for generated clients. It returns ErrNoValue
// when the payload has no object at the current position.
func ReadStruct(d ShapeDeserializer, schema *Schema, memberFn func(*Schema) error) error {
	ok, err := d.ReadStruct(schema)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoValue
	}

	for {
		ms, err := d.ReadStructMember()
		if err != nil {
			return err
		}
		if ms == nil {
			return nil
		}

		if err := memberFn(ms); err != nil {
			return err
		}
	}
}

// ReadList is a utility API for generated clients. An absent list is not an
// error; memberFn is simply never called.
func ReadList(d ShapeDeserializer, schema *Schema, memberFn func() error) error {
	ok, err := d.ReadList(schema)
	if err != nil || !ok {
		return err
	}

	item := schema.Member("member")
	for {
		ok, err := d.ReadListItem(item)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := memberFn(); err != nil {
			return err
		}
	}
}

// ReadMap is a utility API for generated clients. An absent map is not an
// error; memberFn is simply never called.
func ReadMap(d ShapeDeserializer, schema *Schema, memberFn func(string) error) error {
	ok, err := d.ReadMap(schema)
	if err != nil || !ok {
		return err
	}

	key := schema.Member("key")
	for {
		k, ok, err := d.ReadMapKey(key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := memberFn(k); err != nil {
			return err
		}
	}
}

// Unmarshal reads v from d. A payload without a value leaves v unchanged.
func Unmarshal(d ShapeDeserializer, v Deserializable) error {
	if err := v.Deserialize(d); err != nil && !errors.Is(err, ErrNoValue) {
		return err
	}
	return nil
}

// ReadValue reads a structure held in a list or a map. It reports false when
// the payload held no object.
func ReadValue(d ShapeDeserializer, v Deserializable) (bool, error) {
	if err := v.Deserialize(d); err != nil {
		if errors.Is(err, ErrNoValue) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadStructPtr reads an optional nested structure into *p. *p is left nil
// when the payload held no object.
func ReadStructPtr[T any, PT interface {
	*T
	Deserializable
}](d ShapeDeserializer, p **T) error {
	v := PT(new(T))
	ok, err := ReadValue(d, v)
	if err != nil || !ok {
		return err
	}

	*p = (*T)(v)
	return nil
}

// ReadEnum reads a string enum value into v. A null leaves v unchanged.
func ReadEnum[T ~string](d ShapeDeserializer, s *Schema, v *T) error {
	var str *string
	if err := d.ReadStringPtr(s, &str); err != nil {
		return err
	}
	if str != nil {
		*v = T(*str)
	}
	return nil
}
