package core

import (
	"strings"
)

// ShapeType is a type of Smithy shape.
// See https://smithy.io/2.0/spec/idl.html#defining-shapes.
type ShapeType int

// Enumerates ShapeType per the Smithy IDL.
const (
	ShapeTypeBlob ShapeType = iota
	ShapeTypeBoolean
	ShapeTypeString
	ShapeTypeTimestamp
	ShapeTypeInteger
	ShapeTypeLong
	ShapeTypeFloat
	ShapeTypeDouble
	ShapeTypeEnum
	ShapeTypeList
	ShapeTypeMap
	ShapeTypeStructure
	ShapeTypeUnion
	ShapeTypeMember
	ShapeTypeOperation
)

var shapeTypeNames = [...]string{
	"blob", "boolean", "string", "timestamp", "integer", "long", "float",
	"double", "enum", "list", "map", "structure", "union", "member",
	"operation",
}

func (t ShapeType) String() string {
	if int(t) < len(shapeTypeNames) {
		return shapeTypeNames[t]
	}
	return "unknown"
}

// ShapeID fields of a Smithy shape ID.
type ShapeID struct {
	Namespace, Name, Member string
}

func (id ShapeID) String() string {
	s := id.Namespace + "#" + id.Name
	if id.Member != "" {
		s += "$" + id.Member
	}
	return s
}

func stoid(s string) ShapeID {
	ns, n, _ := strings.Cut(s, "#")
	n, m, _ := strings.Cut(n, "$")
	return ShapeID{ns, n, m}
}

// Schema encodes information about a shape from a Smithy model.
//
// Generated clients use schemas at runtime to dynamically (de)serialize
// request/responses. A member schema refers to its target rather than copying
// it, which lets a structure contain (transitively) a member targeting
// itself.
type Schema struct {
	id     ShapeID
	typ    ShapeType
	target *Schema

	members []*Schema          // in model order
	index   map[string]*Schema // member name -> schema
	traits  map[string]Trait   // trait ID -> trait
}

// SchemaOptions configures a new Schema.
type SchemaOptions struct {
	members []*Schema
	traits  []Trait
}

// WithMember adds a member targeting the given Schema.
//
// Traits provided for the member here take precedence over traits on the
// target.
func WithMember(name string, target *Schema, traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		m := &Schema{
			id:     ShapeID{Member: name},
			typ:    target.typ,
			target: target,
			traits: make(map[string]Trait, len(traits)),
		}
		for _, t := range traits {
			m.traits[t.TraitID()] = t
		}

		o.members = append(o.members, m)
	}
}

// WithTraits adds traits to the Schema.
func WithTraits(traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		o.traits = append(o.traits, traits...)
	}
}

// NewSchema returns a schema with the provided members and traits.
//
// Generated clients include schemas for every shape that needs to be
// (de)serialized as part of a service operation in a schemas package.
func NewSchema(id string, typ ShapeType, opts ...func(*SchemaOptions)) *Schema {
	s := &Schema{
		id:     stoid(id),
		typ:    typ,
		index:  map[string]*Schema{},
		traits: map[string]Trait{},
	}
	s.Bind(opts...)
	return s
}

// Bind adds members and traits to a schema that was already created.
//
// Shapes that refer to each other are declared first and bound afterwards,
// from a package init function. Bind must not be called once the schema is
// in use.
func (s *Schema) Bind(opts ...func(*SchemaOptions)) *Schema {
	var o SchemaOptions
	for _, opt := range opts {
		opt(&o)
	}

	for _, m := range o.members {
		m.id.Namespace = s.id.Namespace
		m.id.Name = s.id.Name
		s.members = append(s.members, m)
		s.index[m.id.Member] = m
	}
	for _, t := range o.traits {
		s.traits[t.TraitID()] = t
	}
	return s
}

// ID returns the shape ID for this schema as it appears in the original
// Smithy model.
func (s *Schema) ID() ShapeID {
	return s.id
}

// MemberName returns the member name of a member schema, or the empty string.
func (s *Schema) MemberName() string {
	return s.id.Member
}

// Type returns the schema's type. For member schemas this is the type of the
// target shape.
func (s *Schema) Type() ShapeType {
	return s.typ
}

// Target returns the shape a member schema targets, or the schema itself.
func (s *Schema) Target() *Schema {
	if s.target != nil {
		return s.target
	}
	return s
}

// Member returns the named member from the schema. On a member schema the
// lookup happens on the target.
func (s *Schema) Member(name string) *Schema {
	return s.Target().index[name]
}

// Members returns the members of the schema in model order.
func (s *Schema) Members() []*Schema {
	return s.Target().members
}

// SchemaTrait returns the target trait on the schema if it exists. Traits on
// a member are checked before those of its target.
func SchemaTrait[T Trait](s *Schema) (T, bool) {
	var trait T

	opaque, ok := s.traits[trait.TraitID()]
	if !ok && s.target != nil {
		opaque, ok = s.target.traits[trait.TraitID()]
	}
	if !ok {
		return trait, false
	}

	tt, ok := opaque.(T)
	return tt, ok
}

// HasTrait reports whether the trait is present on the schema.
func HasTrait[T Trait](s *Schema) bool {
	_, ok := SchemaTrait[T](s)
	return ok
}
