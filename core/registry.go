package core

// TypeRegistry creates an instance of a type based on its Smithy IDL shape ID.
//
// Generated clients have an exported package-level registry that holds all
// modeled error structures for the service. A registry is populated once,
// when the package is initialized, and is read-only afterwards.
type TypeRegistry struct {
	Entries map[string]*TypeRegistryEntry
}

// TypeRegistryEntry pairs a schema with a constructor for the Go type that
// implements it.
type TypeRegistryEntry struct {
	Schema *Schema
	New    func() any
}

// RegistryEntry creates a type registry entry.
func RegistryEntry[T any](schema *Schema) *TypeRegistryEntry {
	return &TypeRegistryEntry{
		Schema: schema,
		New: func() any {
			return new(T)
		},
	}
}

// NewTypeRegistry indexes the entries by the name of their shape.
func NewTypeRegistry(entries ...*TypeRegistryEntry) *TypeRegistry {
	t := &TypeRegistry{Entries: make(map[string]*TypeRegistryEntry, len(entries))}
	for _, e := range entries {
		t.Entries[e.Schema.ID().Name] = e
	}
	return t
}

// DeserializableError provides an instance of a deserializable error structure
// for a given shape name.
//
// The ID is given as a string here since this will be called in a context where
// a shape ID is a discriminator read in from some wire payload.
func (t *TypeRegistry) DeserializableError(id string) (DeserializableError, bool) {
	return typeRegistryLookup[DeserializableError](t, id)
}

func typeRegistryLookup[T any](t *TypeRegistry, id string) (T, bool) {
	var v T
	if t == nil {
		return v, false
	}

	entry, ok := t.Entries[id]
	if !ok {
		return v, false
	}

	v, ok = entry.New().(T)
	return v, ok
}
