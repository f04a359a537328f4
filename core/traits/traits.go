// Package traits defines representations of Smithy IDL traits that appear in
// code-generated schemas.
package traits

// Sensitive represents smithy.api#sensitive.
type Sensitive struct{}

// TraitID identifies the trait.
func (*Sensitive) TraitID() string { return "smithy.api#sensitive" }

// Required represents smithy.api#required.
type Required struct{}

// TraitID identifies the trait.
func (*Required) TraitID() string { return "smithy.api#required" }

// IdempotencyToken represents smithy.api#idempotencyToken.
type IdempotencyToken struct{}

// TraitID identifies the trait.
func (*IdempotencyToken) TraitID() string { return "smithy.api#idempotencyToken" }

// Error represents smithy.api#error. Fault is either "client" or "server".
type Error struct {
	Fault string
}

// TraitID identifies the trait.
func (*Error) TraitID() string { return "smithy.api#error" }
