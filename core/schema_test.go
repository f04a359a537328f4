package core_test

import (
	"testing"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
)

func TestSchemaMembers(t *testing.T) {
	str := core.NewSchema("smithy.api#String", core.ShapeTypeString, core.WithTraits(&traits.Sensitive{}))
	list := core.NewSchema("com.amazonaws.connect#Criteria", core.ShapeTypeStructure)
	list.Bind(
		core.WithMember("Value", str, &traits.HTTPQuery{Name: "value"}),
		core.WithMember("OrConditions", list),
		core.WithMember("AndConditions", list),
	)

	if e, a := "com.amazonaws.connect#Criteria", list.ID().String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	var names []string
	for _, m := range list.Members() {
		names = append(names, m.MemberName())
	}
	if e, a := "Value,OrConditions,AndConditions", join(names); e != a {
		t.Errorf("expected members in model order %v, got %v", e, a)
	}

	or := list.Member("OrConditions")
	if e, a := "com.amazonaws.connect#Criteria$OrConditions", or.ID().String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	if or.Target() != list {
		t.Errorf("expected member to target its container")
	}
	if m := or.Member("Value"); m == nil || m.MemberName() != "Value" {
		t.Errorf("expected lookup through the member target, got %v", m)
	}
	if e, a := core.ShapeTypeStructure, or.Type(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	value := list.Member("Value")
	q, ok := core.SchemaTrait[*traits.HTTPQuery](value)
	if !ok || q.Name != "value" {
		t.Errorf("expected member trait, got %v %v", q, ok)
	}
	if !core.HasTrait[*traits.Sensitive](value) {
		t.Errorf("expected target trait to be visible on the member")
	}
	if core.HasTrait[*traits.HTTPLabel](value) {
		t.Errorf("expected no label trait")
	}
	if list.Member("Missing") != nil {
		t.Errorf("expected nil for unknown member")
	}
}

func TestTypeRegistry(t *testing.T) {
	schema := core.NewSchema("com.amazonaws.connect#ThrottlingException", core.ShapeTypeStructure)
	registry := core.NewTypeRegistry(core.RegistryEntry[testError](schema))

	v, ok := registry.DeserializableError("ThrottlingException")
	if !ok {
		t.Fatalf("expected registry hit")
	}
	if _, ok := v.(*testError); !ok {
		t.Errorf("expected *testError, got %T", v)
	}

	if _, ok := registry.DeserializableError("Other"); ok {
		t.Errorf("expected registry miss")
	}

	var nilRegistry *core.TypeRegistry
	if _, ok := nilRegistry.DeserializableError("ThrottlingException"); ok {
		t.Errorf("expected nil registry miss")
	}
}

type testError struct{}

func (*testError) Error() string                             { return "test" }
func (*testError) Deserialize(core.ShapeDeserializer) error { return nil }

func join(s []string) string {
	var out string
	for i, v := range s {
		if i > 0 {
			out += ","
		}
		out += v
	}
	return out
}
