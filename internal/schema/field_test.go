package schema_test

import (
	"testing"

	"protogen/internal/schema"
)

func TestNewPrimitiveFieldScalar(t *testing.T) {
	f, err := schema.NewPrimitiveField("value", "float32", 0, false)
	if err != nil {
		t.Fatalf("NewPrimitiveField: %v", err)
	}
	if f.ArraySize() != 0 {
		t.Errorf("ArraySize = %d, want 0", f.ArraySize())
	}
	if got := f.String(); got != "value: float32" {
		t.Errorf("String = %q", got)
	}
}

func TestNewPrimitiveFieldArray(t *testing.T) {
	f, err := schema.NewPrimitiveField("values", "uint8", 16, false)
	if err != nil {
		t.Fatalf("NewPrimitiveField: %v", err)
	}
	if f.ArraySize() != 16 {
		t.Errorf("ArraySize = %d, want 16", f.ArraySize())
	}
	if got := f.String(); got != "values: uint8[16]" {
		t.Errorf("String = %q", got)
	}
}

func TestNewPrimitiveFieldInvariants(t *testing.T) {
	if _, err := schema.NewPrimitiveField("bad", "uint8", -1, false); err == nil {
		t.Error("negative array size accepted")
	}
	if _, err := schema.NewPrimitiveField("bad", "uint8", 0, true); err == nil {
		t.Error("dynamic without array size accepted")
	}
	if _, err := schema.NewPrimitiveField("bad", "", 0, false); err == nil {
		t.Error("empty type accepted")
	}
	if _, err := schema.NewPrimitiveField("items", "uint16", 32, true); err != nil {
		t.Errorf("dynamic array rejected: %v", err)
	}
}

func TestNewCompositeField(t *testing.T) {
	id, _ := schema.NewPrimitiveField("id", "uint8", 0, false)
	val, _ := schema.NewPrimitiveField("value", "float32", 0, false)

	f, err := schema.NewCompositeField("reading", []schema.Field{id, val}, 0)
	if err != nil {
		t.Fatalf("NewCompositeField: %v", err)
	}
	if len(f.Fields) != 2 {
		t.Errorf("nested fields = %d, want 2", len(f.Fields))
	}

	if _, err := schema.NewCompositeField("empty", nil, 0); err == nil {
		t.Error("composite without nested fields accepted")
	}
}

func TestNewEnumFieldRequiresDef(t *testing.T) {
	if _, err := schema.NewEnumField("kind", nil, 0); err == nil {
		t.Error("enum field without definition accepted")
	}

	def, err := schema.NewEnumDef("Kind", "", []schema.EnumValue{{Name: "A", Value: 0}}, false, nil)
	if err != nil {
		t.Fatalf("NewEnumDef: %v", err)
	}
	f, err := schema.NewEnumField("kind", def, 4)
	if err != nil {
		t.Fatalf("NewEnumField: %v", err)
	}
	if f.ArraySize() != 4 {
		t.Errorf("ArraySize = %d, want 4", f.ArraySize())
	}
}

func TestFieldSumTypeDispatch(t *testing.T) {
	prim, _ := schema.NewPrimitiveField("a", "uint8", 0, false)
	comp, _ := schema.NewCompositeField("b", []schema.Field{prim}, 0)
	def, _ := schema.NewEnumDef("Kind", "", []schema.EnumValue{{Name: "A", Value: 0}}, false, nil)
	enum, _ := schema.NewEnumField("c", def, 0)

	for _, f := range []schema.Field{prim, comp, enum} {
		switch f.(type) {
		case *schema.PrimitiveField, *schema.CompositeField, *schema.EnumField:
		default:
			t.Fatalf("unexpected field variant %T", f)
		}
	}
}
