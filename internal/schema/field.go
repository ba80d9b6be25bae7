package schema

import "fmt"

// Field is the closed sum over the three field shapes a message can
// carry: primitive, composite and enum. Consumers dispatch with a type
// switch; no other implementations exist.
type Field interface {
	// FieldName returns the field's name inside its message or composite.
	FieldName() string
	// ArraySize returns the declared element count, or 0 for a scalar.
	ArraySize() int

	isField()
}

// PrimitiveField holds a single atomic-typed value or an array of them.
type PrimitiveField struct {
	Name     string
	TypeName string
	Array    int
	// Dynamic marks arrays whose actual length varies at runtime up to
	// Array. Requires Array > 0.
	Dynamic bool
}

// CompositeField holds a nested group of fields, optionally repeated.
type CompositeField struct {
	Name   string
	Fields []Field
	Array  int
}

// EnumField holds a value of a pre-bound enum definition, optionally
// repeated. Enums always travel as one byte per element.
type EnumField struct {
	Name  string
	Enum  *EnumDef
	Array int
}

func (f *PrimitiveField) FieldName() string { return f.Name }
func (f *CompositeField) FieldName() string { return f.Name }
func (f *EnumField) FieldName() string      { return f.Name }

func (f *PrimitiveField) ArraySize() int { return f.Array }
func (f *CompositeField) ArraySize() int { return f.Array }
func (f *EnumField) ArraySize() int      { return f.Array }

func (f *PrimitiveField) isField() {}
func (f *CompositeField) isField() {}
func (f *EnumField) isField()      {}

// NewPrimitiveField builds a primitive field. array == 0 means scalar.
func NewPrimitiveField(name, typeName string, array int, dynamic bool) (*PrimitiveField, error) {
	if err := checkArray(name, array, dynamic); err != nil {
		return nil, err
	}
	if typeName == "" {
		return nil, schemaErrorf("field %q has empty type", name)
	}
	return &PrimitiveField{Name: name, TypeName: typeName, Array: array, Dynamic: dynamic}, nil
}

// NewCompositeField builds a composite field from nested fields.
func NewCompositeField(name string, fields []Field, array int) (*CompositeField, error) {
	if err := checkArray(name, array, false); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, schemaErrorf("composite field %q must have nested fields", name)
	}
	return &CompositeField{Name: name, Fields: fields, Array: array}, nil
}

// NewEnumField builds an enum field bound to def.
func NewEnumField(name string, def *EnumDef, array int) (*EnumField, error) {
	if err := checkArray(name, array, false); err != nil {
		return nil, err
	}
	if def == nil {
		return nil, schemaErrorf("enum field %q has no enum definition", name)
	}
	return &EnumField{Name: name, Enum: def, Array: array}, nil
}

func checkArray(name string, array int, dynamic bool) error {
	if array < 0 {
		return schemaErrorf("field %q: array size must be positive, got %d", name, array)
	}
	if dynamic && array == 0 {
		return schemaErrorf("field %q: dynamic=true requires array size", name)
	}
	return nil
}

func (f *PrimitiveField) String() string {
	if f.Array > 0 {
		return fmt.Sprintf("%s: %s[%d]", f.Name, f.TypeName, f.Array)
	}
	return fmt.Sprintf("%s: %s", f.Name, f.TypeName)
}
