// Package payload computes worst-case and best-case encoded sizes for a
// message's field tree under a given encoding strategy.
package payload

import (
	"protogen/internal/encoding"
	"protogen/internal/schema"
)

// conservativeSize is the per-element estimate used when a field's type
// cannot be resolved to a builtin. Validation catches the unresolved
// reference separately; the calculator must still return something sane.
const conservativeSize = 10

// enumWireSize: enums always travel as one byte per element.
const enumWireSize = 1

// Calculator derives payload byte counts from a field tree. It is a pure
// function of its inputs and safe to share across runs.
type Calculator struct {
	strategy encoding.Strategy
	registry *schema.TypeRegistry
}

func NewCalculator(s encoding.Strategy, reg *schema.TypeRegistry) *Calculator {
	return &Calculator{strategy: s, registry: reg}
}

// MaxSize returns the worst-case encoded payload size for fields.
// stringMaxLength bounds every string field; namePrefixSize, when
// nonzero, is added once at the top level for protocols that embed the
// message name for diagnostics.
func (c *Calculator) MaxSize(fields []schema.Field, stringMaxLength, namePrefixSize int) int {
	total := namePrefixSize
	for _, f := range fields {
		total += c.fieldMax(f, stringMaxLength)
	}
	return total
}

// MinSize returns the best-case size: empty strings, zero-length arrays.
func (c *Calculator) MinSize(fields []schema.Field, namePrefixSize int) int {
	total := namePrefixSize
	for _, f := range fields {
		total += c.fieldMin(f)
	}
	return total
}

func (c *Calculator) fieldMax(field schema.Field, stringMaxLength int) int {
	switch f := field.(type) {
	case *schema.EnumField:
		return c.arrayMax(enumWireSize, f.Array)
	case *schema.PrimitiveField:
		return c.arrayMax(c.primitiveElemMax(f.TypeName, stringMaxLength), f.Array)
	case *schema.CompositeField:
		return c.arrayMax(c.MaxSize(f.Fields, stringMaxLength, 0), f.Array)
	}
	return 0
}

func (c *Calculator) fieldMin(field schema.Field) int {
	switch f := field.(type) {
	case *schema.EnumField:
		return c.arrayMin(enumWireSize, f.Array)
	case *schema.PrimitiveField:
		return c.arrayMin(c.primitiveElemMin(f.TypeName), f.Array)
	case *schema.CompositeField:
		return c.arrayMin(c.MinSize(f.Fields, 0), f.Array)
	}
	return 0
}

// arrayMax applies the array policy to a per-element worst case. Under
// the always-count policy every array pays a 1-byte count prefix; under
// the implicit-size policy the static length is never sent, so the size
// is exactly element*count.
func (c *Calculator) arrayMax(elemSize, arraySize int) int {
	if arraySize == 0 {
		return elemSize
	}
	if c.strategy.AlwaysEncodeArrayCount() {
		return 1 + elemSize*arraySize
	}
	return elemSize * arraySize
}

// arrayMin applies the array policy to a per-element best case. With a
// count prefix the minimum is the count byte alone: zero elements is a
// valid encoding.
func (c *Calculator) arrayMin(elemSize, arraySize int) int {
	if arraySize == 0 {
		return elemSize
	}
	if c.strategy.AlwaysEncodeArrayCount() {
		return 1
	}
	return elemSize * arraySize
}

func (c *Calculator) primitiveElemMax(typeName string, stringMaxLength int) int {
	atomic, err := c.registry.Get(typeName)
	if err != nil || !atomic.IsBuiltin {
		return conservativeSize
	}
	if atomic.SizeBytes == schema.SizeVariable {
		return c.strategy.StringMaxEncodedSize(stringMaxLength)
	}
	return c.strategy.EncodedSize(typeName, atomic.SizeBytes)
}

func (c *Calculator) primitiveElemMin(typeName string) int {
	atomic, err := c.registry.Get(typeName)
	if err != nil || !atomic.IsBuiltin {
		return conservativeSize
	}
	if atomic.SizeBytes == schema.SizeVariable {
		return c.strategy.StringMinEncodedSize()
	}
	return c.strategy.EncodedSize(typeName, atomic.SizeBytes)
}
