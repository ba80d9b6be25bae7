// Package validate checks a resolved schema and accumulates every
// problem it finds. Nothing here short-circuits: schema authors get the
// complete list in one pass.
package validate

import (
	"fmt"

	"protogen/internal/diag"
	"protogen/internal/schema"
)

// DefaultMaxDepth bounds composite nesting, measured from a message's
// direct fields.
const DefaultMaxDepth = 3

// maxDiagnostics bounds the bag; a schema broken badly enough to hit it
// has bigger problems than the tail of the list.
const maxDiagnostics = 256

// Validator runs the whole-schema checks against one type registry.
type Validator struct {
	registry *schema.TypeRegistry
	maxDepth int
}

func NewValidator(reg *schema.TypeRegistry, maxDepth int) *Validator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Validator{registry: reg, maxDepth: maxDepth}
}

// Validate runs every check and returns the accumulated diagnostics,
// sorted deterministically. It never returns an error: failures are data.
func (v *Validator) Validate(messages []*schema.Message) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)

	if len(messages) == 0 {
		bag.AddError(diag.ValNoMessages, "", "no messages defined")
		bag.Sort()
		return bag
	}

	v.checkMessageNames(messages, bag)
	for _, m := range messages {
		v.checkFields(m.Name, m.Name, m.Fields, 1, bag)
	}

	bag.Sort()
	return bag
}

// Strings runs Validate and renders each diagnostic as one descriptive
// string, preserving the plain []string contract.
func (v *Validator) Strings(messages []*schema.Message) []string {
	return v.Validate(messages).Strings()
}

func (v *Validator) checkMessageNames(messages []*schema.Message, bag *diag.Bag) {
	seen := make(map[string]bool, len(messages))
	for _, m := range messages {
		if m.Name == "" {
			bag.AddError(diag.ValEmptyMessageName, "", "message has empty name")
			continue
		}
		if seen[m.Name] {
			bag.AddError(diag.ValDuplicateMessage, m.Name,
				fmt.Sprintf("duplicate message name %q", m.Name))
		}
		seen[m.Name] = true
	}
}

// checkFields validates one field list: duplicate names, nesting depth,
// type resolution. depth counts composite levels from the message's
// direct fields (depth 1).
func (v *Validator) checkFields(msgName, path string, fields []schema.Field, depth int, bag *diag.Bag) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		name := f.FieldName()
		fieldPath := path + "." + name
		if seen[name] {
			code := diag.ValDuplicateField
			kind := "duplicate field name"
			if depth > 1 {
				code = diag.ValDuplicateNested
				kind = "duplicate nested field name"
			}
			bag.AddError(code, fieldPath,
				fmt.Sprintf("message %q has %s %q", msgName, kind, name))
		}
		seen[name] = true

		switch field := f.(type) {
		case *schema.PrimitiveField:
			v.checkTypeRef(msgName, fieldPath, field.TypeName, bag)
		case *schema.EnumField:
			if field.Enum == nil {
				bag.AddError(diag.ValEnumUnbound, fieldPath,
					fmt.Sprintf("message %q field %q has no enum definition", msgName, name))
			}
		case *schema.CompositeField:
			if depth+1 > v.maxDepth {
				bag.AddError(diag.ValNestingTooDeep, fieldPath,
					fmt.Sprintf("message %q field %q exceeds maximum nesting depth %d", msgName, name, v.maxDepth))
				// Keep walking: deeper problems should still surface.
			}
			v.checkFields(msgName, fieldPath, field.Fields, depth+1, bag)
		}
	}
}

// checkTypeRef resolves a primitive type name, accepting "type[n]" array
// notation.
func (v *Validator) checkTypeRef(msgName, path, typeName string, bag *diag.Bag) {
	elem, _, err := schema.ParseArrayNotation(typeName)
	if err != nil {
		bag.AddError(diag.ResBadArrayBound, path,
			fmt.Sprintf("message %q: %v", msgName, err))
		return
	}
	if !v.registry.IsAtomic(elem) {
		bag.AddError(diag.ResUnknownType, path,
			fmt.Sprintf("message %q references unknown type %q", msgName, elem))
	}
}
