package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeRegistry is the catalog of atomic types available to a schema:
// the fixed builtin set plus user-declared custom types.
//
// A registry is populated once at load time and then read concurrently by
// any number of generation runs; AddCustomType must not race with reads.
type TypeRegistry struct {
	types map[string]*AtomicType
	order []string
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]*AtomicType, len(builtins)+8)}
}

// LoadBuiltins registers the fixed builtin set. Idempotent.
func (r *TypeRegistry) LoadBuiltins() {
	for i := range builtins {
		b := builtins[i]
		if _, ok := r.types[b.Name]; ok {
			continue
		}
		r.types[b.Name] = &b
		r.order = append(r.order, b.Name)
	}
}

// AddCustomType registers a user-declared type with an ordered field list.
// Field types are not resolved here; ValidateReferences does that once
// every type has been registered.
func (r *TypeRegistry) AddCustomType(name, description string, fields []TypeField) error {
	if name == "" {
		return schemaErrorf("custom type name cannot be empty")
	}
	if _, ok := r.types[name]; ok {
		return schemaErrorf("type %q already registered", name)
	}
	if len(fields) == 0 {
		return schemaErrorf("custom type %q must have at least one field", name)
	}
	r.types[name] = &AtomicType{
		Name:        name,
		Description: description,
		Fields:      append([]TypeField(nil), fields...),
	}
	r.order = append(r.order, name)
	return nil
}

// Get looks a type up by name.
func (r *TypeRegistry) Get(name string) (*AtomicType, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, &TypeResolutionError{TypeName: name}
	}
	return t, nil
}

// IsAtomic reports whether name is a registered type.
func (r *TypeRegistry) IsAtomic(name string) bool {
	_, ok := r.types[name]
	return ok
}

// Len returns the number of registered types.
func (r *TypeRegistry) Len() int { return len(r.types) }

// Names returns registered type names in registration order.
func (r *TypeRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

// ValidateReferences scans every custom type's field list and collects one
// error string per unresolved reference. Array notation "type[n]" is
// accepted; the element type is what must resolve.
func (r *TypeRegistry) ValidateReferences() []string {
	var errs []string
	for _, name := range r.order {
		t := r.types[name]
		if t.IsBuiltin {
			continue
		}
		for _, f := range t.Fields {
			elem, _, err := ParseArrayNotation(f.TypeName)
			if err != nil {
				errs = append(errs, fmt.Sprintf("type %q field %q: %v", name, f.Name, err))
				continue
			}
			if !r.IsAtomic(elem) {
				errs = append(errs, fmt.Sprintf("type %q field %q references unknown type %q", name, f.Name, elem))
			}
		}
	}
	return errs
}

// ParseArrayNotation splits "uint8[4]" into ("uint8", 4). A plain type
// name comes back with size 0. A malformed bound (missing bracket, not a
// positive integer) is an error.
func ParseArrayNotation(typeName string) (elem string, size int, err error) {
	open := strings.IndexByte(typeName, '[')
	if open < 0 {
		return typeName, 0, nil
	}
	if !strings.HasSuffix(typeName, "]") {
		return "", 0, schemaErrorf("malformed array notation %q", typeName)
	}
	elem = typeName[:open]
	bound := typeName[open+1 : len(typeName)-1]
	n, convErr := strconv.Atoi(bound)
	if convErr != nil || n <= 0 || elem == "" {
		return "", 0, schemaErrorf("malformed array notation %q", typeName)
	}
	return elem, n, nil
}
