package schema

import "fmt"

// SchemaError reports a construction-time schema violation: bad enum name
// casing, empty value set, negative enum value, zero array size and the
// like. These are programmer errors in the schema source and are raised
// immediately rather than accumulated.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "schema: " + e.Reason
}

func schemaErrorf(format string, args ...any) error {
	return &SchemaError{Reason: fmt.Sprintf(format, args...)}
}

// TypeResolutionError reports a reference to a type name that is not
// registered. It is never silently defaulted; the offending name is
// always carried.
type TypeResolutionError struct {
	TypeName string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("unknown type %q", e.TypeName)
}
