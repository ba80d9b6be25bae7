package schema

import "fmt"

// SizeVariable marks types whose encoded size depends on the value
// (currently only string).
const SizeVariable = -1

// TypeField is one (name, type) pair inside a custom atomic type.
type TypeField struct {
	Name     string
	TypeName string
}

// AtomicType describes an indivisible wire type: either one of the fixed
// builtins or a user-declared struct-like type. Immutable once registered.
type AtomicType struct {
	Name        string
	Description string
	IsBuiltin   bool

	// SizeBytes is the raw (pre-encoding) size. SizeVariable for string;
	// 0 for custom types, whose size is the sum of their fields.
	SizeBytes int

	// Target-language type hints consumed by external renderers.
	CppType  string
	JavaType string

	// Fields is the ordered field list of a custom type; empty for builtins.
	Fields []TypeField
}

func (a *AtomicType) String() string {
	if a.IsBuiltin {
		return fmt.Sprintf("AtomicType(%s, builtin, %d bytes)", a.Name, a.SizeBytes)
	}
	return fmt.Sprintf("AtomicType(%s, custom, %d fields)", a.Name, len(a.Fields))
}

// builtins is the fixed builtin catalog. Order matters: it is the wire
// order used when emitting per-type codec IR.
var builtins = []AtomicType{
	{Name: "bool", Description: "Boolean value", IsBuiltin: true, SizeBytes: 1, CppType: "bool", JavaType: "boolean"},
	{Name: "uint8", Description: "8-bit unsigned integer", IsBuiltin: true, SizeBytes: 1, CppType: "uint8_t", JavaType: "int"},
	{Name: "uint16", Description: "16-bit unsigned integer", IsBuiltin: true, SizeBytes: 2, CppType: "uint16_t", JavaType: "int"},
	{Name: "uint32", Description: "32-bit unsigned integer", IsBuiltin: true, SizeBytes: 4, CppType: "uint32_t", JavaType: "long"},
	{Name: "int8", Description: "8-bit signed integer", IsBuiltin: true, SizeBytes: 1, CppType: "int8_t", JavaType: "int"},
	{Name: "int16", Description: "16-bit signed integer", IsBuiltin: true, SizeBytes: 2, CppType: "int16_t", JavaType: "int"},
	{Name: "int32", Description: "32-bit signed integer", IsBuiltin: true, SizeBytes: 4, CppType: "int32_t", JavaType: "int"},
	{Name: "float32", Description: "32-bit IEEE 754 float", IsBuiltin: true, SizeBytes: 4, CppType: "float", JavaType: "float"},
	{Name: "norm8", Description: "Normalized value 0.0-1.0 (8-bit)", IsBuiltin: true, SizeBytes: 1, CppType: "float", JavaType: "float"},
	{Name: "norm16", Description: "Normalized value 0.0-1.0 (16-bit)", IsBuiltin: true, SizeBytes: 2, CppType: "float", JavaType: "float"},
	{Name: "string", Description: "Variable-length string", IsBuiltin: true, SizeBytes: SizeVariable, CppType: "const char*", JavaType: "String"},
}

// BuiltinNames returns builtin type names in their canonical wire order.
func BuiltinNames() []string {
	names := make([]string, len(builtins))
	for i := range builtins {
		names[i] = builtins[i].Name
	}
	return names
}
