package schema

// EnumValue is one named enum constant. Values keep declaration order
// because the first value doubles as the default.
type EnumValue struct {
	Name  string
	Value int
}

// EnumDef is the single source of truth for an enum shared between all
// generated targets. Validation is fail-fast: a bad definition never
// enters the schema.
type EnumDef struct {
	Name        string
	Description string
	Values      []EnumValue

	// IsBitflags marks combinable flag sets; renderers emit constants
	// instead of a closed enum for these.
	IsBitflags bool

	// StringMapping maps host API strings to enum value names.
	StringMapping map[string]string
}

// NewEnumDef validates and builds an enum definition.
func NewEnumDef(name, description string, values []EnumValue, isBitflags bool, stringMapping map[string]string) (*EnumDef, error) {
	if name == "" {
		return nil, schemaErrorf("enum name cannot be empty")
	}
	if name[0] < 'A' || name[0] > 'Z' {
		return nil, schemaErrorf("enum name must be PascalCase: %s", name)
	}
	if len(values) == 0 {
		return nil, schemaErrorf("enum %q must have at least one value", name)
	}
	byName := make(map[string]bool, len(values))
	for _, v := range values {
		if v.Value < 0 {
			return nil, schemaErrorf("enum %q value %q must be non-negative, got %d", name, v.Name, v.Value)
		}
		if byName[v.Name] {
			return nil, schemaErrorf("enum %q has duplicate value name %q", name, v.Name)
		}
		byName[v.Name] = true
	}
	for key, target := range stringMapping {
		if !byName[target] {
			return nil, schemaErrorf("enum %q string mapping %q -> %q references unknown value", name, key, target)
		}
	}
	return &EnumDef{
		Name:          name,
		Description:   description,
		Values:        append([]EnumValue(nil), values...),
		IsBitflags:    isBitflags,
		StringMapping: stringMapping,
	}, nil
}

// MaxValue returns the largest declared value.
func (e *EnumDef) MaxValue() int {
	max := 0
	for _, v := range e.Values {
		if v.Value > max {
			max = v.Value
		}
	}
	return max
}

// WireType is the on-wire representation; enums always travel as uint8.
func (e *EnumDef) WireType() string { return "uint8" }

// DefaultValue returns the first declared value name.
func (e *EnumDef) DefaultValue() string { return e.Values[0].Name }

func (e *EnumDef) String() string {
	suffix := ""
	if e.IsBitflags {
		suffix = " (bitflags)"
	}
	return "EnumDef(" + e.Name + suffix + ")"
}
