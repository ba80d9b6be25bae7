// Package loader reads a TOML schema file and produces the resolved
// in-memory model the core consumes: a populated type registry, enum
// definitions and messages with fields already bound.
//
// The core itself never touches files; anything that can hand it a
// registry plus []*schema.Message works just as well.
package loader

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"protogen/internal/schema"
)

// Schema is the loader's output: everything a generation run needs.
type Schema struct {
	Registry *schema.TypeRegistry
	Enums    []*schema.EnumDef
	Messages []*schema.Message
}

// EnumByName finds a loaded enum definition.
func (s *Schema) EnumByName(name string) (*schema.EnumDef, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

type schemaFile struct {
	Types    map[string]typeDef    `toml:"types"`
	Enums    map[string]enumDef    `toml:"enums"`
	Messages map[string]messageDef `toml:"messages"`
}

type typeDef struct {
	Description string     `toml:"description"`
	Fields      []fieldDef `toml:"fields"`
}

type enumDef struct {
	Description   string            `toml:"description"`
	Bitflags      bool              `toml:"bitflags"`
	Values        []enumValueDef    `toml:"values"`
	StringMapping map[string]string `toml:"string_mapping"`
}

type enumValueDef struct {
	Name  string `toml:"name"`
	Value int    `toml:"value"`
}

type messageDef struct {
	Description string     `toml:"description"`
	Direction   string     `toml:"direction"`
	Intent      string     `toml:"intent"`
	Deprecated  bool       `toml:"deprecated"`
	ResponseTo  string     `toml:"response_to"`
	Fields      []fieldDef `toml:"fields"`
}

// fieldDef is the on-disk field shape. Exactly one of Type, Enum or
// Fields must be set; that picks the Field variant.
type fieldDef struct {
	Name    string     `toml:"name"`
	Type    string     `toml:"type"`
	Enum    string     `toml:"enum"`
	Array   int        `toml:"array"`
	Dynamic bool       `toml:"dynamic"`
	Fields  []fieldDef `toml:"fields"`
}

// LoadFile parses a schema file into the resolved model. TOML tables are
// unordered, so types, enums and messages are processed in sorted name
// order to keep loading deterministic.
func LoadFile(path string) (*Schema, error) {
	var file schemaFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	s, err := build(&file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadBytes is LoadFile over in-memory data.
func LoadBytes(data []byte) (*Schema, error) {
	var file schemaFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return build(&file)
}

func build(file *schemaFile) (*Schema, error) {
	out := &Schema{Registry: schema.NewTypeRegistry()}
	out.Registry.LoadBuiltins()

	for _, name := range sortedKeys(file.Types) {
		def := file.Types[name]
		fields := make([]schema.TypeField, len(def.Fields))
		for i, f := range def.Fields {
			typeName := f.Type
			if f.Array > 0 {
				typeName = fmt.Sprintf("%s[%d]", f.Type, f.Array)
			}
			fields[i] = schema.TypeField{Name: f.Name, TypeName: typeName}
		}
		if err := out.Registry.AddCustomType(name, def.Description, fields); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(file.Enums) {
		def := file.Enums[name]
		values := make([]schema.EnumValue, len(def.Values))
		for i, v := range def.Values {
			values[i] = schema.EnumValue{Name: v.Name, Value: v.Value}
		}
		enum, err := schema.NewEnumDef(name, def.Description, values, def.Bitflags, def.StringMapping)
		if err != nil {
			return nil, err
		}
		out.Enums = append(out.Enums, enum)
	}

	for _, name := range sortedKeys(file.Messages) {
		def := file.Messages[name]
		msg, err := out.buildMessage(name, def)
		if err != nil {
			return nil, err
		}
		out.Messages = append(out.Messages, msg)
	}
	return out, nil
}

func (s *Schema) buildMessage(name string, def messageDef) (*schema.Message, error) {
	fields, err := s.buildFields(name, def.Fields)
	if err != nil {
		return nil, err
	}
	msg, err := schema.NewMessage(name, def.Description, fields)
	if err != nil {
		return nil, err
	}
	if msg.Direction, err = schema.ParseDirection(def.Direction); err != nil {
		return nil, fmt.Errorf("message %q: %w", name, err)
	}
	if msg.Intent, err = schema.ParseIntent(def.Intent); err != nil {
		return nil, fmt.Errorf("message %q: %w", name, err)
	}
	msg.Deprecated = def.Deprecated
	msg.ResponseTo = def.ResponseTo
	return msg, nil
}

func (s *Schema) buildFields(msgName string, defs []fieldDef) ([]schema.Field, error) {
	fields := make([]schema.Field, 0, len(defs))
	for _, def := range defs {
		f, err := s.buildField(msgName, def)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (s *Schema) buildField(msgName string, def fieldDef) (schema.Field, error) {
	switch {
	case len(def.Fields) > 0:
		if def.Type != "" || def.Enum != "" {
			return nil, fmt.Errorf("message %q field %q: composite fields cannot also set type or enum", msgName, def.Name)
		}
		nested, err := s.buildFields(msgName, def.Fields)
		if err != nil {
			return nil, err
		}
		return schema.NewCompositeField(def.Name, nested, def.Array)
	case def.Enum != "":
		if def.Type != "" {
			return nil, fmt.Errorf("message %q field %q: enum fields cannot also set type", msgName, def.Name)
		}
		enum, ok := s.EnumByName(def.Enum)
		if !ok {
			return nil, fmt.Errorf("message %q field %q: unknown enum %q", msgName, def.Name, def.Enum)
		}
		return schema.NewEnumField(def.Name, enum, def.Array)
	case def.Type != "":
		return schema.NewPrimitiveField(def.Name, def.Type, def.Array, def.Dynamic)
	}
	return nil, fmt.Errorf("message %q field %q: one of type, enum or fields is required", msgName, def.Name)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
