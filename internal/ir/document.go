// Package ir assembles the complete output surface of one generation
// run: per-builtin codec specs, per-message payload sizes and message
// IDs. External renderers consume this document and nothing else.
package ir

import (
	"fmt"
	"sort"

	"fortio.org/safecast"

	"protogen/internal/codec"
	"protogen/internal/encoding"
	"protogen/internal/msgid"
	"protogen/internal/payload"
	"protogen/internal/schema"
)

// Document is the full IR for one (schema, strategy) pair.
type Document struct {
	Protocol    string `json:"protocol" msgpack:"protocol"`
	Strategy    string `json:"strategy" msgpack:"strategy"`
	Description string `json:"description" msgpack:"description"`

	// Encoders and Decoders cover every builtin type, in canonical wire
	// order, with byte operations in ascending index order.
	Encoders []codec.MethodSpec        `json:"encoders" msgpack:"encoders"`
	Decoders []codec.DecoderMethodSpec `json:"decoders" msgpack:"decoders"`

	// Messages are sorted by ID (equivalently: by name).
	Messages []MessageInfo `json:"messages" msgpack:"messages"`

	// Enums carries the shared enum definitions renderers must emit.
	Enums []EnumInfo `json:"enums,omitempty" msgpack:"enums"`
}

// MessageInfo is the per-message slice of the IR: identity, wire ID and
// payload size bounds.
type MessageInfo struct {
	Name       string `json:"name" msgpack:"name"`
	ID         uint8  `json:"id" msgpack:"id"`
	MaxPayload int    `json:"max_payload" msgpack:"max_payload"`
	MinPayload int    `json:"min_payload" msgpack:"min_payload"`
	Direction  string `json:"direction,omitempty" msgpack:"direction"`
	Intent     string `json:"intent,omitempty" msgpack:"intent"`
}

// EnumInfo mirrors schema.EnumDef in serializable form.
type EnumInfo struct {
	Name          string            `json:"name" msgpack:"name"`
	Values        []EnumValueInfo   `json:"values" msgpack:"values"`
	IsBitflags    bool              `json:"is_bitflags,omitempty" msgpack:"is_bitflags"`
	StringMapping map[string]string `json:"string_mapping,omitempty" msgpack:"string_mapping"`
}

type EnumValueInfo struct {
	Name  string `json:"name" msgpack:"name"`
	Value int    `json:"value" msgpack:"value"`
}

// Params carries the per-run knobs that shape the document.
type Params struct {
	Protocol        string
	StringMaxLength int
	// NamePrefixSize is nonzero for protocols that embed the message
	// name ahead of the payload for diagnostic logging.
	NamePrefixSize int
	StartID        int
}

// Build assembles the document. Deprecated messages are excluded from
// the output but still participate in ID allocation so that live IDs do
// not shift when a message is retired.
func Build(reg *schema.TypeRegistry, messages []*schema.Message, enums []*schema.EnumDef, strategy encoding.Strategy, params Params) (*Document, error) {
	doc := &Document{
		Protocol:    params.Protocol,
		Strategy:    strategy.Name(),
		Description: strategy.Description(),
	}

	if err := buildCodecs(doc, reg, strategy); err != nil {
		return nil, err
	}

	ids, err := msgid.Allocate(messages, params.StartID)
	if err != nil {
		return nil, err
	}

	calc := payload.NewCalculator(strategy, reg)
	for _, m := range messages {
		if m.Deprecated {
			continue
		}
		id, convErr := safecast.Conv[uint8](ids[m.Name])
		if convErr != nil {
			return nil, fmt.Errorf("message %q: id %d does not fit one byte", m.Name, ids[m.Name])
		}
		doc.Messages = append(doc.Messages, MessageInfo{
			Name:       m.Name,
			ID:         id,
			MaxPayload: calc.MaxSize(m.Fields, params.StringMaxLength, params.NamePrefixSize),
			MinPayload: calc.MinSize(m.Fields, params.NamePrefixSize),
			Direction:  m.Direction.String(),
			Intent:     m.Intent.String(),
		})
	}
	sort.Slice(doc.Messages, func(i, j int) bool { return doc.Messages[i].ID < doc.Messages[j].ID })

	for _, e := range enums {
		doc.Enums = append(doc.Enums, enumInfo(e))
	}
	sort.Slice(doc.Enums, func(i, j int) bool { return doc.Enums[i].Name < doc.Enums[j].Name })

	return doc, nil
}

// buildCodecs produces one encoder and one decoder spec per builtin
// type, in canonical wire order.
func buildCodecs(doc *Document, reg *schema.TypeRegistry, strategy encoding.Strategy) error {
	for _, name := range schema.BuiltinNames() {
		atomic, err := reg.Get(name)
		if err != nil {
			return fmt.Errorf("builtin %q missing from registry: %w", name, err)
		}

		enc, err := codec.EncoderFor(strategy, name)
		if err != nil {
			return err
		}
		encSpec, err := enc.MethodSpec(name, atomic.Description)
		if err != nil {
			return err
		}
		doc.Encoders = append(doc.Encoders, encSpec)

		dec, err := codec.DecoderFor(strategy, name)
		if err != nil {
			return err
		}
		decSpec, err := dec.MethodSpec(name, atomic.Description)
		if err != nil {
			return err
		}
		doc.Decoders = append(doc.Decoders, decSpec)
	}
	return nil
}

func enumInfo(e *schema.EnumDef) EnumInfo {
	values := make([]EnumValueInfo, len(e.Values))
	for i, v := range e.Values {
		values[i] = EnumValueInfo{Name: v.Name, Value: v.Value}
	}
	return EnumInfo{
		Name:          e.Name,
		Values:        values,
		IsBitflags:    e.IsBitflags,
		StringMapping: e.StringMapping,
	}
}
