package codec

import (
	"errors"
	"fmt"

	"protogen/internal/encoding"
)

// ErrUnsupportedType is returned when a builder is asked about a type
// outside its SupportedTypes set.
var ErrUnsupportedType = errors.New("unsupported type")

// TypeEncoder builds encoder IR for one category of atomic types.
type TypeEncoder interface {
	// SupportedTypes lists the type names this builder handles.
	SupportedTypes() []string
	// MethodSpec produces the encoder IR for typeName. description is the
	// human-readable type description from the registry.
	MethodSpec(typeName, description string) (MethodSpec, error)
}

// TypeDecoder builds decoder IR for one category of atomic types.
type TypeDecoder interface {
	SupportedTypes() []string
	MethodSpec(typeName, description string) (DecoderMethodSpec, error)
}

// Encoders returns one encoder per type category, bound to s. Together
// they cover every builtin type exactly once.
func Encoders(s encoding.Strategy) []TypeEncoder {
	return []TypeEncoder{
		&BoolEncoder{strategy: s},
		&IntegerEncoder{strategy: s},
		&FloatEncoder{strategy: s},
		&NormEncoder{strategy: s},
		&StringEncoder{strategy: s},
	}
}

// Decoders returns one decoder per type category, bound to s.
func Decoders(s encoding.Strategy) []TypeDecoder {
	return []TypeDecoder{
		&BoolDecoder{strategy: s},
		&IntegerDecoder{strategy: s},
		&FloatDecoder{strategy: s},
		&NormDecoder{strategy: s},
		&StringDecoder{strategy: s},
	}
}

// EncoderFor finds the encoder responsible for typeName.
func EncoderFor(s encoding.Strategy, typeName string) (TypeEncoder, error) {
	for _, enc := range Encoders(s) {
		for _, t := range enc.SupportedTypes() {
			if t == typeName {
				return enc, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
}

// DecoderFor finds the decoder responsible for typeName.
func DecoderFor(s encoding.Strategy, typeName string) (TypeDecoder, error) {
	for _, dec := range Decoders(s) {
		for _, t := range dec.SupportedTypes() {
			if t == typeName {
				return dec, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
}

func supports(types []string, typeName string) bool {
	for _, t := range types {
		if t == typeName {
			return true
		}
	}
	return false
}

// methodName capitalizes the first letter: "uint16" -> "Uint16".
func methodName(typeName string) string {
	if typeName == "" {
		return ""
	}
	b := []byte(typeName)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
