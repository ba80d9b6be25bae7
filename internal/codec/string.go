package codec

import (
	"fmt"

	"protogen/internal/encoding"
)

// stringMeta renders the length/char mask metadata renderers parse to
// emit their string copy loop.
func stringMeta(spec encoding.StringSpec) string {
	return fmt.Sprintf("LENGTH_MASK=0x%02X;CHAR_MASK=0x%02X;MAX_LENGTH=%d",
		spec.LengthMask, spec.CharMask, spec.MaxLength)
}

// StringEncoder builds encoder IR for the variable-length string type:
// a masked 1-byte length prefix followed by that many masked character
// bytes. The layout parameters travel in the preamble; there are no
// fixed byte writes.
type StringEncoder struct {
	strategy encoding.Strategy
}

func (e *StringEncoder) SupportedTypes() []string { return []string{"string"} }

func (e *StringEncoder) MethodSpec(typeName, description string) (MethodSpec, error) {
	if typeName != "string" {
		return MethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec := e.strategy.StringSpec()

	return MethodSpec{
		TypeName:   "string",
		MethodName: "String",
		ParamType:  "string",
		ByteCount:  VariableLength,
		ByteWrites: nil,
		DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
		Preamble:   stringMeta(spec),
	}, nil
}

// StringDecoder builds decoder IR for string: read the masked length
// byte, then that many masked character bytes.
type StringDecoder struct {
	strategy encoding.Strategy
}

func (d *StringDecoder) SupportedTypes() []string { return []string{"string"} }

func (d *StringDecoder) MethodSpec(typeName, description string) (DecoderMethodSpec, error) {
	if typeName != "string" {
		return DecoderMethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec := d.strategy.StringSpec()

	return DecoderMethodSpec{
		TypeName:   "string",
		MethodName: "String",
		ResultType: "string",
		ByteCount:  VariableLength,
		ByteReads:  []ByteReadOp{{Index: 0}},
		DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
		Postamble:  stringMeta(spec),
	}, nil
}
