package codec

import (
	"fmt"

	"protogen/internal/encoding"
)

// BoolEncoder builds encoder IR for bool, using the strategy-owned
// true/false wire values.
type BoolEncoder struct {
	strategy encoding.Strategy
}

func (e *BoolEncoder) SupportedTypes() []string { return []string{"bool"} }

func (e *BoolEncoder) MethodSpec(typeName, description string) (MethodSpec, error) {
	if typeName != "bool" {
		return MethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	trueVal := e.strategy.BoolTrue()
	falseVal := e.strategy.BoolFalse()

	return MethodSpec{
		TypeName:   "bool",
		MethodName: "Bool",
		ParamType:  "bool",
		ByteCount:  1,
		ByteWrites: []ByteWriteOp{{
			Index:      0,
			Expression: fmt.Sprintf("val ? 0x%02X : 0x%02X", trueVal, falseVal),
		}},
		DocComment: fmt.Sprintf("%s (0x%02X or 0x%02X)", description, falseVal, trueVal),
	}, nil
}

// BoolDecoder builds decoder IR for bool.
type BoolDecoder struct {
	strategy encoding.Strategy
}

func (d *BoolDecoder) SupportedTypes() []string { return []string{"bool"} }

func (d *BoolDecoder) MethodSpec(typeName, description string) (DecoderMethodSpec, error) {
	if typeName != "bool" {
		return DecoderMethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	trueVal := d.strategy.BoolTrue()

	return DecoderMethodSpec{
		TypeName:   "bool",
		MethodName: "Bool",
		ResultType: "bool",
		ByteCount:  1,
		ByteReads:  []ByteReadOp{{Index: 0}},
		DocComment: fmt.Sprintf("%s (nonzero is true, encoded as 0x%02X)", description, trueVal),
	}, nil
}
