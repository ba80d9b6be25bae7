package codec

import (
	"fmt"

	"protogen/internal/encoding"
)

// FloatEncoder builds encoder IR for float32. Floats never get their own
// shift/mask table: the bit pattern is reinterpreted as a 4-byte unsigned
// integer (TagFloatBitcast) and split with the strategy's float32 integer
// spec.
type FloatEncoder struct {
	strategy encoding.Strategy
}

func (e *FloatEncoder) SupportedTypes() []string { return []string{"float32"} }

func (e *FloatEncoder) MethodSpec(typeName, description string) (MethodSpec, error) {
	if typeName != "float32" {
		return MethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec, ok := e.strategy.IntegerSpec("float32")
	if !ok {
		return MethodSpec{}, fmt.Errorf("no float32 spec in strategy %s", e.strategy.Name())
	}

	writes := make([]ByteWriteOp, spec.ByteCount)
	for i := range writes {
		writes[i] = ByteWriteOp{
			Index:      i,
			Expression: shiftMaskExpr("bits", spec.Shifts[i], spec.Masks[i]),
		}
	}

	return MethodSpec{
		TypeName:   "float32",
		MethodName: "Float32",
		ParamType:  "float32",
		ByteCount:  spec.ByteCount,
		ByteWrites: writes,
		DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
		Preamble:   TagFloatBitcast,
	}, nil
}

// FloatDecoder builds decoder IR for float32: bytes reassemble the bit
// pattern, then the postamble bitcast restores the float.
type FloatDecoder struct {
	strategy encoding.Strategy
}

func (d *FloatDecoder) SupportedTypes() []string { return []string{"float32"} }

func (d *FloatDecoder) MethodSpec(typeName, description string) (DecoderMethodSpec, error) {
	if typeName != "float32" {
		return DecoderMethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec, ok := d.strategy.IntegerSpec("float32")
	if !ok {
		return DecoderMethodSpec{}, fmt.Errorf("no float32 spec in strategy %s", d.strategy.Name())
	}

	return DecoderMethodSpec{
		TypeName:   "float32",
		MethodName: "Float32",
		ResultType: "float32",
		ByteCount:  spec.ByteCount,
		ByteReads:  readOps(spec),
		DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
		Postamble:  TagFloatBitcast,
	}, nil
}
