package codec

import (
	"fmt"

	"protogen/internal/encoding"
)

var normTypes = []string{"norm8", "norm16"}

// NormEncoder builds encoder IR for normalized floats. The value is
// clamped to [0,1], scaled by the spec's max value and rounded; the
// resulting unsigned integer encodes directly (1 byte) or through the
// matching integer spec.
type NormEncoder struct {
	strategy encoding.Strategy
}

func (e *NormEncoder) SupportedTypes() []string { return normTypes }

func (e *NormEncoder) MethodSpec(typeName, description string) (MethodSpec, error) {
	if !supports(normTypes, typeName) {
		return MethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec, ok := e.strategy.NormSpec(typeName)
	if !ok {
		return MethodSpec{}, fmt.Errorf("no norm spec for %q", typeName)
	}

	preamble := fmt.Sprintf("%s;NORM_SCALE=%d", TagNormClamp, spec.MaxValue)

	if spec.ByteCount == 1 {
		mask := 0xFF
		if spec.MaxValue == 127 {
			mask = 0x7F
		}
		return MethodSpec{
			TypeName:   typeName,
			MethodName: methodName(typeName),
			ParamType:  typeName,
			ByteCount:  1,
			ByteWrites: []ByteWriteOp{{
				Index:      0,
				Expression: shiftMaskExpr("norm", 0, mask),
			}},
			DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
			Preamble:   preamble,
		}, nil
	}

	intSpec := spec.Integer
	if intSpec == nil {
		return MethodSpec{}, fmt.Errorf("no integer spec for %q", typeName)
	}
	writes := make([]ByteWriteOp, intSpec.ByteCount)
	for i := range writes {
		writes[i] = ByteWriteOp{
			Index:      i,
			Expression: shiftMaskExpr("norm", intSpec.Shifts[i], intSpec.Masks[i]),
		}
	}
	return MethodSpec{
		TypeName:   typeName,
		MethodName: methodName(typeName),
		ParamType:  typeName,
		ByteCount:  spec.ByteCount,
		ByteWrites: writes,
		DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
		Preamble:   preamble,
	}, nil
}

// NormDecoder builds decoder IR for normalized floats. Norms decode to
// float32: the reassembled integer is divided by NORM_SCALE.
type NormDecoder struct {
	strategy encoding.Strategy
}

func (d *NormDecoder) SupportedTypes() []string { return normTypes }

func (d *NormDecoder) MethodSpec(typeName, description string) (DecoderMethodSpec, error) {
	if !supports(normTypes, typeName) {
		return DecoderMethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec, ok := d.strategy.NormSpec(typeName)
	if !ok {
		return DecoderMethodSpec{}, fmt.Errorf("no norm spec for %q", typeName)
	}

	var reads []ByteReadOp
	if spec.ByteCount == 1 {
		mask := 0
		if spec.MaxValue == 127 {
			mask = 0x7F
		}
		reads = []ByteReadOp{{Index: 0, Mask: mask}}
	} else {
		intSpec := spec.Integer
		if intSpec == nil {
			return DecoderMethodSpec{}, fmt.Errorf("no integer spec for %q", typeName)
		}
		reads = readOps(intSpec)
	}

	return DecoderMethodSpec{
		TypeName:   typeName,
		MethodName: methodName(typeName),
		ResultType: "float32",
		ByteCount:  spec.ByteCount,
		ByteReads:  reads,
		DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
		Postamble:  fmt.Sprintf("NORM_SCALE=%d", spec.MaxValue),
	}, nil
}
