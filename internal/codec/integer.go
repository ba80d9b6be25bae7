package codec

import (
	"fmt"
	"strings"

	"protogen/internal/encoding"
)

var integerTypes = []string{"uint8", "int8", "uint16", "int16", "uint32", "int32"}

// IntegerEncoder builds encoder IR for the six integer builtins.
type IntegerEncoder struct {
	strategy encoding.Strategy
}

func (e *IntegerEncoder) SupportedTypes() []string { return integerTypes }

func (e *IntegerEncoder) MethodSpec(typeName, description string) (MethodSpec, error) {
	if !supports(integerTypes, typeName) {
		return MethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec, ok := e.strategy.IntegerSpec(typeName)
	if !ok {
		return MethodSpec{}, fmt.Errorf("no integer spec for %q", typeName)
	}

	writes := make([]ByteWriteOp, spec.ByteCount)
	for i := range writes {
		writes[i] = ByteWriteOp{
			Index:      i,
			Expression: shiftMaskExpr("val", spec.Shifts[i], spec.Masks[i]),
		}
	}

	return MethodSpec{
		TypeName:   typeName,
		MethodName: methodName(typeName),
		ParamType:  typeName,
		ByteCount:  spec.ByteCount,
		ByteWrites: writes,
		DocComment: fmt.Sprintf("%s (%s)", description, spec.Comment),
		// Multi-byte signed values are reinterpreted as unsigned before
		// splitting; the decoder reverses it.
		NeedsSignedCast: isSigned(typeName) && spec.ByteCount > 1,
	}, nil
}

// IntegerDecoder builds decoder IR for the six integer builtins.
type IntegerDecoder struct {
	strategy encoding.Strategy
}

func (d *IntegerDecoder) SupportedTypes() []string { return integerTypes }

func (d *IntegerDecoder) MethodSpec(typeName, description string) (DecoderMethodSpec, error) {
	if !supports(integerTypes, typeName) {
		return DecoderMethodSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeName)
	}
	spec, ok := d.strategy.IntegerSpec(typeName)
	if !ok {
		return DecoderMethodSpec{}, fmt.Errorf("no integer spec for %q", typeName)
	}

	return DecoderMethodSpec{
		TypeName:        typeName,
		MethodName:      methodName(typeName),
		ResultType:      typeName,
		ByteCount:       spec.ByteCount,
		ByteReads:       readOps(spec),
		DocComment:      fmt.Sprintf("%s (%s)", description, spec.Comment),
		NeedsSignedCast: isSigned(typeName) && spec.ByteCount > 1,
	}, nil
}

// readOps converts an integer spec into byte read operations, eliding the
// full-byte 0xFF mask.
func readOps(spec *encoding.IntegerSpec) []ByteReadOp {
	reads := make([]ByteReadOp, spec.ByteCount)
	for i := range reads {
		mask := spec.Masks[i]
		if mask == 0xFF {
			mask = 0
		}
		reads[i] = ByteReadOp{Index: i, Shift: spec.Shifts[i], Mask: mask}
	}
	return reads
}

// shiftMaskExpr renders "(name >> shift) & mask", dropping the shift term
// when it is zero.
func shiftMaskExpr(name string, shift, mask int) string {
	if shift == 0 {
		return fmt.Sprintf("%s & 0x%02X", name, mask)
	}
	return fmt.Sprintf("(%s >> %d) & 0x%02X", name, shift, mask)
}

func isSigned(typeName string) bool {
	return strings.HasPrefix(typeName, "int")
}
