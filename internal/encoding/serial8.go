package encoding

// Serial8 is the direct 8-bit binary layout: byte count equals native
// width, little-endian byte order, every mask 0xFF.
type Serial8 struct{}

var serial8IntegerSpecs = map[string]*IntegerSpec{
	"uint8":   serial8Spec(1, "1 byte, direct binary"),
	"int8":    serial8Spec(1, "1 byte, direct binary"),
	"uint16":  serial8Spec(2, "2 bytes, direct binary"),
	"int16":   serial8Spec(2, "2 bytes, direct binary"),
	"uint32":  serial8Spec(4, "4 bytes, direct binary"),
	"int32":   serial8Spec(4, "4 bytes, direct binary"),
	"float32": serial8Spec(4, "4 bytes, direct binary (IEEE 754)"),
}

func serial8Spec(width int, comment string) *IntegerSpec {
	shifts := make([]int, width)
	masks := make([]int, width)
	for i := 0; i < width; i++ {
		shifts[i] = 8 * i
		masks[i] = 0xFF
	}
	return &IntegerSpec{ByteCount: width, Shifts: shifts, Masks: masks, Comment: comment}
}

var serial8NormSpecs = map[string]*NormSpec{
	"norm8": {
		ByteCount: 1,
		MaxValue:  255,
		Comment:   "1 byte, full range (0-255)",
	},
	"norm16": {
		ByteCount: 2,
		MaxValue:  65535,
		Integer:   serial8IntegerSpecs["uint16"],
		Comment:   "2 bytes, full range (0-65535)",
	},
}

var serial8StringSpec = StringSpec{
	LengthMask: 0xFF,
	CharMask:   0xFF,
	MaxLength:  255,
	Comment:    "1 byte length prefix + data (max 255 chars)",
}

func (Serial8) Name() string        { return "Serial8" }
func (Serial8) Description() string { return "8-bit binary" }

func (Serial8) IntegerSpec(typeName string) (*IntegerSpec, bool) {
	s, ok := serial8IntegerSpecs[typeName]
	return s, ok
}

func (Serial8) NormSpec(typeName string) (*NormSpec, bool) {
	s, ok := serial8NormSpecs[typeName]
	return s, ok
}

func (Serial8) StringSpec() StringSpec { return serial8StringSpec }

func (Serial8) BoolTrue() byte  { return 0x01 }
func (Serial8) BoolFalse() byte { return 0x00 }

func (Serial8) EncodedSize(typeName string, rawSize int) int {
	switch typeName {
	case "bool", "uint8", "int8", "norm8":
		return 1
	case "uint16", "int16", "norm16":
		return 2
	case "uint32", "int32", "float32":
		return 4
	}
	return rawSize
}

func (Serial8) StringMaxEncodedSize(maxLength int) int { return 1 + maxLength }
func (Serial8) StringMinEncodedSize() int              { return 1 }

func (Serial8) AlwaysEncodeArrayCount() bool { return true }
