package encoding

// SysEx is the 7-bit MIDI-safe layout: every wire byte keeps its high bit
// clear, so an N-bit value expands to ceil(N/7) bytes. The last byte's
// mask covers only the remaining bits.
type SysEx struct{}

var sysexUint16Spec = &IntegerSpec{
	ByteCount: 3,
	Shifts:    []int{0, 7, 14},
	Masks:     []int{0x7F, 0x7F, 0x03},
	Comment:   "2 bytes -> 3 bytes, 7-bit encoding",
}

var sysexUint32Spec = &IntegerSpec{
	ByteCount: 5,
	Shifts:    []int{0, 7, 14, 21, 28},
	Masks:     []int{0x7F, 0x7F, 0x7F, 0x7F, 0x0F},
	Comment:   "4 bytes -> 5 bytes, 7-bit encoding",
}

var sysexIntegerSpecs = map[string]*IntegerSpec{
	"uint8": {
		ByteCount: 1,
		Shifts:    []int{0},
		Masks:     []int{0x7F},
		Comment:   "1 byte, 7-bit masked",
	},
	"int8": {
		ByteCount: 1,
		Shifts:    []int{0},
		Masks:     []int{0x7F},
		Comment:   "1 byte, 7-bit masked",
	},
	"uint16": sysexUint16Spec,
	"int16":  sysexUint16Spec,
	"uint32": sysexUint32Spec,
	"int32":  sysexUint32Spec,
	"float32": {
		ByteCount: 5,
		Shifts:    []int{0, 7, 14, 21, 28},
		Masks:     []int{0x7F, 0x7F, 0x7F, 0x7F, 0x0F},
		Comment:   "4 bytes -> 5 bytes, 7-bit encoding (IEEE 754)",
	},
}

var sysexNormSpecs = map[string]*NormSpec{
	"norm8": {
		ByteCount: 1,
		MaxValue:  127,
		Comment:   "1 byte, 7-bit range (0-127)",
	},
	"norm16": {
		ByteCount: 3,
		MaxValue:  65535,
		Integer:   sysexUint16Spec,
		Comment:   "2 bytes -> 3 bytes, 7-bit encoding (0-65535)",
	},
}

var sysexStringSpec = StringSpec{
	LengthMask: 0x7F,
	CharMask:   0x7F,
	MaxLength:  127,
	Comment:    "1 byte length prefix + data (max 127 chars, 7-bit safe)",
}

func (SysEx) Name() string        { return "SysEx" }
func (SysEx) Description() string { return "7-bit MIDI-safe" }

func (SysEx) IntegerSpec(typeName string) (*IntegerSpec, bool) {
	s, ok := sysexIntegerSpecs[typeName]
	return s, ok
}

func (SysEx) NormSpec(typeName string) (*NormSpec, bool) {
	s, ok := sysexNormSpecs[typeName]
	return s, ok
}

func (SysEx) StringSpec() StringSpec { return sysexStringSpec }

func (SysEx) BoolTrue() byte  { return 0x01 }
func (SysEx) BoolFalse() byte { return 0x00 }

func (SysEx) EncodedSize(typeName string, rawSize int) int {
	switch typeName {
	case "bool":
		return 1
	// Values below 128 fit a 7-bit byte as-is, no expansion.
	case "uint8", "int8", "norm8":
		return 1
	case "uint16", "int16", "norm16":
		return 3
	case "uint32", "int32", "float32":
		return 5
	}
	return ((rawSize * 8) + 6) / 7
}

func (SysEx) StringMaxEncodedSize(maxLength int) int { return 1 + maxLength }
func (SysEx) StringMinEncodedSize() int              { return 1 }

func (SysEx) AlwaysEncodeArrayCount() bool { return true }
