package encoding_test

import (
	"reflect"
	"testing"

	"protogen/internal/encoding"
)

func TestSelect(t *testing.T) {
	for name, want := range map[string]string{
		"binary":  "Serial8",
		"serial8": "Serial8",
		"sysex":   "SysEx",
	} {
		s, err := encoding.Select(name)
		if err != nil {
			t.Fatalf("Select(%q): %v", name, err)
		}
		if s.Name() != want {
			t.Errorf("Select(%q).Name() = %s, want %s", name, s.Name(), want)
		}
	}
	if _, err := encoding.Select("cobs"); err == nil {
		t.Error("unknown strategy name accepted")
	}
}

func TestSysExIntegerSpecs(t *testing.T) {
	s := encoding.SysEx{}
	tests := []struct {
		typeName string
		count    int
		shifts   []int
		masks    []int
	}{
		{"uint8", 1, []int{0}, []int{0x7F}},
		{"int8", 1, []int{0}, []int{0x7F}},
		{"uint16", 3, []int{0, 7, 14}, []int{0x7F, 0x7F, 0x03}},
		{"int16", 3, []int{0, 7, 14}, []int{0x7F, 0x7F, 0x03}},
		{"uint32", 5, []int{0, 7, 14, 21, 28}, []int{0x7F, 0x7F, 0x7F, 0x7F, 0x0F}},
		{"int32", 5, []int{0, 7, 14, 21, 28}, []int{0x7F, 0x7F, 0x7F, 0x7F, 0x0F}},
		{"float32", 5, []int{0, 7, 14, 21, 28}, []int{0x7F, 0x7F, 0x7F, 0x7F, 0x0F}},
	}
	for _, tt := range tests {
		spec, ok := s.IntegerSpec(tt.typeName)
		if !ok {
			t.Fatalf("no spec for %s", tt.typeName)
		}
		if spec.ByteCount != tt.count {
			t.Errorf("%s: ByteCount = %d, want %d", tt.typeName, spec.ByteCount, tt.count)
		}
		if !reflect.DeepEqual(spec.Shifts, tt.shifts) {
			t.Errorf("%s: Shifts = %v, want %v", tt.typeName, spec.Shifts, tt.shifts)
		}
		if !reflect.DeepEqual(spec.Masks, tt.masks) {
			t.Errorf("%s: Masks = %v, want %v", tt.typeName, spec.Masks, tt.masks)
		}
	}
}

func TestSerial8IntegerSpecs(t *testing.T) {
	s := encoding.Serial8{}
	tests := []struct {
		typeName string
		count    int
		shifts   []int
	}{
		{"uint8", 1, []int{0}},
		{"uint16", 2, []int{0, 8}},
		{"int16", 2, []int{0, 8}},
		{"uint32", 4, []int{0, 8, 16, 24}},
		{"float32", 4, []int{0, 8, 16, 24}},
	}
	for _, tt := range tests {
		spec, ok := s.IntegerSpec(tt.typeName)
		if !ok {
			t.Fatalf("no spec for %s", tt.typeName)
		}
		if spec.ByteCount != tt.count {
			t.Errorf("%s: ByteCount = %d, want %d", tt.typeName, spec.ByteCount, tt.count)
		}
		if !reflect.DeepEqual(spec.Shifts, tt.shifts) {
			t.Errorf("%s: Shifts = %v, want %v", tt.typeName, spec.Shifts, tt.shifts)
		}
		for i, m := range spec.Masks {
			if m != 0xFF {
				t.Errorf("%s: Masks[%d] = %#x, want 0xFF", tt.typeName, i, m)
			}
		}
	}
}

func TestEncodedSizes(t *testing.T) {
	tests := []struct {
		strategy encoding.Strategy
		typeName string
		raw      int
		want     int
	}{
		{encoding.Serial8{}, "bool", 1, 1},
		{encoding.Serial8{}, "uint8", 1, 1},
		{encoding.Serial8{}, "uint16", 2, 2},
		{encoding.Serial8{}, "norm16", 2, 2},
		{encoding.Serial8{}, "uint32", 4, 4},
		{encoding.Serial8{}, "float32", 4, 4},
		{encoding.SysEx{}, "bool", 1, 1},
		{encoding.SysEx{}, "uint8", 1, 1},
		{encoding.SysEx{}, "int8", 1, 1},
		{encoding.SysEx{}, "norm8", 1, 1},
		{encoding.SysEx{}, "uint16", 2, 3},
		{encoding.SysEx{}, "norm16", 2, 3},
		{encoding.SysEx{}, "uint32", 4, 5},
		{encoding.SysEx{}, "float32", 4, 5},
	}
	for _, tt := range tests {
		got := tt.strategy.EncodedSize(tt.typeName, tt.raw)
		if got != tt.want {
			t.Errorf("%s.EncodedSize(%s, %d) = %d, want %d",
				tt.strategy.Name(), tt.typeName, tt.raw, got, tt.want)
		}
	}
}

func TestSysExFallbackSizeFormula(t *testing.T) {
	s := encoding.SysEx{}
	// 8 raw bytes = 64 bits -> ceil(64/7) = 10 wire bytes.
	if got := s.EncodedSize("uint64", 8); got != 10 {
		t.Errorf("fallback EncodedSize = %d, want 10", got)
	}
}

func TestNormSpecs(t *testing.T) {
	sysex := encoding.SysEx{}
	n8, ok := sysex.NormSpec("norm8")
	if !ok || n8.ByteCount != 1 || n8.MaxValue != 127 || n8.Integer != nil {
		t.Errorf("sysex norm8 = %+v", n8)
	}
	n16, ok := sysex.NormSpec("norm16")
	if !ok || n16.ByteCount != 3 || n16.MaxValue != 65535 {
		t.Errorf("sysex norm16 = %+v", n16)
	}
	// The 2-byte path reuses the uint16 integer spec rather than
	// duplicating the table.
	u16, _ := sysex.IntegerSpec("uint16")
	if n16.Integer != u16 {
		t.Error("sysex norm16 does not share the uint16 integer spec")
	}

	serial := encoding.Serial8{}
	s8, ok := serial.NormSpec("norm8")
	if !ok || s8.ByteCount != 1 || s8.MaxValue != 255 {
		t.Errorf("serial8 norm8 = %+v", s8)
	}
	s16, ok := serial.NormSpec("norm16")
	if !ok || s16.ByteCount != 2 || s16.MaxValue != 65535 {
		t.Errorf("serial8 norm16 = %+v", s16)
	}
}

func TestStringSpecs(t *testing.T) {
	sysex := encoding.SysEx{}.StringSpec()
	if sysex.LengthMask != 0x7F || sysex.CharMask != 0x7F || sysex.MaxLength != 127 {
		t.Errorf("sysex string spec = %+v", sysex)
	}
	serial := encoding.Serial8{}.StringSpec()
	if serial.LengthMask != 0xFF || serial.CharMask != 0xFF || serial.MaxLength != 255 {
		t.Errorf("serial8 string spec = %+v", serial)
	}

	for _, s := range []encoding.Strategy{encoding.Serial8{}, encoding.SysEx{}} {
		if got := s.StringMaxEncodedSize(32); got != 33 {
			t.Errorf("%s.StringMaxEncodedSize(32) = %d, want 33", s.Name(), got)
		}
		if got := s.StringMinEncodedSize(); got != 1 {
			t.Errorf("%s.StringMinEncodedSize() = %d, want 1", s.Name(), got)
		}
	}
}

func TestBoolWireValues(t *testing.T) {
	for _, s := range []encoding.Strategy{encoding.Serial8{}, encoding.SysEx{}} {
		if s.BoolTrue() != 0x01 || s.BoolFalse() != 0x00 {
			t.Errorf("%s bool values = (%#x, %#x)", s.Name(), s.BoolTrue(), s.BoolFalse())
		}
	}
}

func TestSysExMasksAreSevenBitSafe(t *testing.T) {
	s := encoding.SysEx{}
	for _, typeName := range []string{"uint8", "uint16", "uint32", "float32"} {
		spec, _ := s.IntegerSpec(typeName)
		for i, m := range spec.Masks {
			if m > 0x7F {
				t.Errorf("%s: Masks[%d] = %#x exceeds 0x7F", typeName, i, m)
			}
		}
	}
}
