// Package encoding defines the two wire byte-layout policies and the
// shift/mask tables they derive for every builtin type.
//
// A Strategy is pure data selection: the real variation between the 8-bit
// and 7-bit protocols is the tables, not behavior, so both implementations
// are thin accessors over precomputed specs.
package encoding

import "fmt"

// IntegerSpec describes how a fixed-width integer is split into wire
// bytes: byte i carries (value >> Shifts[i]) & Masks[i].
type IntegerSpec struct {
	ByteCount int
	Shifts    []int
	Masks     []int
	Comment   string
}

// NormSpec describes a normalized float in [0,1] transmitted as a scaled
// unsigned integer. The 1-byte form encodes directly; wider forms reuse
// the matching integer spec instead of duplicating its table.
type NormSpec struct {
	ByteCount int
	MaxValue  int
	Integer   *IntegerSpec
	Comment   string
}

// StringSpec describes the length-prefixed string layout.
type StringSpec struct {
	LengthMask int
	CharMask   int
	MaxLength  int
	Comment    string
}

// Strategy is the protocol-specific byte-layout policy. Exactly two
// implementations exist; callers select one per generation run and never
// mix them.
type Strategy interface {
	// Name is the protocol name used in documentation and IR metadata.
	Name() string
	// Description is a one-line summary for generated comments.
	Description() string

	// IntegerSpec returns the byte layout for an integer (or float32,
	// which borrows the 4-byte layout after a bitcast).
	IntegerSpec(typeName string) (*IntegerSpec, bool)
	// NormSpec returns the layout for norm8/norm16.
	NormSpec(typeName string) (*NormSpec, bool)
	// StringSpec returns the length-prefixed string layout.
	StringSpec() StringSpec

	// BoolTrue and BoolFalse are the wire values for booleans. Both
	// strategies use 0x01/0x00 today, but the values are strategy-owned.
	BoolTrue() byte
	BoolFalse() byte

	// EncodedSize maps a builtin type to its encoded byte count given its
	// raw size. Fast path for the payload calculator.
	EncodedSize(typeName string, rawSize int) int
	// StringMaxEncodedSize is the worst case for a string field.
	StringMaxEncodedSize(maxLength int) int
	// StringMinEncodedSize is the empty string: length prefix only.
	StringMinEncodedSize() int

	// AlwaysEncodeArrayCount reports whether arrays carry a 1-byte count
	// prefix on the wire. The codec IR builders and the payload
	// calculator both read this flag, so the two paths cannot disagree.
	AlwaysEncodeArrayCount() bool
}

// Select resolves a strategy by its registered name. Valid names:
// "binary" and "serial8" for the 8-bit layout, "sysex" for the 7-bit one.
func Select(name string) (Strategy, error) {
	switch name {
	case "binary", "serial8":
		return Serial8{}, nil
	case "sysex":
		return SysEx{}, nil
	}
	return nil, fmt.Errorf("unknown encoding strategy %q (want binary, serial8 or sysex)", name)
}
