// Package codec lowers atomic types into language-agnostic codec IR.
//
// Each type category (bool, integer, float, norm, string) has one encoder
// and one decoder builder. Builders are bound to an encoding.Strategy at
// construction and produce MethodSpec / DecoderMethodSpec records that
// external renderers turn into source code. Renderers must consume the
// shift/mask values carried here, never recompute them.
package codec

// VariableLength marks specs whose encoded size depends on the value.
const VariableLength = -1

// Preamble/postamble tags understood by renderers. These are the complete
// closed set; anything else in a spec is a bug.
const (
	// TagFloatBitcast asks the renderer to reinterpret the float's bit
	// pattern as a same-width unsigned integer before byte-splitting.
	TagFloatBitcast = "FLOAT_BITCAST"
	// TagNormClamp asks the renderer to clamp the value into [0,1] before
	// scaling. Always paired with a NORM_SCALE=<n> term.
	TagNormClamp = "NORM_CLAMP"
)

// ByteWriteOp is a single byte store in an encoder method.
type ByteWriteOp struct {
	// Index is the wire position relative to the field start.
	Index int `json:"index" msgpack:"index"`
	// Expression computes the byte from the value, e.g. "(val >> 7) & 0x7F".
	Expression string `json:"expression" msgpack:"expression"`
}

// ByteReadOp is a single byte load in a decoder method. Shift and Mask
// mirror the write side numerically so renderers need no parsing: the
// decoded value accumulates (buf[Index] & Mask) << Shift. Mask == 0 means
// the full byte is used (the 0xFF mask is elided).
type ByteReadOp struct {
	Index int `json:"index" msgpack:"index"`
	Shift int `json:"shift,omitempty" msgpack:"shift"`
	Mask  int `json:"mask,omitempty" msgpack:"mask"`
}

// MethodSpec is the IR for one atomic type's encoder method.
type MethodSpec struct {
	TypeName   string `json:"type_name" msgpack:"type_name"`
	MethodName string `json:"method_name" msgpack:"method_name"`
	ParamType  string `json:"param_type" msgpack:"param_type"`

	// ByteCount is the encoded width, or VariableLength.
	ByteCount  int           `json:"byte_count" msgpack:"byte_count"`
	ByteWrites []ByteWriteOp `json:"byte_writes" msgpack:"byte_writes"`

	DocComment string `json:"doc_comment" msgpack:"doc_comment"`

	// Preamble is a renderer tag applied before the byte writes, e.g.
	// TagFloatBitcast or "NORM_CLAMP;NORM_SCALE=255".
	Preamble string `json:"preamble,omitempty" msgpack:"preamble"`

	// NeedsSignedCast marks multi-byte signed integers: the renderer must
	// reinterpret the signed value as unsigned before splitting.
	NeedsSignedCast bool `json:"needs_signed_cast,omitempty" msgpack:"needs_signed_cast"`
}

// DecoderMethodSpec is the IR for one atomic type's decoder method.
type DecoderMethodSpec struct {
	TypeName   string `json:"type_name" msgpack:"type_name"`
	MethodName string `json:"method_name" msgpack:"method_name"`
	ResultType string `json:"result_type" msgpack:"result_type"`

	ByteCount int          `json:"byte_count" msgpack:"byte_count"`
	ByteReads []ByteReadOp `json:"byte_reads" msgpack:"byte_reads"`

	DocComment string `json:"doc_comment" msgpack:"doc_comment"`

	// Postamble is a renderer tag applied after the byte reads, e.g.
	// TagFloatBitcast, "NORM_SCALE=65535" or the string
	// "LENGTH_MASK=0x7F;CHAR_MASK=0x7F;MAX_LENGTH=127" metadata.
	Postamble string `json:"postamble,omitempty" msgpack:"postamble"`

	NeedsSignedCast bool `json:"needs_signed_cast,omitempty" msgpack:"needs_signed_cast"`
}
