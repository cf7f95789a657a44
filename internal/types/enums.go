package types

// FieldKind is a protobuf wire-type kind as declared in a field
// descriptor. The string value is the protobuf type name.
type FieldKind string

const (
	FieldKindDouble   FieldKind = "double"
	FieldKindFloat    FieldKind = "float"
	FieldKindInt32    FieldKind = "int32"
	FieldKindInt64    FieldKind = "int64"
	FieldKindUint32   FieldKind = "uint32"
	FieldKindUint64   FieldKind = "uint64"
	FieldKindSint32   FieldKind = "sint32"
	FieldKindSint64   FieldKind = "sint64"
	FieldKindFixed32  FieldKind = "fixed32"
	FieldKindFixed64  FieldKind = "fixed64"
	FieldKindSfixed32 FieldKind = "sfixed32"
	FieldKindSfixed64 FieldKind = "sfixed64"
	FieldKindBool     FieldKind = "bool"
	FieldKindString   FieldKind = "string"
	FieldKindBytes    FieldKind = "bytes"
	FieldKindEnum     FieldKind = "enum"
	FieldKindMessage  FieldKind = "message"
	FieldKindGroup    FieldKind = "group"
)

// WrapperKind selects the presence/repeatedness container wrapped
// around a field's base type. The choice is policy owned by the
// caller, never derived here.
type WrapperKind string

const (
	WrapperKindPlain       WrapperKind = "plain"
	WrapperKindOption      WrapperKind = "option"
	WrapperKindSingular    WrapperKind = "singular"
	WrapperKindSingularPtr WrapperKind = "singular-ptr"
	WrapperKindVec         WrapperKind = "vec"
	WrapperKindRepeated    WrapperKind = "repeated"
)

// BytesMode selects the buffer representation generated for string and
// bytes fields: the default owned buffers, or the reference-counted
// bytes::Bytes / Chars representation.
type BytesMode string

const (
	BytesModeDefault BytesMode = "default"
	BytesModeShared  BytesMode = "shared"
)

// EntityKind distinguishes the two schema declarations the scope
// registry indexes.
type EntityKind string

const (
	EntityKindMessage EntityKind = "message"
	EntityKindEnum    EntityKind = "enum"
)
