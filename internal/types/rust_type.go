package types

import "fmt"

// TypeKind discriminates the closed set of Rust types the generator
// emits. Adding a protobuf wire kind extends the field-kind mapping in
// core; it never adds ad-hoc kinds downstream.
type TypeKind string

const (
	KindInt           TypeKind = "int"
	KindFloat         TypeKind = "float"
	KindBool          TypeKind = "bool"
	KindString        TypeKind = "string"
	KindStr           TypeKind = "str"
	KindVec           TypeKind = "vec"
	KindHashMap       TypeKind = "hash-map"
	KindSlice         TypeKind = "slice"
	KindBytes         TypeKind = "bytes"
	KindChars         TypeKind = "chars"
	KindOption        TypeKind = "option"
	KindSingularField TypeKind = "singular-field"
	KindSingularPtr   TypeKind = "singular-ptr-field"
	KindRepeatedField TypeKind = "repeated-field"
	KindBox           TypeKind = "box"
	KindRef           TypeKind = "ref"
	KindMessage       TypeKind = "message"
	KindEnum          TypeKind = "enum"
	KindEnumOrUnknown TypeKind = "enum-or-unknown"
	KindOneof         TypeKind = "oneof"
	KindGroup         TypeKind = "group"
)

// RustType is one node of the recursive type union. Values are built
// through the constructors below, never mutated, and compared
// structurally with Equal.
type RustType struct {
	Kind TypeKind

	// KindInt / KindFloat payload.
	Signed bool
	Bits   int

	// Single-element payload for Vec, Slice, Option, SingularField,
	// SingularPtr, RepeatedField, Box and Ref.
	Elem *RustType

	// KindHashMap payload.
	Key   *RustType
	Value *RustType

	// Message/Enum/EnumOrUnknown/Oneof payload.
	Name IdentPath
	// Declared default variant for Enum and EnumOrUnknown.
	Default Ident
}

func Int(signed bool, bits int) RustType {
	return RustType{Kind: KindInt, Signed: signed, Bits: bits}
}

// U8 is the byte element type used by bytes fields and slice views.
func U8() RustType {
	return Int(false, 8)
}

func Float(bits int) RustType {
	return RustType{Kind: KindFloat, Bits: bits}
}

func Bool() RustType {
	return RustType{Kind: KindBool}
}

func String() RustType {
	return RustType{Kind: KindString}
}

func Str() RustType {
	return RustType{Kind: KindStr}
}

func Vec(elem RustType) RustType {
	return RustType{Kind: KindVec, Elem: &elem}
}

func HashMap(key RustType, value RustType) RustType {
	return RustType{Kind: KindHashMap, Key: &key, Value: &value}
}

func Slice(elem RustType) RustType {
	return RustType{Kind: KindSlice, Elem: &elem}
}

func Bytes() RustType {
	return RustType{Kind: KindBytes}
}

func Chars() RustType {
	return RustType{Kind: KindChars}
}

func Option(elem RustType) RustType {
	return RustType{Kind: KindOption, Elem: &elem}
}

func SingularField(elem RustType) RustType {
	return RustType{Kind: KindSingularField, Elem: &elem}
}

func SingularPtrField(elem RustType) RustType {
	return RustType{Kind: KindSingularPtr, Elem: &elem}
}

func RepeatedField(elem RustType) RustType {
	return RustType{Kind: KindRepeatedField, Elem: &elem}
}

func Box(elem RustType) RustType {
	return RustType{Kind: KindBox, Elem: &elem}
}

func Ref(elem RustType) RustType {
	return RustType{Kind: KindRef, Elem: &elem}
}

func Message(name IdentPath) RustType {
	return RustType{Kind: KindMessage, Name: name}
}

func Enum(name IdentPath, defaultVariant Ident) RustType {
	return RustType{Kind: KindEnum, Name: name, Default: defaultVariant}
}

func EnumOrUnknown(name IdentPath, defaultVariant Ident) RustType {
	return RustType{Kind: KindEnumOrUnknown, Name: name, Default: defaultVariant}
}

func Oneof(name IdentPath) RustType {
	return RustType{Kind: KindOneof, Name: name}
}

func Group() RustType {
	return RustType{Kind: KindGroup}
}

// Equal reports structural equality: same shape, same payloads.
func (t RustType) Equal(other RustType) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindInt:
		return t.Signed == other.Signed && t.Bits == other.Bits
	case KindFloat:
		return t.Bits == other.Bits
	case KindHashMap:
		return t.Key.Equal(*other.Key) && t.Value.Equal(*other.Value)
	case KindMessage, KindOneof:
		return t.Name.Equal(other.Name)
	case KindEnum, KindEnumOrUnknown:
		return t.Name.Equal(other.Name) && t.Default == other.Default
	}
	if t.Elem != nil || other.Elem != nil {
		if t.Elem == nil || other.Elem == nil {
			return false
		}
		return t.Elem.Equal(*other.Elem)
	}
	return true
}

// IsPrimitive reports whether the type is a Rust primitive.
func (t RustType) IsPrimitive() bool {
	switch t.Kind {
	case KindInt, KindFloat, KindBool:
		return true
	}
	return false
}

// IsCopy reports whether values are bitwise-duplicable without
// aliasing concerns: primitives and (wrapped) enums.
func (t RustType) IsCopy() bool {
	if t.IsPrimitive() {
		return true
	}
	return t.Kind == KindEnum || t.Kind == KindEnumOrUnknown
}

func (t RustType) IsU8() bool {
	return t.Kind == KindInt && !t.Signed && t.Bits == 8
}

func (t RustType) IsStr() bool {
	return t.Kind == KindStr
}

func (t RustType) IsString() bool {
	return t.Kind == KindString
}

// SliceElem returns the element type if t is a slice.
func (t RustType) SliceElem() (RustType, bool) {
	if t.Kind != KindSlice {
		return RustType{}, false
	}
	return *t.Elem, true
}

func (t RustType) IsSliceU8() bool {
	elem, ok := t.SliceElem()
	return ok && elem.IsU8()
}

func (t RustType) IsMessage() bool {
	return t.Kind == KindMessage
}

func (t RustType) IsEnum() bool {
	return t.Kind == KindEnum
}

func (t RustType) IsEnumOrUnknown() bool {
	return t.Kind == KindEnumOrUnknown
}

// RefElem returns the referenced type if t is a reference.
func (t RustType) RefElem() (RustType, bool) {
	if t.Kind != KindRef {
		return RustType{}, false
	}
	return *t.Elem, true
}

// BoxElem returns the boxed type if t is a box.
func (t RustType) BoxElem() (RustType, bool) {
	if t.Kind != KindBox {
		return RustType{}, false
	}
	return *t.Elem, true
}

// String renders the type as it appears in generated Rust source.
func (t RustType) String() string {
	switch t.Kind {
	case KindInt:
		if t.Signed {
			return fmt.Sprintf("i%d", t.Bits)
		}
		return fmt.Sprintf("u%d", t.Bits)
	case KindFloat:
		return fmt.Sprintf("f%d", t.Bits)
	case KindBool:
		return "bool"
	case KindString:
		return "::std::string::String"
	case KindStr:
		return "str"
	case KindVec:
		return fmt.Sprintf("::std::vec::Vec<%s>", t.Elem)
	case KindHashMap:
		return fmt.Sprintf("::std::collections::HashMap<%s, %s>", t.Key, t.Value)
	case KindSlice:
		return fmt.Sprintf("[%s]", t.Elem)
	case KindBytes:
		return "::bytes::Bytes"
	case KindChars:
		return "::protobuf::Chars"
	case KindOption:
		return fmt.Sprintf("::std::option::Option<%s>", t.Elem)
	case KindSingularField:
		return fmt.Sprintf("::protobuf::SingularField<%s>", t.Elem)
	case KindSingularPtr:
		return fmt.Sprintf("::protobuf::SingularPtrField<%s>", t.Elem)
	case KindRepeatedField:
		return fmt.Sprintf("::protobuf::RepeatedField<%s>", t.Elem)
	case KindBox:
		return fmt.Sprintf("::std::boxed::Box<%s>", t.Elem)
	case KindRef:
		return fmt.Sprintf("&%s", t.Elem)
	case KindMessage, KindEnum, KindOneof:
		return t.Name.String()
	case KindEnumOrUnknown:
		return fmt.Sprintf("::protobuf::ProtobufEnumOrUnknown<%s>", t.Name)
	case KindGroup:
		return "<group>"
	}
	return fmt.Sprintf("<unknown kind %s>", string(t.Kind))
}
