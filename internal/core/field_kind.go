package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rust-protogen/internal/types"
)

// PrimitiveRustType maps a primitive protobuf wire kind to its Rust
// representation. Message, enum and group kinds are produced by other
// collaborators as Message/Enum/Group types directly; mapping them
// through here is a programming error.
func PrimitiveRustType(kind types.FieldKind) (types.RustType, error) {
	switch kind {
	case types.FieldKindDouble:
		return types.Float(64), nil
	case types.FieldKindFloat:
		return types.Float(32), nil
	case types.FieldKindInt32, types.FieldKindSint32, types.FieldKindSfixed32:
		return types.Int(true, 32), nil
	case types.FieldKindInt64, types.FieldKindSint64, types.FieldKindSfixed64:
		return types.Int(true, 64), nil
	case types.FieldKindUint32, types.FieldKindFixed32:
		return types.Int(false, 32), nil
	case types.FieldKindUint64, types.FieldKindFixed64:
		return types.Int(false, 64), nil
	case types.FieldKindBool:
		return types.Bool(), nil
	case types.FieldKindString:
		return types.String(), nil
	case types.FieldKindBytes:
		return types.Vec(types.U8()), nil
	}
	return types.RustType{}, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("no primitive rust type for field kind %s", kind))
}

// ProtobufName returns the protobuf type name of any field kind; the
// kind's string value is the name.
func ProtobufName(kind types.FieldKind) string {
	return string(kind)
}

// WrapType applies the caller-selected presence/repeatedness wrapper
// around a field's base type.
func WrapType(base types.RustType, wrapper types.WrapperKind) (types.RustType, error) {
	switch wrapper {
	case types.WrapperKindPlain:
		return base, nil
	case types.WrapperKindOption:
		return types.Option(base), nil
	case types.WrapperKindSingular:
		return types.SingularField(base), nil
	case types.WrapperKindSingularPtr:
		return types.SingularPtrField(base), nil
	case types.WrapperKindVec:
		return types.Vec(base), nil
	case types.WrapperKindRepeated:
		return types.RepeatedField(base), nil
	}
	return types.RustType{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unknown wrapper kind: %s", wrapper))
}
