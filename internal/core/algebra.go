package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rust-protogen/internal/types"
)

// unrepresentable reports an operation invoked outside its defined
// domain. The emitter selects every type it later queries, so hitting
// this is an internal-consistency violation, not a schema error.
func unrepresentable(op string, t types.RustType) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("cannot %s for type %s", op, t))
}

// DefaultValue produces the Rust expression constructing the default
// value of the type. Types with no owned default (bare references
// other than &str/&[..]/&Message, oneofs, groups, boxes) are rejected.
func DefaultValue(t types.RustType) (string, error) {
	switch t.Kind {
	case types.KindRef:
		elem := *t.Elem
		switch {
		case elem.IsStr():
			return `""`, nil
		case elem.Kind == types.KindSlice:
			return "&[]", nil
		case elem.IsMessage():
			return fmt.Sprintf("<%s as ::protobuf::Message>::default_instance()", elem), nil
		}
	case types.KindInt:
		return "0", nil
	case types.KindFloat:
		return "0.", nil
	case types.KindBool:
		return "false", nil
	case types.KindVec:
		return "::std::vec::Vec::new()", nil
	case types.KindHashMap:
		return "::std::collections::HashMap::new()", nil
	case types.KindString:
		return "::std::string::String::new()", nil
	case types.KindBytes:
		return "::bytes::Bytes::new()", nil
	case types.KindChars:
		return "::protobuf::Chars::new()", nil
	case types.KindOption:
		return "::std::option::Option::None", nil
	case types.KindSingularField:
		return "::protobuf::SingularField::none()", nil
	case types.KindSingularPtr:
		return "::protobuf::SingularPtrField::none()", nil
	case types.KindRepeatedField:
		return "::protobuf::RepeatedField::new()", nil
	case types.KindMessage:
		return fmt.Sprintf("%s::new()", t.Name), nil
	case types.KindEnum:
		// The enum type's default variant may differ from a field's
		// declared default value.
		return fmt.Sprintf("%s::%s", t.Name, t.Default), nil
	case types.KindEnumOrUnknown:
		return fmt.Sprintf("::protobuf::ProtobufEnumOrUnknown::new(%s::%s)", t.Name, t.Default), nil
	}
	return "", unrepresentable("create default value", t)
}

// Clear produces the statement resetting variable v to its cleared
// state: None for options, clear-in-place for containers and buffers,
// default-value assignment for scalars.
func Clear(t types.RustType, v string) (string, error) {
	switch t.Kind {
	case types.KindOption:
		return fmt.Sprintf("%s = ::std::option::Option::None", v), nil
	case types.KindVec,
		types.KindBytes,
		types.KindString,
		types.KindRepeatedField,
		types.KindSingularField,
		types.KindSingularPtr,
		types.KindHashMap:
		return fmt.Sprintf("%s.clear()", v), nil
	case types.KindChars:
		return fmt.Sprintf("::protobuf::Clear::clear(&mut %s)", v), nil
	case types.KindBool,
		types.KindFloat,
		types.KindInt,
		types.KindEnum,
		types.KindEnumOrUnknown:
		defaultValue, err := DefaultValue(t)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s", v, defaultValue), nil
	}
	return "", unrepresentable("clear", t)
}

// RefType returns the borrowed view type of an owned type: &str for
// strings, &[T] for sequences, &[u8] for byte buffers, &Message and
// &Box<T> for heap values.
func RefType(t types.RustType) (types.RustType, error) {
	switch t.Kind {
	case types.KindString, types.KindChars:
		return types.Ref(types.Str()), nil
	case types.KindVec, types.KindRepeatedField:
		return types.Ref(types.Slice(*t.Elem)), nil
	case types.KindBytes:
		return types.Ref(types.Slice(types.U8())), nil
	case types.KindMessage, types.KindBox:
		return types.Ref(t), nil
	}
	return types.RustType{}, unrepresentable("make ref type", t)
}

// ElemType unwraps a presence wrapper.
func ElemType(t types.RustType) (types.RustType, error) {
	switch t.Kind {
	case types.KindOption, types.KindSingularField, types.KindSingularPtr:
		return *t.Elem, nil
	}
	return types.RustType{}, unrepresentable("get elem type", t)
}

// IterElemType is the type of v in `for v in value`: a reference to
// the container's element.
func IterElemType(t types.RustType) (types.RustType, error) {
	switch t.Kind {
	case types.KindVec,
		types.KindOption,
		types.KindRepeatedField,
		types.KindSingularField,
		types.KindSingularPtr:
		return types.Ref(*t.Elem), nil
	}
	return types.RustType{}, unrepresentable("iterate", t)
}

// TypedValue is a generated expression together with its type.
type TypedValue struct {
	Expr string
	Type types.RustType
}

// DefaultValueTyped pairs a type's default expression with the type.
func DefaultValueTyped(t types.RustType) (TypedValue, error) {
	expr, err := DefaultValue(t)
	if err != nil {
		return TypedValue{}, err
	}
	return TypedValue{Expr: expr, Type: t}, nil
}

// IntoType converts the value to the target type through the
// conversion engine.
func (v TypedValue) IntoType(target types.RustType) (TypedValue, error) {
	expr, err := Convert(v.Type, target, v.Expr)
	if err != nil {
		return TypedValue{}, err
	}
	return TypedValue{Expr: expr, Type: target}, nil
}

// Boxed wraps the value in a heap allocation.
func (v TypedValue) Boxed() (TypedValue, error) {
	return v.IntoType(types.Box(v.Type))
}
