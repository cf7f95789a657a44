package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rust-protogen/internal/types"
)

// Convert produces the Rust expression turning expr of the source type
// into a value of the target type. The rules below are an ordered
// list: the first match wins, and the order is part of the engine's
// contract. An unmatched pair is a hard error, never an identity or a
// lossy cast.
func Convert(source types.RustType, target types.RustType, expr string) (string, error) {
	converted, ok := tryConvert(source, target, expr)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no conversion from %s to %s", source, target))
	}
	return converted, nil
}

func tryConvert(source types.RustType, target types.RustType, expr string) (string, bool) {
	// A reference to a boxed value degrades to a reference to the
	// value itself before any other rule is tried.
	if refElem, ok := source.RefElem(); ok {
		if boxed, ok := refElem.BoxElem(); ok {
			if targetElem, ok := target.RefElem(); ok && boxed.Equal(targetElem) {
				return fmt.Sprintf("&**%s", expr), true
			}
		}
	}

	if source.Equal(target) {
		return expr, true
	}
	if refElem, ok := source.RefElem(); ok && refElem.Equal(target) {
		return fmt.Sprintf("*%s", expr), true
	}
	if boxElem, ok := target.BoxElem(); ok && source.Equal(boxElem) {
		return fmt.Sprintf("::std::boxed::Box::new(%s)", expr), true
	}
	if boxElem, ok := source.BoxElem(); ok && boxElem.Equal(target) {
		return fmt.Sprintf("*%s", expr), true
	}
	if targetRef, ok := target.RefElem(); ok && targetRef.IsStr() {
		if source.IsString() || source.Kind == types.KindChars {
			return fmt.Sprintf("&%s", expr), true
		}
		if sourceRef, ok := source.RefElem(); ok && sourceRef.IsString() {
			return fmt.Sprintf("&%s", expr), true
		}
	}
	if sourceRef, ok := source.RefElem(); ok && sourceRef.IsStr() {
		if target.IsString() {
			return fmt.Sprintf("%s.to_owned()", expr), true
		}
		if target.Kind == types.KindChars {
			return fmt.Sprintf("<::protobuf::Chars as ::std::convert::From<_>>::from(%s.to_owned())", expr), true
		}
	}
	if sourceRef, ok := source.RefElem(); ok {
		if sliceElem, ok := sourceRef.SliceElem(); ok && target.Kind == types.KindVec && sliceElem.Equal(*target.Elem) {
			return fmt.Sprintf("%s.to_vec()", expr), true
		}
		if sourceRef.IsSliceU8() && target.Kind == types.KindBytes {
			return fmt.Sprintf("<::bytes::Bytes as ::std::convert::From<_>>::from(%s.to_vec())", expr), true
		}
	}
	if targetRef, ok := target.RefElem(); ok {
		if sliceElem, ok := targetRef.SliceElem(); ok {
			if source.Kind == types.KindVec && source.Elem.Equal(sliceElem) {
				return fmt.Sprintf("&%s", expr), true
			}
			if source.Kind == types.KindBytes && sliceElem.IsU8() {
				return fmt.Sprintf("&%s", expr), true
			}
			if sourceRef, ok := source.RefElem(); ok && sourceRef.Kind == types.KindVec && sourceRef.Elem.Equal(sliceElem) {
				return fmt.Sprintf("&%s", expr), true
			}
		}
	}
	if isI32(target) {
		switch {
		case source.IsEnum():
			return fmt.Sprintf("::protobuf::ProtobufEnum::value(&%s)", expr), true
		case source.IsEnumOrUnknown():
			return fmt.Sprintf("::protobuf::ProtobufEnumOrUnknown::value(&%s)", expr), true
		}
		if sourceRef, ok := source.RefElem(); ok {
			switch {
			case sourceRef.IsEnum():
				return fmt.Sprintf("::protobuf::ProtobufEnum::value(%s)", expr), true
			case sourceRef.IsEnumOrUnknown():
				return fmt.Sprintf("::protobuf::ProtobufEnumOrUnknown::value(%s)", expr), true
			}
		}
	}
	if source.IsEnumOrUnknown() && target.IsEnum() && source.Name.Equal(target.Name) {
		// Unrecognized wire values lower to the declared default
		// variant; the original numeric value is discarded.
		return fmt.Sprintf("::protobuf::ProtobufEnumOrUnknown::enum_value_or_default(&%s)", expr), true
	}
	if source.IsEnum() && target.IsEnumOrUnknown() && source.Name.Equal(target.Name) {
		return fmt.Sprintf("::protobuf::ProtobufEnumOrUnknown::new(%s)", expr), true
	}

	// A reference sees through to its target for conversion purposes.
	// References never nest in well-formed inputs, so this recursion
	// strictly shrinks the source.
	if refElem, ok := source.RefElem(); ok {
		return tryConvert(refElem, target, expr)
	}

	return "", false
}

func isI32(t types.RustType) bool {
	return t.Kind == types.KindInt && t.Signed && t.Bits == 32
}
