package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rust-protogen/internal/types"
)

type typeGenKind string

const (
	typeGenPrimitive     typeGenKind = "primitive"
	typeGenMessage       typeGenKind = "message"
	typeGenEnum          typeGenKind = "enum"
	typeGenEnumOrUnknown typeGenKind = "enum-or-unknown"
)

// TypeGen names the runtime codec type responsible for the wire
// (de)serialization of a field type.
type TypeGen struct {
	kind      typeGenKind
	primitive types.FieldKind
	mode      types.BytesMode
	name      types.IdentPath
}

func TypeGenPrimitive(kind types.FieldKind, mode types.BytesMode) TypeGen {
	return TypeGen{kind: typeGenPrimitive, primitive: kind, mode: mode}
}

func TypeGenMessage(name types.IdentPath) TypeGen {
	return TypeGen{kind: typeGenMessage, name: name}
}

func TypeGenEnum(name types.IdentPath) TypeGen {
	return TypeGen{kind: typeGenEnum, name: name}
}

func TypeGenEnumOrUnknown(name types.IdentPath) TypeGen {
	return TypeGen{kind: typeGenEnumOrUnknown, name: name}
}

// RustTypeName renders the codec type emitted into serialization glue.
// Shared-buffer mode only exists for bytes and string primitives.
func (g TypeGen) RustTypeName() (string, error) {
	switch g.kind {
	case typeGenPrimitive:
		if g.mode == types.BytesModeShared {
			switch g.primitive {
			case types.FieldKindBytes:
				return "::protobuf::types::ProtobufTypeCarllercheBytes", nil
			case types.FieldKindString:
				return "::protobuf::types::ProtobufTypeCarllercheChars", nil
			}
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("shared bytes mode is not defined for field kind %s", g.primitive))
		}
		return fmt.Sprintf("::protobuf::types::ProtobufType%s", capitalize(ProtobufName(g.primitive))), nil
	case typeGenMessage:
		return fmt.Sprintf("::protobuf::types::ProtobufTypeMessage<%s>", g.name), nil
	case typeGenEnumOrUnknown:
		return fmt.Sprintf("::protobuf::types::ProtobufTypeEnumOrUnknown<%s>", g.name), nil
	case typeGenEnum:
		return fmt.Sprintf("::protobuf::types::ProtobufTypeEnum<%s>", g.name), nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("empty codec type")
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
