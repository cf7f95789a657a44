package policies

import (
	"strings"

	"rust-protogen/internal/types"
)

// wellKnownRustNames maps the fully-qualified protobuf name of each
// well-known type to the symbol exported by the runtime's
// well_known_types module. Read-only for the process lifetime.
var wellKnownRustNames = map[string]types.Ident{
	"google.protobuf.Any":           "Any",
	"google.protobuf.Api":           "Api",
	"google.protobuf.BoolValue":     "BoolValue",
	"google.protobuf.BytesValue":    "BytesValue",
	"google.protobuf.DoubleValue":   "DoubleValue",
	"google.protobuf.Duration":      "Duration",
	"google.protobuf.Empty":         "Empty",
	"google.protobuf.Enum":          "Enum",
	"google.protobuf.EnumValue":     "EnumValue",
	"google.protobuf.Field":         "Field",
	"google.protobuf.FieldMask":     "FieldMask",
	"google.protobuf.FloatValue":    "FloatValue",
	"google.protobuf.Int32Value":    "Int32Value",
	"google.protobuf.Int64Value":    "Int64Value",
	"google.protobuf.ListValue":     "ListValue",
	"google.protobuf.Method":        "Method",
	"google.protobuf.Mixin":         "Mixin",
	"google.protobuf.NullValue":     "NullValue",
	"google.protobuf.Option":        "Option",
	"google.protobuf.SourceContext": "SourceContext",
	"google.protobuf.StringValue":   "StringValue",
	"google.protobuf.Struct":        "Struct",
	"google.protobuf.Syntax":        "Syntax",
	"google.protobuf.Timestamp":     "Timestamp",
	"google.protobuf.Type":          "Type",
	"google.protobuf.UInt32Value":   "UInt32Value",
	"google.protobuf.UInt64Value":   "UInt64Value",
	"google.protobuf.Value":         "Value",
}

const (
	bootstrapPackage  = "google.protobuf"
	bootstrapBasename = "descriptor.proto"
)

// WellKnownRustName returns the runtime symbol for a well-known type's
// fully-qualified protobuf name.
func WellKnownRustName(fullName string) (types.Ident, bool) {
	name, ok := wellKnownRustNames[fullName]
	return name, ok
}

// IsBootstrapFile reports whether the file is the self-describing
// schema (descriptor.proto), whose generated types ship with the
// runtime under a dedicated root. Only the file name's final path
// component is compared; the directory prefix is irrelevant.
func IsBootstrapFile(fileName string, filePackage string) bool {
	return filePackage == bootstrapPackage && fileLastComponent(fileName) == bootstrapBasename
}

// fileLastComponent handles both separator conventions that appear in
// descriptor file names.
func fileLastComponent(fileName string) string {
	slash := strings.LastIndexByte(fileName, '/')
	backslash := strings.LastIndexByte(fileName, '\\')
	return fileName[max(slash, backslash)+1:]
}
