package app

import "rust-protogen/internal/types"

type DescribeFieldRequest struct {
	Kind    types.FieldKind
	Wrapper types.WrapperKind
	Bytes   types.BytesMode
}

type DescribeFieldResult struct {
	RustType     string
	DefaultValue string
	ClearExpr    string
	CodecType    string
}

type ConvertRequest struct {
	Source types.RustType
	Target types.RustType
	Expr   string
}

type ConvertResult struct {
	Expr string
}

type ResolvePathRequest struct {
	From       []string
	To         []string
	ToAbsolute bool
}

type ResolvePathResult struct {
	Segments []string
	Rendered string
}

type ReferenceRequest struct {
	TypeName string
	File     string
	Module   []string
}

type ReferenceResult struct {
	Reference string
}
