package core

import "rust-protogen/internal/types"

// MakePathTo computes the shortest module path referencing dest from
// the module at source. Absolute destinations pass through untouched.
// Otherwise the shared leading prefix is stripped and every remaining
// source segment becomes one `super` traversal, followed by dest's
// remainder.
func MakePathTo(source types.Path, dest types.Path) types.Path {
	if dest.Absolute {
		return dest
	}
	for !source.IsEmpty() {
		sourceFirst, _ := source.First()
		destFirst, ok := dest.First()
		if !ok || sourceFirst != destFirst {
			break
		}
		source = source.WithoutFirst()
		dest = dest.WithoutFirst()
	}
	return source.ToReverse().Append(dest)
}

// MakePath rewrites a qualified symbol so it resolves from the module
// at source.
func MakePath(source types.Path, dest types.IdentPath) types.IdentPath {
	return MakePathTo(source, dest.Path).WithIdent(dest.Ident)
}
