package types

import "strings"

// Ident is a single Rust identifier.
type Ident string

// SuperIdent is the path segment climbing one module up.
const SuperIdent Ident = "super"

// Path is a Rust module path: an ordered list of segments, optionally
// anchored at the crate root with a leading "::".
type Path struct {
	Absolute bool
	Segments []Ident
}

func RelativePath(segments ...Ident) Path {
	return Path{Segments: segments}
}

func AbsolutePath(segments ...Ident) Path {
	return Path{Absolute: true, Segments: segments}
}

func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// First returns the leading segment, if any.
func (p Path) First() (Ident, bool) {
	if len(p.Segments) == 0 {
		return "", false
	}
	return p.Segments[0], true
}

// WithoutFirst drops the leading segment. Dropping from an empty path
// yields an empty path.
func (p Path) WithoutFirst() Path {
	if len(p.Segments) == 0 {
		return p
	}
	return Path{Absolute: p.Absolute, Segments: p.Segments[1:]}
}

// ToReverse builds the path climbing back out of p: one `super` per
// segment. Only meaningful for relative paths.
func (p Path) ToReverse() Path {
	segments := make([]Ident, len(p.Segments))
	for i := range segments {
		segments[i] = SuperIdent
	}
	return Path{Segments: segments}
}

// Append joins other's segments onto p, keeping p's anchoring.
func (p Path) Append(other Path) Path {
	segments := make([]Ident, 0, len(p.Segments)+len(other.Segments))
	segments = append(segments, p.Segments...)
	segments = append(segments, other.Segments...)
	return Path{Absolute: p.Absolute, Segments: segments}
}

func (p Path) AppendIdent(ident Ident) Path {
	return p.Append(RelativePath(ident))
}

// WithIdent closes the path over a final identifier.
func (p Path) WithIdent(ident Ident) IdentPath {
	return IdentPath{Path: p, Ident: ident}
}

func (p Path) Equal(other Path) bool {
	if p.Absolute != other.Absolute || len(p.Segments) != len(other.Segments) {
		return false
	}
	for i, segment := range p.Segments {
		if segment != other.Segments[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	var sb strings.Builder
	for i, segment := range p.Segments {
		if i > 0 || p.Absolute {
			sb.WriteString("::")
		}
		sb.WriteString(string(segment))
	}
	return sb.String()
}

// IdentPath is a module path ending in an identifier: the qualified
// name of one item.
type IdentPath struct {
	Path  Path
	Ident Ident
}

func RelativeIdentPath(ident Ident, segments ...Ident) IdentPath {
	return IdentPath{Path: RelativePath(segments...), Ident: ident}
}

// IdentPathFromString parses a "::"-joined qualified name. A leading
// "::" anchors the path at the crate root.
func IdentPathFromString(s string) IdentPath {
	absolute := strings.HasPrefix(s, "::")
	if absolute {
		s = strings.TrimPrefix(s, "::")
	}
	parts := strings.Split(s, "::")
	segments := make([]Ident, 0, len(parts)-1)
	for _, part := range parts[:len(parts)-1] {
		segments = append(segments, Ident(part))
	}
	return IdentPath{
		Path:  Path{Absolute: absolute, Segments: segments},
		Ident: Ident(parts[len(parts)-1]),
	}
}

// PrependPath rebases the name under prefix.
func (p IdentPath) PrependPath(prefix Path) IdentPath {
	return prefix.Append(p.Path).WithIdent(p.Ident)
}

func (p IdentPath) Equal(other IdentPath) bool {
	return p.Ident == other.Ident && p.Path.Equal(other.Path)
}

func (p IdentPath) String() string {
	if p.Path.IsEmpty() && !p.Path.Absolute {
		return string(p.Ident)
	}
	return p.Path.String() + "::" + string(p.Ident)
}

// FileContext locates the code being generated: the .proto file under
// compilation and the module position inside its generated file.
type FileContext struct {
	File        string
	RelativeMod Path
}
