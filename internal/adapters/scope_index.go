package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"rust-protogen/internal/ports"
	"rust-protogen/internal/types"
)

// ScopeIndexAdapter is an in-memory scope registry built from YAML
// schema summaries. It backs the CLI and tests; a real descriptor
// loader implements ports.Scope directly.
//
// Each call to LoadSummary adds a layer. When two summaries declare
// the same fully-qualified name the later load wins.
type ScopeIndexAdapter struct {
	entities map[string]scopeEntity
}

func NewScopeIndexAdapter() *ScopeIndexAdapter {
	return &ScopeIndexAdapter{entities: map[string]scopeEntity{}}
}

type summaryFile struct {
	Name     string           `yaml:"name"`
	Package  string           `yaml:"package"`
	Messages []summaryMessage `yaml:"messages"`
	Enums    []summaryEnum    `yaml:"enums"`
}

type summaryMessage struct {
	// Name is the in-file protobuf name; nesting is spelled with dots
	// ("Outer.Inner").
	Name string `yaml:"name"`
}

type summaryEnum struct {
	Name           string `yaml:"name"`
	DefaultVariant string `yaml:"default_variant"`
}

type schemaSummary struct {
	Files []summaryFile `yaml:"files"`
}

// LoadSummary merges a schema summary file into the registry.
func (a *ScopeIndexAdapter) LoadSummary(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("schema summary not found").
			WithCause(err)
	}
	return a.LoadSummaryData(data)
}

// LoadSummaryData merges a parsed schema summary into the registry.
func (a *ScopeIndexAdapter) LoadSummaryData(data []byte) error {
	var summary schemaSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema summary yaml").
			WithCause(err)
	}
	for _, file := range summary.Files {
		if strings.TrimSpace(file.Name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("schema summary file entry missing name")
		}
		for _, message := range file.Messages {
			entity, err := newScopeEntity(file, message.Name, types.EntityKindMessage, "")
			if err != nil {
				return err
			}
			a.entities[entity.fullName] = entity
		}
		for _, enum := range file.Enums {
			entity, err := newScopeEntity(file, enum.Name, types.EntityKindEnum, types.Ident(enum.DefaultVariant))
			if err != nil {
				return err
			}
			a.entities[entity.fullName] = entity
		}
	}
	return nil
}

// FindMessageOrEnum implements ports.Scope.
func (a *ScopeIndexAdapter) FindMessageOrEnum(absoluteName string) (ports.Entity, error) {
	entity, ok := a.entities[absoluteName]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("message or enum not found: %s", absoluteName))
	}
	return entity, nil
}

type scopeEntity struct {
	kind           types.EntityKind
	fileName       string
	filePackage    string
	fullName       string
	rustIdent      types.Ident
	fileModule     types.Ident
	defaultVariant types.Ident
}

func newScopeEntity(file summaryFile, name string, kind types.EntityKind, defaultVariant types.Ident) (scopeEntity, error) {
	if strings.TrimSpace(name) == "" {
		return scopeEntity{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("schema summary entry in %s missing name", file.Name))
	}
	if kind == types.EntityKindEnum && defaultVariant == "" {
		return scopeEntity{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("enum %s in %s missing default_variant", name, file.Name))
	}
	fullName := name
	if file.Package != "" {
		fullName = file.Package + "." + name
	}
	return scopeEntity{
		kind:        kind,
		fileName:    file.Name,
		filePackage: file.Package,
		fullName:    fullName,
		// Nested declarations are emitted at file level with their
		// enclosing names joined by underscores.
		rustIdent:      types.Ident(strings.ReplaceAll(name, ".", "_")),
		fileModule:     fileModuleName(file.Name),
		defaultVariant: defaultVariant,
	}, nil
}

// fileModuleName derives the generated file's module name from the
// .proto file name: final path component, extension stripped, and any
// character Rust forbids in a module name replaced by an underscore.
func fileModuleName(fileName string) types.Ident {
	base := fileName
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.TrimSuffix(base, ".proto")
	var sb strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return types.Ident(sb.String())
}

func (e scopeEntity) Kind() types.EntityKind      { return e.kind }
func (e scopeEntity) FileName() string            { return e.fileName }
func (e scopeEntity) FilePackage() string         { return e.filePackage }
func (e scopeEntity) FullName() string            { return e.fullName }
func (e scopeEntity) DefaultVariant() types.Ident { return e.defaultVariant }

func (e scopeEntity) RustNameToFile() types.IdentPath {
	return types.RelativeIdentPath(e.rustIdent)
}

func (e scopeEntity) RustNameWithFile() types.IdentPath {
	return types.RelativeIdentPath(e.rustIdent, e.fileModule)
}
