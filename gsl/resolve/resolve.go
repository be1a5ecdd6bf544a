package resolve

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/georm-db/georm/gsl/ast"
	"github.com/georm-db/georm/gsl/diagnostics"
)

// Resolve lowers a parsed schema into validated entity descriptors.
//
// Diagnostics accumulate across entities so a single run reports every
// problem, but an entity with any error is dropped from the result:
// generation never produces partial output for a failed entity.
func Resolve(schema *ast.Schema) ([]*Entity, diagnostics.Diagnostics) {
	diags := diagnostics.NewDiagnostics()

	type pending struct {
		decl *ast.Entity
		ent  *Entity
	}

	var pendings []pending
	byName := make(map[string]*Entity)
	tableOwner := make(map[string]string)

	for _, decl := range schema.Entities {
		before := len(diags.Errors())
		ent := resolveEntity(decl, &diags)

		if existing := byName[ent.Name]; existing != nil {
			diags.PushError(diagnostics.NewDuplicateEntityError(ent.Name, identSpan(decl.Name)))
			continue
		}
		if owner, taken := tableOwner[ent.Table]; taken && ent.Table != "" {
			diags.PushError(diagnostics.NewDuplicateEntityTableError(ent.Table, ent.Name, owner, identSpan(decl.Name)))
			continue
		}

		byName[ent.Name] = ent
		if ent.Table != "" {
			tableOwner[ent.Table] = ent.Name
		}
		if len(diags.Errors()) > before {
			continue
		}
		pendings = append(pendings, pending{decl: decl, ent: ent})
	}

	// Relations need the full entity set for cross-references, so they
	// resolve in a second pass.
	var entities []*Entity
	for _, p := range pendings {
		before := len(diags.Errors())
		resolveRelations(p.decl, p.ent, byName, &diags)
		if len(diags.Errors()) > before {
			continue
		}
		entities = append(entities, p.ent)
	}

	return entities, diags
}

// resolveEntity lowers a single entity declaration, pushing diagnostics for
// every violation it finds.
func resolveEntity(decl *ast.Entity, diags *diagnostics.Diagnostics) *Entity {
	ent := &Entity{
		Name: decl.GetName(),
		Doc:  decl.GetDocumentation(),
		Span: nodeSpan(decl.Pos, decl.EndPos),
	}

	tables := decl.TableProps()
	switch {
	case len(tables) == 0:
		diags.PushError(diagnostics.NewMissingTableError(ent.Name, identSpan(decl.Name)))
	case len(tables) > 1:
		diags.PushError(diagnostics.NewDuplicateTableDeclarationError(ent.Name, nodeSpan(tables[1].Pos, tables[1].EndPos)))
	default:
		ent.Table = tables[0].Name
		if ent.Table == "" {
			diags.PushError(diagnostics.NewEntityValidationError("the table name cannot be empty.", ent.Name, nodeSpan(tables[0].Pos, tables[0].EndPos)))
		}
	}

	seen := make(map[string]bool)
	for _, fieldDecl := range decl.Fields() {
		field := resolveField(ent.Name, fieldDecl, diags)
		if seen[field.Name] {
			diags.PushError(diagnostics.NewFieldValidationError("the field is already defined.", ent.Name, field.Name, field.Span))
			continue
		}
		seen[field.Name] = true
		ent.Fields = append(ent.Fields, field)
	}

	if len(ent.IDFields()) == 0 {
		diags.PushError(diagnostics.NewMissingIdentifierError(ent.Name, identSpan(decl.Name)))
	}

	return ent
}

// knownFieldAttributes is the closed set of field-level attribute names.
var knownFieldAttributes = map[string]bool{
	"id":          true,
	"defaultable": true,
	"relation":    true,
}

func resolveField(entityName string, decl *ast.Field, diags *diagnostics.Diagnostics) *Field {
	field := &Field{
		Name:     decl.GetName(),
		GoName:   GoName(decl.GetName()),
		SQLType:  decl.GetTypeName(),
		Nullable: decl.IsOptional(),
		Span:     nodeSpan(decl.Pos, decl.EndPos),
	}

	goType, ok := GoTypeFor(field.SQLType)
	if !ok {
		diags.PushError(diagnostics.NewUnknownScalarTypeError(field.SQLType, entityName, field.Name, typeSpan(decl)))
	}
	field.GoType = goType

	for _, attr := range decl.Attributes {
		attrSpan := nodeSpan(attr.Pos, attr.EndPos)
		switch attr.GetName() {
		case "id":
			rejectArguments(attr, diags)
			field.ID = true
		case "defaultable":
			rejectArguments(attr, diags)
			if field.Nullable {
				diags.PushError(diagnostics.NewDefaultableNullableError(entityName, field.Name, attrSpan))
				continue
			}
			field.Defaultable = true
		case "relation":
			// Resolved in the relation pass; only the attribute name is
			// checked here.
		default:
			diags.PushError(diagnostics.NewUnknownAttributeError(attr.GetName(), attrSpan))
		}
	}

	return field
}

// rejectArguments pushes an error for every argument on a marker attribute
// that takes none.
func rejectArguments(attr *ast.Attribute, diags *diagnostics.Diagnostics) {
	for _, arg := range attr.Arguments.Iter() {
		name := arg.GetName()
		if name == "" {
			name = arg.Value.String()
		}
		diags.PushError(diagnostics.NewUnknownArgumentError(name, attr.GetName(), nodeSpan(arg.Pos, arg.EndPos)))
	}
}

func nodeSpan(pos, end lexer.Position) diagnostics.Span {
	start := pos.Offset
	stop := end.Offset
	if stop < start {
		stop = start
	}
	return diagnostics.NewSpan(start, stop, diagnostics.FileIDZero)
}

func identSpan(id *ast.Identifier) diagnostics.Span {
	if id == nil {
		return diagnostics.EmptySpan()
	}
	return diagnostics.NewSpan(id.Pos.Offset, id.Pos.Offset+len(id.Name), diagnostics.FileIDZero)
}

func typeSpan(f *ast.Field) diagnostics.Span {
	if f.Type == nil {
		return nodeSpan(f.Pos, f.EndPos)
	}
	return diagnostics.NewSpan(f.Type.Pos.Offset, f.Type.Pos.Offset+len(f.Type.Name), diagnostics.FileIDZero)
}
