package resolve

import (
	"github.com/georm-db/georm/gsl/ast"
	"github.com/georm-db/georm/gsl/diagnostics"
)

// knownBlockAttributes maps entity-level attribute names to relation kinds.
var knownBlockAttributes = map[string]RelationKind{
	"one_to_one":   OneToOne,
	"one_to_many":  OneToMany,
	"many_to_many": ManyToMany,
}

// resolveRelations resolves every relation declared on the entity: the
// field-level @relation attributes in declaration order, then the block
// attributes in declaration order.
func resolveRelations(decl *ast.Entity, ent *Entity, byName map[string]*Entity, diags *diagnostics.Diagnostics) {
	names := make(map[string]bool)

	add := func(r *Relation) {
		if r == nil {
			return
		}
		if names[r.Name] {
			diags.PushError(diagnostics.NewDuplicateRelationNameError(r.Name, ent.Name, r.Span))
			return
		}
		names[r.Name] = true
		ent.Relations = append(ent.Relations, r)
	}

	for _, fieldDecl := range decl.Fields() {
		attr := fieldDecl.FindAttribute("relation")
		if attr == nil {
			continue
		}
		field := ent.FindField(fieldDecl.GetName())
		if field == nil {
			continue
		}
		add(resolveForeignKey(ent, field, fieldDecl, attr, byName, diags))
	}

	for _, block := range decl.BlockAttributes() {
		kind, known := knownBlockAttributes[block.GetName()]
		if !known {
			diags.PushError(diagnostics.NewUnknownAttributeError(block.GetName(), nodeSpan(block.Pos, block.EndPos)))
			continue
		}
		add(resolveBlockRelation(ent, kind, block, byName, diags))
	}

	// Known limitation inherited from the design: relation accessors bind
	// the single-column identifier, so composite-key entities reject
	// relation declarations outright instead of silently dropping them.
	if ent.HasCompositeID() && len(ent.Relations) > 0 {
		diags.PushError(diagnostics.NewCompositeKeyRelationError(ent.Name, ent.Relations[0].Span))
	}
}

func resolveForeignKey(ent *Entity, field *Field, fieldDecl *ast.Field, attr *ast.Attribute, byName map[string]*Entity, diags *diagnostics.Diagnostics) *Relation {
	args := newArgSet("relation", attr.Arguments, nodeSpan(attr.Pos, attr.EndPos), diags)
	args.checkUnknown("entity", "table", "name", "remote_id", "nullable")

	target, okTarget := args.requireConstant("entity")
	table, okTable := args.requireString("table")
	name, okName := args.requireString("name")
	remoteID := args.stringOr("remote_id", "id")
	if !okTarget || !okTable || !okName {
		return nil
	}

	rel := &Relation{
		Kind:     ForeignKey,
		Name:     name,
		GoName:   GoName(name),
		Target:   target,
		Table:    table,
		RemoteID: remoteID,
		Nullable: field.Nullable,
		Local:    field,
		Span:     nodeSpan(attr.Pos, attr.EndPos),
	}

	if explicit, given := args.boolean("nullable"); given {
		switch {
		case explicit && field.Nullable:
			diags.PushWarning(diagnostics.NewRedundantNullableWarning(field.Name, rel.Span))
		case explicit != field.Nullable:
			diags.PushError(diagnostics.NewNullabilityMismatchError(ent.Name, field.Name, explicit, rel.Span))
			return nil
		}
		rel.Nullable = explicit
	}

	if byName[target] == nil {
		diags.PushError(diagnostics.NewUnknownTargetEntityError(target, ent.Name, rel.Span))
		return nil
	}
	return rel
}

func resolveBlockRelation(ent *Entity, kind RelationKind, block *ast.BlockAttribute, byName map[string]*Entity, diags *diagnostics.Diagnostics) *Relation {
	blockSpan := nodeSpan(block.Pos, block.EndPos)
	args := newArgSet(block.GetName(), block.Arguments, blockSpan, diags)
	if kind == ManyToMany {
		args.checkUnknown("entity", "table", "name", "remote_id", "link")
	} else {
		args.checkUnknown("entity", "table", "name", "remote_id")
	}

	target, okTarget := args.requireConstant("entity")
	table, okTable := args.requireString("table")
	name, okName := args.requireString("name")
	remoteID := args.stringOr("remote_id", "id")
	if !okTarget || !okTable || !okName {
		return nil
	}

	rel := &Relation{
		Kind:     kind,
		Name:     name,
		GoName:   GoName(name),
		Target:   target,
		Table:    table,
		RemoteID: remoteID,
		Span:     blockSpan,
	}

	if kind == ManyToMany {
		link, ok := resolveLink(ent, block, diags)
		if !ok {
			return nil
		}
		rel.Link = link
	}

	if byName[target] == nil {
		diags.PushError(diagnostics.NewUnknownTargetEntityError(target, ent.Name, rel.Span))
		return nil
	}
	return rel
}

// resolveLink extracts the mandatory link(table:, from:, to:) specification
// of a many-to-many relation.
func resolveLink(ent *Entity, block *ast.BlockAttribute, diags *diagnostics.Diagnostics) (*Link, bool) {
	arg := block.FindArgument("link")
	if arg == nil {
		diags.PushError(diagnostics.NewArgumentNotFoundError("link", block.GetName(), nodeSpan(block.Pos, block.EndPos)))
		return nil, false
	}

	call, isCall := arg.Value.AsFunction()
	if !isCall || call.Name != "link" {
		diags.PushError(diagnostics.NewArgumentTypeError("link", block.GetName(), "a link(table:, from:, to:) specification", nodeSpan(arg.Pos, arg.EndPos)))
		return nil, false
	}

	linkArgs := newArgSet("link", call.Arguments, nodeSpan(call.Pos, call.EndPos), diags)
	linkArgs.checkUnknown("table", "from", "to")

	link := &Link{}
	ok := true
	for _, part := range []struct {
		name string
		dst  *string
	}{
		{"table", &link.Table},
		{"from", &link.From},
		{"to", &link.To},
	} {
		value, found := linkArgs.str(part.name)
		if !found {
			diags.PushError(diagnostics.NewIncompleteLinkError("link."+part.name, ent.Name, nodeSpan(call.Pos, call.EndPos)))
			ok = false
			continue
		}
		*part.dst = value
	}
	return link, ok
}
