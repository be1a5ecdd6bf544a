package resolve

import (
	"github.com/georm-db/georm/gsl/ast"
	"github.com/georm-db/georm/gsl/diagnostics"
)

// argSet wraps an attribute argument list with typed, diagnostic-pushing
// accessors. All georm attribute arguments are named.
type argSet struct {
	attrName string
	args     *ast.ArgumentsList
	span     diagnostics.Span
	diags    *diagnostics.Diagnostics
}

func newArgSet(attrName string, args *ast.ArgumentsList, span diagnostics.Span, diags *diagnostics.Diagnostics) *argSet {
	return &argSet{
		attrName: attrName,
		args:     args,
		span:     span,
		diags:    diags,
	}
}

// checkUnknown rejects positional arguments, duplicates, and names outside
// the known set.
func (a *argSet) checkUnknown(known ...string) {
	knownSet := make(map[string]bool, len(known))
	for _, name := range known {
		knownSet[name] = true
	}

	seen := make(map[string]bool)
	for _, arg := range a.args.Iter() {
		argSpan := nodeSpan(arg.Pos, arg.EndPos)
		name := arg.GetName()
		if name == "" {
			a.diags.PushError(diagnostics.NewUnnamedArgumentError(a.attrName, argSpan))
			continue
		}
		if seen[name] {
			a.diags.PushError(diagnostics.NewDuplicateArgumentError(name, argSpan))
			continue
		}
		seen[name] = true
		if !knownSet[name] {
			a.diags.PushError(diagnostics.NewUnknownArgumentError(name, a.attrName, argSpan))
		}
	}
}

func (a *argSet) find(name string) *ast.Argument {
	for _, arg := range a.args.Iter() {
		if arg.GetName() == name {
			return arg
		}
	}
	return nil
}

// str returns the string value of an optional argument. A present argument
// of the wrong kind is an error.
func (a *argSet) str(name string) (string, bool) {
	arg := a.find(name)
	if arg == nil {
		return "", false
	}
	value, isString := arg.Value.AsStringValue()
	if !isString {
		a.diags.PushError(diagnostics.NewArgumentTypeError(name, a.attrName, "a quoted string", nodeSpan(arg.Pos, arg.EndPos)))
		return "", false
	}
	return value.Value, true
}

// stringOr returns the string value of an optional argument, or the default.
func (a *argSet) stringOr(name, def string) string {
	if value, ok := a.str(name); ok {
		return value
	}
	return def
}

// requireString returns the string value of a mandatory argument.
func (a *argSet) requireString(name string) (string, bool) {
	if a.find(name) == nil {
		a.diags.PushError(diagnostics.NewArgumentNotFoundError(name, a.attrName, a.span))
		return "", false
	}
	return a.str(name)
}

// requireConstant returns the bare-identifier value of a mandatory argument
// (used for entity references).
func (a *argSet) requireConstant(name string) (string, bool) {
	arg := a.find(name)
	if arg == nil {
		a.diags.PushError(diagnostics.NewArgumentNotFoundError(name, a.attrName, a.span))
		return "", false
	}
	value, isConstant := arg.Value.AsConstantValue()
	if !isConstant {
		a.diags.PushError(diagnostics.NewArgumentTypeError(name, a.attrName, "an entity name", nodeSpan(arg.Pos, arg.EndPos)))
		return "", false
	}
	return value.Value, true
}

// boolean returns the value of an optional boolean argument and whether it
// was given at all.
func (a *argSet) boolean(name string) (value bool, given bool) {
	arg := a.find(name)
	if arg == nil {
		return false, false
	}
	b, isBool := arg.Value.AsBooleanValue()
	if !isBool {
		a.diags.PushError(diagnostics.NewArgumentTypeError(name, a.attrName, "true or false", nodeSpan(arg.Pos, arg.EndPos)))
		return false, false
	}
	return b, true
}
