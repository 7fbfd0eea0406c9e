package domain

import (
	"fmt"

	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
)

// ConstraintKind identifies the kind of constraint check a Constraint
// object enforces.
type ConstraintKind string

const (
	KindMinLen    ConstraintKind = "min_len"
	KindMaxLen    ConstraintKind = "max_len"
	KindExclusive ConstraintKind = "exclusive"
	KindExpr      ConstraintKind = "expression"
)

// Field key Constraint stores its Params under.
const FieldParams = "params"

// Params carries a constraint's parameters: the kind of check, plus
// whatever arguments that kind needs (e.g. min_len's "value", or
// expression's "expr" source text).
type Params struct {
	Kind ConstraintKind
	Args map[string]string
}

// String formats params for DDL-ish display, e.g. "min_len(3)".
func (p Params) String() string {
	if arg, ok := p.Args["value"]; ok {
		return fmt.Sprintf("%s(%s)", p.Kind, arg)
	}
	if arg, ok := p.Args["expr"]; ok {
		return fmt.Sprintf("%s(%s)", p.Kind, arg)
	}
	return string(p.Kind)
}

// NewGenericConstraint builds the "std::Constraint"-rooted generic form
// of a constraint kind (e.g. the library-defined "min_len" every
// user-declared min_len constraint ultimately extends).
func NewGenericConstraint(name objname.Name, span location.Span, params Params) *schemaobj.Object {
	return schemaobj.NewObject(KindConstraint, name, span).WithField(FieldParams, params)
}

// Constraint is a read-only view over a *schemaobj.Object of kind
// KindConstraint: a referenced, inheriting leaf object whose Subject is
// its Pointer referrer.
type Constraint struct {
	Obj *schemaobj.Object
}

// AsConstraint wraps obj for read access as a Constraint.
func AsConstraint(obj *schemaobj.Object) Constraint { return Constraint{Obj: obj} }

// Params returns the constraint's kind and arguments.
func (c Constraint) Params() Params {
	v, ok := c.Obj.Field(FieldParams)
	if !ok {
		return Params{}
	}
	p, _ := v.(Params)
	return p
}

// Subject returns the name of the Pointer this constraint is attached
// to (the referrer back-link).
func (c Constraint) Subject() objname.Name {
	return c.Obj.Referrer()
}
