package schemaobj

import (
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
)

// Object is a schema object: either a top-level referrer (e.g. an
// ObjectType) or a referenced object owned by one (e.g. a Pointer or a
// Constraint). Which fields are meaningful is determined by the
// registered [ClassDescriptor] for Kind: IsReferenced and IsInheriting
// gate which of the referenced-only and inheriting-only fields apply.
//
// An Object is immutable once constructed; every mutation goes through a
// With* method that returns a modified clone.
type Object struct {
	id   ObjectID
	kind ClassKind
	name objname.Name
	span location.Span
	doc  string

	isAbstract bool
	isFinal    bool

	// isDerived marks an object synthesized by DeriveRef rather than
	// declared directly in DDL (referenced+inheriting objects only).
	isDerived bool

	// isOwned and declaredOverloaded are meaningful only when
	// IsReferenced.
	isOwned            bool
	declaredOverloaded bool

	// referrer/referrerKind are the zero value for top-level objects.
	referrer     objname.Name
	referrerKind ClassKind

	// bases holds the object's bases in MRO-significant order. For refs
	// the referencing engine stores the resolved implicit bases first,
	// followed by the explicit bases as written.
	bases []objname.Name

	collections map[string]*ObjectCollection
	fields      map[string]any
}

// NewObject creates a fresh, non-referenced, non-derived Object of the
// given kind with a freshly minted id.
func NewObject(kind ClassKind, name objname.Name, span location.Span) *Object {
	return &Object{
		id:   NewObjectID(),
		kind: kind,
		name: name,
		span: span,
	}
}

func (o *Object) ID() ObjectID             { return o.id }
func (o *Object) Kind() ClassKind          { return o.kind }
func (o *Object) Name() objname.Name       { return o.name }
func (o *Object) Span() location.Span      { return o.span }
func (o *Object) Doc() string              { return o.doc }
func (o *Object) IsAbstract() bool         { return o.isAbstract }
func (o *Object) IsFinal() bool            { return o.isFinal }
func (o *Object) IsDerived() bool          { return o.isDerived }
func (o *Object) IsOwned() bool            { return o.isOwned }
func (o *Object) DeclaredOverloaded() bool { return o.declaredOverloaded }
func (o *Object) Referrer() objname.Name   { return o.referrer }
func (o *Object) ReferrerKind() ClassKind  { return o.referrerKind }

// IsReferenced reports whether o has a referrer, i.e. it was created
// within some enclosing referrer-command context rather than at the top
// level.
func (o *Object) IsReferenced() bool { return !o.referrer.IsZero() }

// Bases returns the object's bases in order. The slice is a fresh copy
// that the caller may modify without affecting o.
func (o *Object) Bases() []objname.Name {
	out := make([]objname.Name, len(o.bases))
	copy(out, o.bases)
	return out
}

// Generic reports whether o is a "generic" object — the root form an
// explicit base clause names: it has no declared base other than (at
// most) defaultBase, and its own name is not itself a specialization
// scoped to some referrer.
func (o *Object) Generic(defaultBase objname.Name) bool {
	if objname.IsQualified(o.name) {
		return false
	}
	for _, b := range o.bases {
		if b != defaultBase {
			return false
		}
	}
	return true
}

// CollectionAttrs returns the names of every RefDict slot that has been
// set on o, including slots whose members have all been removed, in
// unspecified order.
func (o *Object) CollectionAttrs() []string {
	out := make([]string, 0, len(o.collections))
	for attr := range o.collections {
		out = append(out, attr)
	}
	return out
}

// Collection returns the named RefDict slot, creating an empty one
// lazily for read purposes (it does not mutate o).
func (o *Object) Collection(attr string) *ObjectCollection {
	if c, ok := o.collections[attr]; ok {
		return c
	}
	return NewObjectCollection()
}

// Field returns an opaque class-specific field value (e.g. a
// constraint's expression text, a pointer's target type name).
func (o *Object) Field(key string) (any, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Fields returns a copy of every class-specific field value set on o.
func (o *Object) Fields() map[string]any {
	out := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		out[k] = v
	}
	return out
}

func (o *Object) clone() *Object {
	next := *o
	next.bases = append([]objname.Name(nil), o.bases...)
	if o.collections != nil {
		next.collections = make(map[string]*ObjectCollection, len(o.collections))
		for k, v := range o.collections {
			next.collections[k] = v
		}
	}
	if o.fields != nil {
		next.fields = make(map[string]any, len(o.fields))
		for k, v := range o.fields {
			next.fields[k] = v
		}
	}
	return &next
}

// WithName returns a clone renamed to name. Renaming does not change
// the object's id.
func (o *Object) WithName(name objname.Name) *Object {
	next := o.clone()
	next.name = name
	return next
}

// WithDoc returns a clone with doc set.
func (o *Object) WithDoc(doc string) *Object {
	next := o.clone()
	next.doc = doc
	return next
}

// WithAbstract returns a clone with isAbstract set.
func (o *Object) WithAbstract(v bool) *Object {
	next := o.clone()
	next.isAbstract = v
	return next
}

// WithFinal returns a clone with isFinal set.
func (o *Object) WithFinal(v bool) *Object {
	next := o.clone()
	next.isFinal = v
	return next
}

// WithDerived returns a clone with isDerived set.
func (o *Object) WithDerived(v bool) *Object {
	next := o.clone()
	next.isDerived = v
	return next
}

// WithOwned returns a clone with isOwned set. Meaningful only for
// referenced objects.
func (o *Object) WithOwned(v bool) *Object {
	next := o.clone()
	next.isOwned = v
	return next
}

// WithDeclaredOverloaded returns a clone with declaredOverloaded set.
func (o *Object) WithDeclaredOverloaded(v bool) *Object {
	next := o.clone()
	next.declaredOverloaded = v
	return next
}

// WithReferrer returns a clone placed within the given referrer context.
func (o *Object) WithReferrer(referrer objname.Name, referrerKind ClassKind) *Object {
	next := o.clone()
	next.referrer = referrer
	next.referrerKind = referrerKind
	return next
}

// WithBases returns a clone with bases replaced wholesale, in order.
func (o *Object) WithBases(bases []objname.Name) *Object {
	next := o.clone()
	next.bases = append([]objname.Name(nil), bases...)
	return next
}

// WithCollection returns a clone with the named RefDict slot replaced.
func (o *Object) WithCollection(attr string, c *ObjectCollection) *Object {
	next := o.clone()
	if next.collections == nil {
		next.collections = make(map[string]*ObjectCollection)
	}
	next.collections[attr] = c
	return next
}

// WithFields returns a clone with the entire class-specific field map
// replaced wholesale. Fields present on o but absent from fields are
// discarded.
func (o *Object) WithFields(fields map[string]any) *Object {
	next := o.clone()
	next.fields = make(map[string]any, len(fields))
	for k, v := range fields {
		next.fields[k] = v
	}
	return next
}

// WithField returns a clone with a class-specific field set.
func (o *Object) WithField(key string, value any) *Object {
	next := o.clone()
	if next.fields == nil {
		next.fields = make(map[string]any)
	}
	next.fields[key] = value
	return next
}
