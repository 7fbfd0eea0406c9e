package schemaobj

import "github.com/simon-lentz/refschema/objname"

// ClassKind discriminates the concrete schema object classes (e.g.
// "ObjectType", "Pointer", "Constraint"). It is the tagged-variant
// discriminant used in place of a class hierarchy (see package doc).
type ClassKind string

// RefDict describes one referenced-child slot a referrer class
// declares: a named attribute holding an [ObjectCollection], the name of
// the backref field on the member pointing at its referrer, the kind of
// object the slot holds, and whether an owned member must be explicitly
// declared `overloaded` when implicit bases exist.
type RefDict struct {
	Attr                       string
	BackrefAttr                string
	MemberKind                 ClassKind
	RequiresExplicitOverloaded bool
}

// ClassDescriptor records, for one ClassKind, which capabilities it has
// (referenced, inheriting) and which RefDict slots it owns as a
// referrer.
type ClassDescriptor struct {
	Kind            ClassKind
	IsReferenced    bool
	IsInheriting    bool
	DefaultBaseName objname.Name // zero if the class has no generic default base
	RefDicts        []RefDict
}

// ClassRegistry answers class-level questions the engine asks about a
// ClassKind: its descriptor, its RefDict slots, which referrer kind
// encloses it, and its generic default base. The command package owns
// command construction; this registry only owns class metadata.
type ClassRegistry struct {
	descriptors map[ClassKind]ClassDescriptor
	// derived index: member kind -> (owner kind, refdict)
	ownerOf map[ClassKind]ownerEntry
}

type ownerEntry struct {
	owner   ClassKind
	refdict RefDict
}

// NewClassRegistry creates an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{
		descriptors: make(map[ClassKind]ClassDescriptor),
		ownerOf:     make(map[ClassKind]ownerEntry),
	}
}

// Register adds a class descriptor. It is the caller's responsibility
// to register every class whose kind appears as a RefDict.MemberKind
// before asking the registry questions about that kind; Register itself
// derives the reverse (member -> owner) index from d.RefDicts.
func (r *ClassRegistry) Register(d ClassDescriptor) {
	r.descriptors[d.Kind] = d
	for _, rd := range d.RefDicts {
		r.ownerOf[rd.MemberKind] = ownerEntry{owner: d.Kind, refdict: rd}
	}
}

// Descriptor returns the descriptor for kind.
func (r *ClassRegistry) Descriptor(kind ClassKind) (ClassDescriptor, bool) {
	d, ok := r.descriptors[kind]
	return d, ok
}

// RefDictFor returns the RefDict a referrer of ownerKind declares for
// members of memberKind, i.e. get_refdict_for_class.
func (r *ClassRegistry) RefDictFor(ownerKind, memberKind ClassKind) (RefDict, bool) {
	d, ok := r.descriptors[ownerKind]
	if !ok {
		return RefDict{}, false
	}
	for _, rd := range d.RefDicts {
		if rd.MemberKind == memberKind {
			return rd, true
		}
	}
	return RefDict{}, false
}

// RefDicts returns every RefDict slot the given referrer kind declares
// (get_refdicts).
func (r *ClassRegistry) RefDicts(ownerKind ClassKind) []RefDict {
	d, ok := r.descriptors[ownerKind]
	if !ok {
		return nil
	}
	return d.RefDicts
}

// ReferrerKindOf returns the single referrer kind a member kind is
// declared to be enclosed by, and the RefDict it fills. Each referenced
// kind has exactly one enclosing referrer kind across the registry.
func (r *ClassRegistry) ReferrerKindOf(memberKind ClassKind) (ClassKind, RefDict, bool) {
	e, ok := r.ownerOf[memberKind]
	if !ok {
		return "", RefDict{}, false
	}
	return e.owner, e.refdict, true
}

// DefaultBaseName returns the generic default base name for kind, if it
// declares one.
func (r *ClassRegistry) DefaultBaseName(kind ClassKind) (objname.Name, bool) {
	d, ok := r.descriptors[kind]
	if !ok || d.DefaultBaseName.IsZero() {
		return objname.Name{}, false
	}
	return d.DefaultBaseName, true
}
