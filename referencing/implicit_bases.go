package referencing

import (
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// ImplicitBases computes the ordered set of parent refs implied by
// referrer's own bases for a ref named fqName in the given RefDict
// slot. Order follows referrer.Bases(); no deduplication — the order
// is itself the MRO.
func (e *Engine) ImplicitBases(s *store.Schema, referrer *schemaobj.Object, refdict schemaobj.RefDict, fqName objname.Name) []objname.Name {
	var implicit []objname.Name
	for _, baseName := range referrer.Bases() {
		base, ok := s.Get(baseName)
		if !ok {
			continue
		}
		fqInBase := ClassnameFromName(fqName, baseName, objname.QualsFromFullName(fqName)...)
		refname := RefnameFor(fqInBase)
		parentRefName, ok := base.Collection(refdict.Attr).Get(refname)
		if !ok {
			continue
		}
		parentItem, ok := s.Get(parentRefName)
		if !ok || parentItem.IsFinal() {
			continue
		}
		implicit = append(implicit, parentRefName)
	}
	return implicit
}

// explicitBases returns the generic, non-default bases declared
// directly on obj — the bases a ref keeps regardless of what
// inheritance from the referrer implies.
func explicitBases(obj *schemaobj.Object, defaultBase objname.Name) []objname.Name {
	var out []objname.Name
	for _, b := range obj.Bases() {
		if b == defaultBase {
			continue
		}
		if objname.IsQualified(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// deltaBases computes the minimum edit (removed, added) to transform
// current into target while preserving target's order. It does not
// need to report unchanged elements.
func deltaBases(current, target []objname.Name) (removed, added []objname.Name) {
	currentSet := make(map[objname.Name]bool, len(current))
	for _, b := range current {
		currentSet[b] = true
	}
	targetSet := make(map[objname.Name]bool, len(target))
	for _, b := range target {
		targetSet[b] = true
	}
	for _, b := range current {
		if !targetSet[b] {
			removed = append(removed, b)
		}
	}
	for _, b := range target {
		if !currentSet[b] {
			added = append(added, b)
		}
	}
	return removed, added
}
