package ddl

import (
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/referencing"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// EmitCreateNode serializes ref back into the create-op AST node that
// would reproduce it. Implicit bases are hidden: a base the referrer's
// own inheritance already implies never appears in the emitted
// Extending clause, and neither does the class's generic default base.
// Owned members of ref's own RefDict slots are emitted as nested create
// subcommands; unowned members are implied by the Extending clause and
// omitted, so a compile of the emitted tree re-derives them.
func EmitCreateNode(eng *referencing.Engine, s *store.Schema, ref *schemaobj.Object) *Node {
	node := &Node{
		Op:         OpCreate,
		Kind:       string(ref.Kind()),
		Name:       objname.ShortNameFromFullName(ref.Name()),
		Quals:      objname.QualsFromFullName(ref.Name()),
		Doc:        ref.Doc(),
		Abstract:   ref.IsAbstract(),
		Final:      ref.IsFinal(),
		Overloaded: ref.DeclaredOverloaded(),
		Fields:     ref.Fields(),
	}
	if span := ref.Span(); !span.IsZero() {
		node.Line = span.Start.Line
		node.Column = span.Start.Column
	}

	hidden := make(map[objname.Name]bool)
	if defaultBase, ok := eng.Registry.DefaultBaseName(ref.Kind()); ok {
		hidden[defaultBase] = true
	}
	if _, refdict, ok := eng.Registry.ReferrerKindOf(ref.Kind()); ok {
		if referrerObj, found := s.Get(ref.Referrer()); found {
			for _, b := range eng.ImplicitBases(s, referrerObj, refdict, ref.Name()) {
				hidden[b] = true
			}
		}
	}
	for _, b := range ref.Bases() {
		if !hidden[b] {
			node.Extending = append(node.Extending, b.String())
		}
	}

	descriptor, _ := eng.Registry.Descriptor(ref.Kind())
	for _, rd := range descriptor.RefDicts {
		for _, subName := range ref.Collection(rd.Attr).Objects() {
			sub, ok := s.Get(subName)
			if !ok || !sub.IsOwned() {
				continue
			}
			node.Subcommands = append(node.Subcommands, EmitCreateNode(eng, s, sub))
		}
	}
	return node
}

// EmitDeleteNode serializes the removal of ref as a delete-op AST node.
// A deletion of a ref that was never locally owned produces no DDL at
// all (nil): its removal is implied by whatever dropped its inheritance
// source, so emitting a delete for it would fail on replay.
func EmitDeleteNode(ref *schemaobj.Object) *Node {
	if ref.IsReferenced() && !ref.IsOwned() {
		return nil
	}
	return &Node{
		Op:   OpDelete,
		Kind: string(ref.Kind()),
		Name: ref.Name().String(),
	}
}
