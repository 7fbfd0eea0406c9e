package command

import (
	"fmt"

	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// Command is one node of a delta tree: it knows how to apply itself
// (and, transitively, its nested subcommands) to a schema snapshot.
type Command interface {
	Apply(s *store.Schema, ctx *CommandContext) (*store.Schema, error)
}

// DeltaRoot is the top of a command tree: the narrow shim of a generic
// delta framework that the referencing engine needs to sequence its
// commands.
type DeltaRoot struct {
	Subcommands []Command
}

// Apply runs every subcommand in tree order against a fresh root
// context.
func (d *DeltaRoot) Apply(s *store.Schema) (*store.Schema, error) {
	return d.ApplyWithContext(s, NewCommandContext())
}

// ApplyWithContext runs every subcommand against the supplied context,
// letting a caller (e.g. derive_ref) seed non-default flags.
func (d *DeltaRoot) ApplyWithContext(s *store.Schema, ctx *CommandContext) (*store.Schema, error) {
	next := s
	for _, c := range d.Subcommands {
		var err error
		next, err = c.Apply(next, ctx)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// CreateObject creates a new object, optionally linking it into a
// referrer's RefDict slot.
type CreateObject struct {
	Kind     schemaobj.ClassKind
	Name     objname.Name
	Span     location.Span
	Doc      string
	Abstract bool
	Final    bool
	Derived  bool

	Owned              bool
	DeclaredOverloaded bool
	Bases              []objname.Name

	Referrer     objname.Name
	ReferrerKind schemaobj.ClassKind
	RefDictAttr  string
	Refname      string

	Fields map[string]any

	// IfNotExists makes Apply a no-op when Name already exists, the
	// create half of the if_exists/if_not_exists commutation pair
	// propagation relies on.
	IfNotExists bool

	Subcommands []Command
}

func (c *CreateObject) Apply(s *store.Schema, ctx *CommandContext) (*store.Schema, error) {
	if c.IfNotExists {
		if _, exists := s.Get(c.Name); exists {
			return s, nil
		}
	}

	obj := schemaobj.NewObject(c.Kind, c.Name, c.Span).
		WithDoc(c.Doc).
		WithAbstract(c.Abstract).
		WithFinal(c.Final).
		WithDerived(c.Derived).
		WithOwned(c.Owned).
		WithDeclaredOverloaded(c.DeclaredOverloaded).
		WithBases(c.Bases)

	if !c.Referrer.IsZero() {
		obj = obj.WithReferrer(c.Referrer, c.ReferrerKind)
	}
	for k, v := range c.Fields {
		obj = obj.WithField(k, v)
	}

	next := s.AddObject(obj)
	if !c.Referrer.IsZero() && c.RefDictAttr != "" {
		next = next.AddClassRef(c.Referrer, c.RefDictAttr, c.Refname, c.Name)
	}

	return applyAll(next, ctx, c.Subcommands)
}

// AlterObject mutates attributes and/or class-specific fields of an
// existing object, then applies any nested subcommands. It is also the
// outer wrapper every command-stack frame uses to scope a nested ref
// command to its referrer.
type AlterObject struct {
	Name objname.Name

	// IfExists makes Apply a no-op when Name is absent, the alter half
	// of the if_exists/if_not_exists commutation pair.
	IfExists bool

	SetDoc                *string
	SetAbstract           *bool
	SetFinal              *bool
	SetOwned              *bool
	SetDeclaredOverloaded *bool
	SetBases              []objname.Name

	Fields map[string]any

	Subcommands []Command
}

func (c *AlterObject) Apply(s *store.Schema, ctx *CommandContext) (*store.Schema, error) {
	obj, ok := s.Get(c.Name)
	if !ok {
		if c.IfExists {
			return s, nil
		}
		return nil, fmt.Errorf("invariant violation: alter of unknown object %s", c.Name)
	}
	ctx.Push(obj.Kind(), c.Name)
	defer ctx.Pop()

	if c.SetDoc != nil {
		obj = obj.WithDoc(*c.SetDoc)
	}
	if c.SetAbstract != nil {
		obj = obj.WithAbstract(*c.SetAbstract)
	}
	if c.SetFinal != nil {
		obj = obj.WithFinal(*c.SetFinal)
	}
	if c.SetOwned != nil {
		obj = obj.WithOwned(*c.SetOwned)
	}
	if c.SetDeclaredOverloaded != nil {
		obj = obj.WithDeclaredOverloaded(*c.SetDeclaredOverloaded)
	}
	if c.SetBases != nil {
		obj = obj.WithBases(c.SetBases)
	}
	for k, v := range c.Fields {
		obj = obj.WithField(k, v)
	}

	next := s.AddObject(obj)
	return applyAll(next, ctx, c.Subcommands)
}

// DeleteObject removes an object, unlinking it from its referrer's
// RefDict slot first when it has one. Subcommands, if any, run before
// the delete itself; the referencing engine's delete propagation applies
// its descendant commands directly rather than nesting them here.
type DeleteObject struct {
	Name objname.Name

	Referrer    objname.Name
	RefDictAttr string
	Refname     string

	Subcommands []Command
}

func (c *DeleteObject) Apply(s *store.Schema, ctx *CommandContext) (*store.Schema, error) {
	next, err := applyAll(s, ctx, c.Subcommands)
	if err != nil {
		return nil, err
	}
	if !c.Referrer.IsZero() && c.RefDictAttr != "" {
		next = next.DelClassRef(c.Referrer, c.RefDictAttr, c.Refname)
	}
	next = next.DeleteObject(c.Name)
	return next, nil
}

// RebaseInheritingObject overwrites an inheriting object's base list.
// AddedBases/RemovedBases record the edit for AST emission; Bases is
// the full resulting list Apply installs.
type RebaseInheritingObject struct {
	Name         objname.Name
	Bases        []objname.Name
	AddedBases   []objname.Name
	RemovedBases []objname.Name
	Implicit     bool
}

func (c *RebaseInheritingObject) Apply(s *store.Schema, ctx *CommandContext) (*store.Schema, error) {
	obj, ok := s.Get(c.Name)
	if !ok {
		return nil, fmt.Errorf("invariant violation: rebase of unknown object %s", c.Name)
	}
	obj = obj.WithBases(c.Bases)
	return s.AddObject(obj), nil
}

// RenameObject moves an object from OldName to NewName, preserving its
// id, and records the rename in the context so the rename engine can
// tell an explicitly-renamed ancestor from a merely-inherited one.
type RenameObject struct {
	OldName objname.Name
	NewName objname.Name

	Subcommands []Command
}

func (c *RenameObject) Apply(s *store.Schema, ctx *CommandContext) (*store.Schema, error) {
	next := s.RenameObject(c.OldName, c.NewName)
	ctx.MarkRenamed(c.NewName)
	return applyAll(next, ctx, c.Subcommands)
}

// AlterOwned flips is_owned on a referenced object. Subcommands carry
// the re-inheritance and sub-ref-drop fallout.
type AlterOwned struct {
	Name  objname.Name
	Owned bool

	Subcommands []Command
}

func (c *AlterOwned) Apply(s *store.Schema, ctx *CommandContext) (*store.Schema, error) {
	obj, ok := s.Get(c.Name)
	if !ok {
		return nil, fmt.Errorf("invariant violation: alter-owned of unknown object %s", c.Name)
	}
	obj = obj.WithOwned(c.Owned)
	next := s.AddObject(obj)
	return applyAll(next, ctx, c.Subcommands)
}

func applyAll(s *store.Schema, ctx *CommandContext, cmds []Command) (*store.Schema, error) {
	next := s
	for _, c := range cmds {
		var err error
		next, err = c.Apply(next, ctx)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}
