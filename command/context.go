package command

import (
	"fmt"

	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/schemaobj"
)

// Flags carries the per-frame behavioral switches a command executes
// under. A pushed frame inherits its parent's flags unless a
// [FrameOption] overrides them.
type Flags struct {
	Canonical              bool
	Declarative            bool
	DescriptiveMode        bool
	EnableRecursion        bool
	DisableDepVerification bool
	InheritanceMerge       bool
	MarkDerived            bool
	TransientDerivation    bool
	PreservePathID         bool
}

// Frame is one entry in the command-context stack: the referrer-command
// class it represents, the name of the object currently being acted on
// (scls), the flags in effect, and bookkeeping needed by the rename and
// propagation engines.
type Frame struct {
	ClassKind schemaobj.ClassKind
	Object    objname.Name
	Flags     Flags

	// RenamedObjs records every object renamed so far in this delta, so
	// the rename engine can tell an explicitly-renamed ancestor ref from
	// a merely-inherited one.
	RenamedObjs map[objname.Name]bool

	// RefOpPropagated marks a frame synthesized by propagation rather
	// than built directly from the AST, so recursive propagation
	// terminates at the first already-propagated frame.
	RefOpPropagated bool

	// Deleting marks a frame pushed around a DeleteObject cascade: while
	// set, Object is itself in the middle of being deleted. InDeletion
	// and BeingDeleted read it back.
	Deleting bool
}

// FrameOption mutates a Frame's flags or bookkeeping at push time.
type FrameOption func(*Frame)

func Canonical(v bool) FrameOption       { return func(f *Frame) { f.Flags.Canonical = v } }
func Declarative(v bool) FrameOption     { return func(f *Frame) { f.Flags.Declarative = v } }
func DescriptiveMode(v bool) FrameOption { return func(f *Frame) { f.Flags.DescriptiveMode = v } }
func EnableRecursion(v bool) FrameOption { return func(f *Frame) { f.Flags.EnableRecursion = v } }
func DisableDepVerification(v bool) FrameOption {
	return func(f *Frame) { f.Flags.DisableDepVerification = v }
}
func InheritanceMerge(v bool) FrameOption { return func(f *Frame) { f.Flags.InheritanceMerge = v } }
func MarkDerived(v bool) FrameOption      { return func(f *Frame) { f.Flags.MarkDerived = v } }
func TransientDerivation(v bool) FrameOption {
	return func(f *Frame) { f.Flags.TransientDerivation = v }
}
func PreservePathID(v bool) FrameOption  { return func(f *Frame) { f.Flags.PreservePathID = v } }
func RefOpPropagated(v bool) FrameOption { return func(f *Frame) { f.RefOpPropagated = v } }
func Deleting(v bool) FrameOption        { return func(f *Frame) { f.Deleting = v } }

// CommandContext is the live stack of frames a command executes under.
// The zero value is an empty context with all flags false.
type CommandContext struct {
	frames []*Frame
}

// NewCommandContext creates an empty context. Options apply to the
// synthetic root flags inherited by the first pushed frame.
func NewCommandContext(opts ...FrameOption) *CommandContext {
	root := &Frame{}
	for _, opt := range opts {
		opt(root)
	}
	return &CommandContext{frames: []*Frame{root}}
}

// Push adds a new frame for kind/object on top of the stack, inheriting
// the current top frame's flags before applying opts. It returns the
// pushed frame; the caller must call Pop when the frame's commands have
// finished executing.
func (c *CommandContext) Push(kind schemaobj.ClassKind, object objname.Name, opts ...FrameOption) *Frame {
	parent := c.Top()
	frame := &Frame{ClassKind: kind, Object: object}
	if parent != nil {
		frame.Flags = parent.Flags
		frame.RenamedObjs = parent.RenamedObjs
	}
	for _, opt := range opts {
		opt(frame)
	}
	c.frames = append(c.frames, frame)
	return frame
}

// Pop removes the innermost frame.
func (c *CommandContext) Pop() {
	if len(c.frames) == 0 {
		return
	}
	c.frames = c.frames[:len(c.frames)-1]
}

// Top returns the innermost frame, or nil if the stack is empty.
func (c *CommandContext) Top() *Frame {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1]
}

// Get returns the innermost frame whose ClassKind is kind.
func (c *CommandContext) Get(kind schemaobj.ClassKind) (*Frame, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if c.frames[i].ClassKind == kind {
			return c.frames[i], true
		}
	}
	return nil, false
}

// GetOrDie is Get, but returns an error satisfying schemaerr's
// InvariantViolation shape instead of ok=false.
func (c *CommandContext) GetOrDie(kind schemaobj.ClassKind) (*Frame, error) {
	frame, ok := c.Get(kind)
	if !ok {
		return nil, fmt.Errorf("invariant violation: no enclosing %s command context on the stack", kind)
	}
	return frame, nil
}

// MarkRenamed records that name was renamed in this delta.
func (c *CommandContext) MarkRenamed(name objname.Name) {
	top := c.Top()
	if top == nil {
		return
	}
	if top.RenamedObjs == nil {
		top.RenamedObjs = make(map[objname.Name]bool)
	}
	top.RenamedObjs[name] = true
	for _, f := range c.frames {
		f.RenamedObjs = top.RenamedObjs
	}
}

// WasRenamed reports whether name was renamed somewhere in this delta.
func (c *CommandContext) WasRenamed(name objname.Name) bool {
	top := c.Top()
	if top == nil || top.RenamedObjs == nil {
		return false
	}
	return top.RenamedObjs[name]
}

// InDeletion reports whether the frame offset steps below the top of
// the stack is itself mid-deletion of an object of kind. offset=0 is
// the current top frame; offset=1 is its immediate parent, the shape
// used to detect "my referrer is itself being deleted, so don't
// enforce the inherited-ref check on me".
func (c *CommandContext) InDeletion(offset int, kind schemaobj.ClassKind) bool {
	i := len(c.frames) - 1 - offset
	if i < 0 || i >= len(c.frames) {
		return false
	}
	f := c.frames[i]
	return f.Deleting && f.ClassKind == kind
}

// BeingDeleted reports whether name is the subject of some Deleting
// frame anywhere on the stack, i.e. it is concurrently being deleted
// elsewhere in the same delta tree.
func (c *CommandContext) BeingDeleted(name objname.Name) bool {
	for _, f := range c.frames {
		if f.Deleting && f.Object == name {
			return true
		}
	}
	return false
}
