package schemaobj

import "github.com/simon-lentz/refschema/objname"

// ObjectCollection is an ordered refname -> Name mapping: one RefDict
// slot's worth of referenced members. The dual ordered-slice-plus-map
// storage gives O(1) lookup by refname while preserving declaration
// order for iteration and for deterministic DDL replay.
//
// The zero value is an empty, usable collection.
type ObjectCollection struct {
	order []string
	index map[string]objname.Name
}

// NewObjectCollection creates an empty collection.
func NewObjectCollection() *ObjectCollection {
	return &ObjectCollection{}
}

// Get looks up the member registered under refname.
func (c *ObjectCollection) Get(refname string) (objname.Name, bool) {
	if c == nil {
		return objname.Name{}, false
	}
	n, ok := c.index[refname]
	return n, ok
}

// Len reports the number of members.
func (c *ObjectCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Refnames returns the member refnames in declaration order.
func (c *ObjectCollection) Refnames() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Objects returns the member Names in declaration order.
func (c *ObjectCollection) Objects() []objname.Name {
	if c == nil {
		return nil
	}
	out := make([]objname.Name, 0, len(c.order))
	for _, refname := range c.order {
		out = append(out, c.index[refname])
	}
	return out
}

// With returns a new collection with refname bound to name. Replacing an
// existing refname preserves its position; a new refname is appended.
func (c *ObjectCollection) With(refname string, name objname.Name) *ObjectCollection {
	next := c.clone()
	if _, exists := next.index[refname]; !exists {
		next.order = append(next.order, refname)
	}
	next.index[refname] = name
	return next
}

// Without returns a new collection with refname removed, or an
// unchanged clone of c if refname was absent.
func (c *ObjectCollection) Without(refname string) *ObjectCollection {
	next := c.clone()
	if _, exists := next.index[refname]; !exists {
		return next
	}
	delete(next.index, refname)
	for i, r := range next.order {
		if r == refname {
			next.order = append(next.order[:i], next.order[i+1:]...)
			break
		}
	}
	return next
}

func (c *ObjectCollection) clone() *ObjectCollection {
	if c == nil {
		return &ObjectCollection{index: make(map[string]objname.Name)}
	}
	next := &ObjectCollection{
		order: make([]string, len(c.order)),
		index: make(map[string]objname.Name, len(c.index)),
	}
	copy(next.order, c.order)
	for k, v := range c.index {
		next.index[k] = v
	}
	return next
}
