package catalog

import (
	dErrors "orbita/pkg/domain-errors"
)

// maxGroupDepth guards the recursive traversal against cyclic or absurdly
// nested catalog data. Real catalogs stay under depth four.
const maxGroupDepth = 8

// Flatten visits every leaf requirement of the catalog in declaration order.
// Order is externally meaningful: it drives requirement numbering and report
// pagination. The traversal is depth-first; within a node, direct leaf
// requirements come before the node's sub-groups, and siblings keep their
// declared order.
func (c *Catalog) Flatten() ([]Requirement, error) {
	var out []Requirement
	err := c.Walk(func(r Requirement) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Walk invokes fn for every leaf requirement in declaration order. The
// callback's error aborts the walk.
func (c *Catalog) Walk(fn func(Requirement) error) error {
	for i := range c.Groups {
		if err := walkGroup(&c.Groups[i], fn, 1); err != nil {
			return err
		}
	}
	return nil
}

func walkGroup(g *Group, fn func(Requirement) error, depth int) error {
	if depth > maxGroupDepth {
		return dErrors.Newf(dErrors.CodeComputation,
			"catalog group %q exceeds maximum nesting depth %d", g.Label, maxGroupDepth)
	}
	for i := range g.Requirements {
		if err := fn(g.Requirements[i]); err != nil {
			return err
		}
	}
	for i := range g.Groups {
		if err := walkGroup(&g.Groups[i], fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// LeafCount returns the number of leaf requirements in the catalog.
func (c *Catalog) LeafCount() (int, error) {
	n := 0
	err := c.Walk(func(Requirement) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
