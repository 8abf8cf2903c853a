// Package catalog holds the versioned requirement knowledge base: one
// immutable catalog per regulatory framework, loaded once at startup and
// shared by reference across all concurrent evaluations.
package catalog

import (
	"orbita/pkg/domain"
)

// Wildcard in an applicability list matches every profile code.
const Wildcard = "*"

// Requirement is one leaf obligation in a framework catalog.
type Requirement struct {
	ID        domain.RequirementID `yaml:"id"`
	Article   string               `yaml:"article"`
	Text      string               `yaml:"text"`
	Category  string               `yaml:"category"`
	Authority string               `yaml:"authority"`
	Mandatory bool                 `yaml:"mandatory"`
	Severity  domain.Severity      `yaml:"severity"`
	// AppliesTo lists operator-type codes, or ["*"] for all operators.
	AppliesTo []string `yaml:"applies_to"`
	// Jurisdictions lists jurisdiction codes, or ["*"] for all.
	Jurisdictions []string `yaml:"jurisdictions"`

	// Framework is stamped during load from the owning catalog; it is not
	// part of the YAML leaf.
	Framework domain.Framework `yaml:"-"`
}

// Group is a labeled node in the requirement tree. Nesting depth varies by
// framework; a group may carry sub-groups, leaf requirements, or both.
type Group struct {
	Label        string        `yaml:"label"`
	Groups       []Group       `yaml:"groups"`
	Requirements []Requirement `yaml:"requirements"`
}

// Catalog is the versioned requirement tree for one framework. Treat loaded
// catalogs as read-only.
type Catalog struct {
	Framework domain.Framework `yaml:"framework"`
	Version   string           `yaml:"version"`
	Groups    []Group          `yaml:"groups"`
}

// Set bundles every loaded framework catalog. It is the engine's single
// knowledge-base handle.
type Set struct {
	catalogs map[domain.Framework]*Catalog
}

// Catalog returns the catalog for a framework, or nil when the framework has
// no catalog loaded.
func (s *Set) Catalog(f domain.Framework) *Catalog {
	if s == nil {
		return nil
	}
	return s.catalogs[f]
}

// Frameworks lists the frameworks present in the set, in the canonical
// evaluation order.
func (s *Set) Frameworks() []domain.Framework {
	var out []domain.Framework
	for _, f := range domain.Frameworks() {
		if s.catalogs[f] != nil {
			out = append(out, f)
		}
	}
	return out
}

// ApplicableRequirement is a matched requirement annotated with its
// normalized display category.
type ApplicableRequirement struct {
	Requirement
	DisplayCategory DisplayCategory
}
