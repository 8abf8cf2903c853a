package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"orbita/pkg/domain"
	dErrors "orbita/pkg/domain-errors"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// Load parses and validates every embedded framework catalog. It is called
// once at startup; the returned Set is immutable and safe to share without
// synchronization.
//
// A catalog entry missing a required field refuses the whole set with
// CodeComputation: a partially-loaded knowledge base would produce
// partially-wrong scores.
func Load() (*Set, error) {
	entries, err := fs.ReadDir(catalogFS, "catalogs")
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeComputation, "read embedded catalogs")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	set := &Set{catalogs: make(map[domain.Framework]*Catalog)}
	seen := make(map[domain.RequirementID]string)

	for _, name := range names {
		raw, err := catalogFS.ReadFile("catalogs/" + name)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeComputation, "read catalog "+name)
		}
		cat, err := parseCatalog(raw, name)
		if err != nil {
			return nil, err
		}
		if set.catalogs[cat.Framework] != nil {
			return nil, dErrors.Newf(dErrors.CodeComputation,
				"duplicate catalog for framework %s (%s)", cat.Framework, name)
		}
		if err := validateCatalog(cat, seen); err != nil {
			return nil, err
		}
		set.catalogs[cat.Framework] = cat
	}
	return set, nil
}

// LoadFromBytes parses and validates a single catalog document. Tests and
// tooling use it to assemble sets without the embedded data.
func LoadFromBytes(raw []byte) (*Catalog, error) {
	cat, err := parseCatalog(raw, "inline")
	if err != nil {
		return nil, err
	}
	if err := validateCatalog(cat, make(map[domain.RequirementID]string)); err != nil {
		return nil, err
	}
	return cat, nil
}

// NewSet builds a Set from already-validated catalogs. Intended for tests.
func NewSet(catalogs ...*Catalog) *Set {
	set := &Set{catalogs: make(map[domain.Framework]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		set.catalogs[c.Framework] = c
	}
	return set
}

func parseCatalog(raw []byte, name string) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeComputation, "parse catalog "+name)
	}
	if _, err := domain.ParseFramework(cat.Framework.String()); err != nil {
		return nil, dErrors.Newf(dErrors.CodeComputation,
			"catalog %s: unknown framework %q", name, cat.Framework)
	}
	if cat.Version == "" {
		return nil, dErrors.Newf(dErrors.CodeComputation, "catalog %s: missing version", name)
	}
	return &cat, nil
}

func validateCatalog(c *Catalog, seen map[domain.RequirementID]string) error {
	stamp := func(g *Group) {
		for i := range g.Requirements {
			g.Requirements[i].Framework = c.Framework
		}
	}
	for i := range c.Groups {
		stampGroups(&c.Groups[i], stamp)
	}

	return c.Walk(func(r Requirement) error {
		where := fmt.Sprintf("catalog %s requirement %q", c.Framework, r.ID)
		switch {
		case r.ID == "":
			return dErrors.Newf(dErrors.CodeComputation, "catalog %s: requirement with empty id", c.Framework)
		case r.Text == "":
			return dErrors.Newf(dErrors.CodeComputation, "%s: missing obligation text", where)
		case r.Category == "":
			return dErrors.Newf(dErrors.CodeComputation, "%s: missing category", where)
		case !r.Severity.IsValid():
			return dErrors.Newf(dErrors.CodeComputation, "%s: invalid severity %q", where, r.Severity)
		case len(r.AppliesTo) == 0:
			return dErrors.Newf(dErrors.CodeComputation, "%s: empty applies_to predicate", where)
		case len(r.Jurisdictions) == 0:
			return dErrors.Newf(dErrors.CodeComputation, "%s: empty jurisdictions predicate", where)
		}
		if prev, dup := seen[r.ID]; dup {
			return dErrors.Newf(dErrors.CodeComputation, "%s: id already declared in %s", where, prev)
		}
		seen[r.ID] = c.Framework.String()
		return nil
	})
}

func stampGroups(g *Group, stamp func(*Group)) {
	stamp(g)
	for i := range g.Groups {
		stampGroups(&g.Groups[i], stamp)
	}
}
