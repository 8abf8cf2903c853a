package catalog

import (
	"orbita/pkg/domain"
)

// ProfileCodes are the resolved matching codes of an operator profile: the
// operator-type codes it carries and the jurisdictions whose authorities
// supervise it.
type ProfileCodes struct {
	OperatorTypes []domain.OperatorType
	Jurisdictions []domain.Jurisdiction
}

// Resolve flattens the catalog and returns every requirement applicable to
// the given profile codes, in catalog declaration order, each annotated with
// its normalized display category.
//
// A requirement applies when both of its predicate lists match: a list
// matches if it contains the wildcard or intersects the profile's codes.
func Resolve(c *Catalog, codes ProfileCodes) ([]ApplicableRequirement, error) {
	ops := make(map[string]bool, len(codes.OperatorTypes))
	for _, t := range codes.OperatorTypes {
		ops[t.String()] = true
	}
	jur := make(map[string]bool, len(codes.Jurisdictions))
	for _, j := range codes.Jurisdictions {
		jur[j.String()] = true
	}

	var out []ApplicableRequirement
	err := c.Walk(func(r Requirement) error {
		if !listMatches(r.AppliesTo, ops) {
			return nil
		}
		if !listMatches(r.Jurisdictions, jur) {
			return nil
		}
		out = append(out, ApplicableRequirement{
			Requirement:     r,
			DisplayCategory: NormalizeCategory(r.Category),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplicableIDs returns just the requirement IDs from Resolve, preserving
// order. The classification engine uses it for overlap counting.
func ApplicableIDs(c *Catalog, codes ProfileCodes) ([]domain.RequirementID, error) {
	reqs, err := Resolve(c, codes)
	if err != nil {
		return nil, err
	}
	ids := make([]domain.RequirementID, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	return ids, nil
}

func listMatches(list []string, have map[string]bool) bool {
	for _, v := range list {
		if v == Wildcard || have[v] {
			return true
		}
	}
	return false
}
