package classify

import (
	"orbita/pkg/domain"
)

// spaceActNIS2Overlap is the maintained id-to-id mapping between the EU Space
// Act resilience articles and their NIS2 counterparts. It is static data, not
// discovered at runtime: changing either catalog means reviewing this table.
var spaceActNIS2Overlap = map[domain.RequirementID]domain.RequirementID{
	"eusa-cyb-01": "nis2-rm-01", // risk management system
	"eusa-cyb-02": "nis2-rm-06", // link encryption / cryptography
	"eusa-cyb-03": "nis2-ir-01", // 24h incident reporting
	"eusa-cyb-04": "nis2-rm-05", // supply chain security
}

// Overlap summarises how two frameworks' applicable sets intersect through
// the mapping table.
type Overlap struct {
	// Pairs counts mapping entries where both sides are applicable.
	Pairs int
	// SpaceActIDs lists the applicable Space Act side of each counted pair,
	// in mapping-independent catalog order of the input.
	SpaceActIDs []domain.RequirementID
}

// SpaceActNIS2Overlap intersects the two applicable-id sets against the
// static mapping. Inputs are the resolver outputs for each framework.
func SpaceActNIS2Overlap(spaceActIDs, nis2IDs []domain.RequirementID) Overlap {
	nis2 := make(map[domain.RequirementID]bool, len(nis2IDs))
	for _, id := range nis2IDs {
		nis2[id] = true
	}

	var out Overlap
	for _, id := range spaceActIDs {
		mapped, ok := spaceActNIS2Overlap[id]
		if !ok {
			continue
		}
		if nis2[mapped] {
			out.Pairs++
			out.SpaceActIDs = append(out.SpaceActIDs, id)
		}
	}
	return out
}
