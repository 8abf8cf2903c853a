package classify

import (
	"orbita/internal/domain"
	pkgdomain "orbita/pkg/domain"
)

// NIS2EntityClass is the NIS2 entity classifier for the space sector.
// Space is an Annex I (high criticality) sector, so the size-cap rule drives
// most outcomes: large operators are essential, medium ones important, and
// smaller operators are out of scope unless a member state designated their
// services as critical.
func NIS2EntityClass() RuleList {
	return RuleList{
		Framework: pkgdomain.FrameworkNIS2,
		Rules: []Rule{
			{
				Name: "designated_critical",
				When: func(p domain.OperatorProfile) bool {
					return p.ProvidesEssentialServices
				},
				Label:  EntityEssential,
				Reason: "Services designated critical by a member state make the operator an essential entity regardless of size.",
			},
			{
				Name: "large_annex1",
				When: func(p domain.OperatorProfile) bool {
					return p.Size == pkgdomain.SizeLarge
				},
				Label:  EntityEssential,
				Reason: "Large entities in the space sector (Annex I) are essential entities.",
			},
			{
				Name: "medium_annex1",
				When: func(p domain.OperatorProfile) bool {
					return p.Size == pkgdomain.SizeMedium
				},
				Label:  EntityImportant,
				Reason: "Medium entities in the space sector (Annex I) are important entities.",
			},
		},
		Default: Rule{
			Label:  EntityOutOfScope,
			Reason: "Micro and small entities fall under the NIS2 size cap and are out of scope unless designated.",
		},
	}
}
