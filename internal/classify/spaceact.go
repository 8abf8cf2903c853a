package classify

import (
	"orbita/internal/domain"
	pkgdomain "orbita/pkg/domain"
)

// lightRegimeSatelliteCap is the fleet size above which the light regime is
// unavailable regardless of operator size.
const lightRegimeSatelliteCap = 10

// SpaceActRegime is the EU Space Act regime classifier. Order matters:
// exclusions first, then the heavy cases, then the light-regime carve-out.
func SpaceActRegime() RuleList {
	return RuleList{
		Framework: pkgdomain.FrameworkEUSpaceAct,
		Rules: []Rule{
			{
				Name: "no_union_supervision",
				When: func(p domain.OperatorProfile) bool {
					return !p.InJurisdiction(pkgdomain.JurisdictionEU) &&
						!p.InJurisdiction(pkgdomain.JurisdictionFR) &&
						!p.InJurisdiction(pkgdomain.JurisdictionLU)
				},
				Label:  RegimeOutOfScope,
				Reason: "Operator is not supervised in any Union jurisdiction.",
			},
			{
				Name: "launch_operations",
				When: func(p domain.OperatorProfile) bool {
					return p.HasOperatorType(pkgdomain.OperatorLaunchVehicle) ||
						p.HasOperatorType(pkgdomain.OperatorLaunchSite)
				},
				Label:  RegimeStandard,
				Reason: "Launch vehicle and launch site operations always fall under the standard regime.",
			},
			{
				Name: "constellation",
				When: func(p domain.OperatorProfile) bool {
					return p.ConstellationOperator || p.SatelliteCount > lightRegimeSatelliteCap
				},
				Label:  RegimeStandard,
				Reason: "Constellation-scale operations fall under the standard regime.",
			},
			{
				Name: "small_operator_light_regime",
				When: func(p domain.OperatorProfile) bool {
					return p.Size == pkgdomain.SizeMicro || p.Size == pkgdomain.SizeSmall
				},
				Label:  RegimeLight,
				Reason: "Micro and small operators with limited fleets qualify for the light regime.",
			},
		},
		Default: Rule{
			Label:  RegimeStandard,
			Reason: "Operators outside the light-regime carve-out fall under the standard regime.",
		},
	}
}
