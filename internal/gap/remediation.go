// Package gap diffs required obligations against their current statuses into
// a prioritized remediation list.
package gap

import (
	"orbita/internal/catalog"
	"orbita/pkg/domain"
)

// Remediation is the static advice attached to a requirement. Text and
// effort come from this table, never computed ad hoc, so the guidance stays
// reviewable.
type Remediation struct {
	Recommendation string
	Effort string
}

// remediationByID carries requirement-specific advice for the obligations
// where generic category advice would be too vague.
var remediationByID = map[domain.RequirementID]Remediation{
	"eusa-auth-01": {
		Recommendation: "File the authorisation application with the competent national authority; operations before grant are prohibited.",
		Effort:         "3-6 months",
	},
	"eusa-safe-01": {
		Recommendation: "Draft a debris mitigation plan against the Union debris mitigation standard and have it independently reviewed.",
		Effort:         "6-10 weeks",
	},
	"eusa-safe-04": {
		Recommendation: "Subscribe to the Union SST conjunction service and define manoeuvre decision thresholds with named on-call owners.",
		Effort:         "4-8 weeks",
	},
	"eusa-cyb-01": {
		Recommendation: "Stand up a space-segment ISMS covering spacecraft, links and ground systems; reuse the NIS2 risk register where one exists.",
		Effort:         "3-6 months",
	},
	"eusa-cyb-03": {
		Recommendation: "Define the 24-hour incident notification runbook and rehearse it with the competent authority's reporting portal.",
		Effort:         "2-4 weeks",
	},
	"nis2-rm-01": {
		Recommendation: "Adopt a risk management framework (ISO 27001 or equivalent) and map each Article 21 measure to an owned control.",
		Effort:         "3-6 months",
	},
	"nis2-ir-01": {
		Recommendation: "Wire monitoring alerts to an on-call rota able to file the CSIRT early warning within 24 hours.",
		Effort:         "2-4 weeks",
	},
	"frlos-02": {
		Recommendation: "Schedule a conformity review against the CNES technical regulation before the next authorisation milestone.",
		Effort:         "6-12 weeks",
	},
	"uksia-04": {
		Recommendation: "Build the safety case with a quantified risk assessment and submit it for CAA assessment.",
		Effort:         "3-6 months",
	},
}

// remediationByCategory is the fallback advice when no per-requirement entry
// exists.
var remediationByCategory = map[catalog.DisplayCategory]Remediation{
	catalog.CategoryAuthorization: {
		Recommendation: "Review the licensing and registration file for this obligation and close the documentation gap with the authority.",
		Effort:         "4-8 weeks",
	},
	catalog.CategorySafety: {
		Recommendation: "Update the operational safety documentation and verify the control is exercised in the next operations review.",
		Effort:         "4-8 weeks",
	},
	catalog.CategoryCybersecurity: {
		Recommendation: "Assign the control to the security owner, implement it, and evidence it in the risk register.",
		Effort:         "2-6 weeks",
	},
	catalog.CategoryEnvironment: {
		Recommendation: "Produce the environmental documentation for this obligation and track it in the mission review checklist.",
		Effort:         "2-4 weeks",
	},
	catalog.CategorySupervision: {
		Recommendation: "Add the reporting duty to the compliance calendar with a named owner and a submission deadline.",
		Effort:         "1-2 weeks",
	},
	catalog.CategoryInformational: {
		Recommendation: "Review the obligation and record the applicable position in the compliance register.",
		Effort:         "1-2 weeks",
	},
}

// remediationFor resolves advice: per-requirement entry first, category
// fallback otherwise. The category table is total over display categories,
// so the lookup always succeeds.
func remediationFor(r catalog.ApplicableRequirement) Remediation {
	if rem, ok := remediationByID[r.ID]; ok {
		return rem
	}
	return remediationByCategory[r.DisplayCategory]
}
