package unified

import (
	"fmt"
	"time"

	"orbita/internal/report"
	"orbita/pkg/domain"
)

// BuildReport assembles the unified profile report: one framework table,
// worst-case risk, merged immediate actions, and the overlap note.
func BuildReport(id domain.AssessmentID, operator string, generatedAt time.Time, sum *Summary) *report.Report {
	rep := &report.Report{
		Kind:         report.KindUnifiedProfile,
		Title:        "Unified Compliance Profile",
		AssessmentID: id,
		Operator:     operator,
		GeneratedAt:  generatedAt,
	}

	rows := make([][]string, 0, len(sum.Outcomes))
	for _, out := range sum.Outcomes {
		if !out.InScope {
			rows = append(rows, []string{out.Framework.String(), "out of scope", "-", "-", out.OutOfScopeReason})
			continue
		}
		label := "-"
		if out.Classification != nil {
			label = out.Classification.Label.String()
		}
		rows = append(rows, []string{
			out.Framework.String(),
			label,
			fmt.Sprintf("%.1f", out.Scoring.Overall),
			out.Scoring.Risk.String(),
			fmt.Sprintf("%d open gaps", len(out.Gaps)),
		})
	}

	rep.Sections = append(rep.Sections,
		report.Heading("Unified Compliance Profile"),
		report.KeyValues(
			report.KV{Key: "Operator", Value: operator},
			report.KV{Key: "Frameworks assessed", Value: fmt.Sprintf("%d", len(sum.Outcomes))},
			report.KV{Key: "Total requirements", Value: fmt.Sprintf("%d", sum.TotalRequirements)},
			report.KV{Key: "Overall risk", Value: sum.OverallRisk.String()},
		),
		report.NewTable([]string{"Framework", "Regime", "Score", "Risk", "Gaps"}, rows),
	)

	if len(sum.ImmediateActions) > 0 {
		rep.Sections = append(rep.Sections,
			report.Heading("Immediate actions"),
			report.List(sum.ImmediateActions...),
		)
	}
	if sum.Overlap.Pairs > 0 {
		rep.Sections = append(rep.Sections, report.Alert(report.AlertInfo,
			fmt.Sprintf("%d EU Space Act obligations overlap with NIS2; evidence for them can be shared across both frameworks.", sum.Overlap.Pairs)))
	}
	if sum.OverallRisk == domain.RiskCritical {
		rep.Sections = append(rep.Sections, report.Alert(report.AlertCritical,
			"At least one framework carries critical compliance risk."))
	}
	return rep
}
