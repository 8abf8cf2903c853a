package report

import (
	"fmt"
	"sort"
	"time"

	"orbita/internal/catalog"
	"orbita/internal/classify"
	"orbita/internal/gap"
	"orbita/internal/scoping"
	"orbita/internal/scoring"
	dErrors "orbita/pkg/domain-errors"
	"orbita/pkg/domain"
)

// Input carries one framework's engine outputs into assembly. Verdict and
// Classification may be nil when the framework has no scoping tree or no
// classification rules.
type Input struct {
	AssessmentID   domain.AssessmentID
	OperatorName   string
	Framework      domain.Framework
	GeneratedAt    time.Time
	Verdict        *scoping.Verdict
	Classification *classify.Result
	Scoring        scoring.Result
	Authorities    []scoring.AuthorityScore
	Gaps           []gap.Record
	Requirements   []catalog.ApplicableRequirement
}

// topGapActions bounds the action list on incident and change reports.
const topGapActions = 5

func errUnknownKind(s string) error {
	return dErrors.Newf(dErrors.CodeInvalidInput, "unknown report kind %q", s)
}

// Assemble builds a report of the given kind. Section order is fixed per
// kind. KindUnifiedProfile is assembled by the unified aggregator, not here.
func Assemble(kind Kind, in Input) (*Report, error) {
	if in.OperatorName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "report input: operator name is required")
	}
	switch kind {
	case KindAnnual:
		return assembleAnnual(in), nil
	case KindIncident:
		return assembleIncident(in), nil
	case KindSignificantChange:
		return assembleSignificantChange(in), nil
	case KindUnifiedProfile:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unified profile reports are assembled from all frameworks together")
	default:
		return nil, errUnknownKind(string(kind))
	}
}

func newReport(kind Kind, title string, in Input) *Report {
	return &Report{
		Kind:         kind,
		Title:        title,
		AssessmentID: in.AssessmentID,
		Operator:     in.OperatorName,
		Framework:    in.Framework,
		GeneratedAt:  in.GeneratedAt,
	}
}

func operatorSummary(in Input) Block {
	pairs := []KV{
		{Key: "Operator", Value: in.OperatorName},
		{Key: "Framework", Value: in.Framework.String()},
	}
	if in.Classification != nil {
		pairs = append(pairs, KV{Key: "Regime", Value: in.Classification.Label.String()})
	}
	if in.Verdict != nil && !in.Verdict.InScope {
		pairs = append(pairs, KV{Key: "Scoping", Value: "out of scope: " + in.Verdict.Reason})
	}
	return KeyValues(pairs...)
}

func scoringSummary(r scoring.Result) Block {
	return KeyValues(
		KV{Key: "Overall score", Value: fmt.Sprintf("%.1f", r.Overall)},
		KV{Key: "Grade", Value: r.Grade.String()},
		KV{Key: "Compliance state", Value: r.State.String()},
		KV{Key: "Risk level", Value: r.Risk.String()},
	)
}

func breakdownTable(r scoring.Result) Block {
	rows := make([][]string, 0, len(r.Breakdown))
	for _, cs := range r.Breakdown {
		rows = append(rows, []string{
			string(cs.Category),
			fmt.Sprintf("%.1f", cs.Score),
			fmt.Sprintf("%d", cs.Compliant),
			fmt.Sprintf("%d", cs.Applicable),
		})
	}
	return NewTable([]string{"Category", "Score", "Compliant", "Applicable"}, rows)
}

func authorityTables(byAuthority []scoring.AuthorityScore) Block {
	tables := make([]TitledTable, 0, len(byAuthority))
	for _, as := range byAuthority {
		tables = append(tables, TitledTable{
			Title: as.Authority,
			Table: Table{
				Columns: []string{"Score", "Compliant", "Applicable"},
				Rows: [][]string{{
					fmt.Sprintf("%.1f", as.Score),
					fmt.Sprintf("%d", as.Compliant),
					fmt.Sprintf("%d", as.Applicable),
				}},
			},
		})
	}
	return NestedTables(tables...)
}

func gapTable(gaps []gap.Record) Block {
	rows := make([][]string, 0, len(gaps))
	for _, g := range gaps {
		rows = append(rows, []string{
			string(g.RequirementID),
			g.Article,
			string(g.Severity),
			g.Status.String(),
			g.Recommendation,
			g.Effort,
		})
	}
	return NewTable([]string{"Requirement", "Article", "Severity", "Status", "Recommendation", "Effort"}, rows)
}

func riskAlert(r scoring.Result) (Block, bool) {
	switch r.Risk {
	case domain.RiskCritical:
		return Alert(AlertCritical, "Critical compliance risk: at least one mandatory obligation with critical severity is open."), true
	case domain.RiskHigh:
		return Alert(AlertWarning, "High compliance risk across mandatory obligations."), true
	default:
		return Block{}, false
	}
}

func assembleAnnual(in Input) *Report {
	rep := newReport(KindAnnual, "Annual Compliance Report", in)
	rep.Sections = append(rep.Sections,
		Heading("Annual Compliance Report"),
		operatorSummary(in),
		scoringSummary(in.Scoring),
		breakdownTable(in.Scoring),
	)
	if len(in.Authorities) > 0 {
		rep.Sections = append(rep.Sections, Heading("Scores by supervising authority"), authorityTables(in.Authorities))
	}
	rep.Sections = append(rep.Sections, Heading("Open gaps"), gapTable(in.Gaps))
	if alert, ok := riskAlert(in.Scoring); ok {
		rep.Sections = append(rep.Sections, alert)
	}
	return rep
}

// incidentCategories are the requirement categories an incident report
// surfaces as notification obligations.
var incidentCategories = map[catalog.DisplayCategory]bool{
	catalog.CategoryCybersecurity: true,
	catalog.CategorySupervision:   true,
}

func assembleIncident(in Input) *Report {
	rep := newReport(KindIncident, "Incident Report", in)
	rows := make([][]string, 0)
	for _, r := range in.Requirements {
		if incidentCategories[r.DisplayCategory] {
			rows = append(rows, []string{string(r.ID), r.Article, r.Authority, r.Text})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	rep.Sections = append(rep.Sections,
		Heading("Incident Report"),
		operatorSummary(in),
		Heading("Notification obligations"),
		NewTable([]string{"Requirement", "Article", "Authority", "Obligation"}, rows),
		Heading("Immediate actions"),
		List(topActions(in.Gaps)...),
	)
	if alert, ok := riskAlert(in.Scoring); ok {
		rep.Sections = append(rep.Sections, alert)
	}
	return rep
}

func assembleSignificantChange(in Input) *Report {
	rep := newReport(KindSignificantChange, "Significant Change Notification", in)
	items := make([]string, 0)
	for _, r := range in.Requirements {
		if r.DisplayCategory == catalog.CategoryAuthorization || r.DisplayCategory == catalog.CategorySupervision {
			items = append(items, fmt.Sprintf("%s (%s): %s", r.Article, r.Authority, r.Text))
		}
	}
	sort.Strings(items)

	rep.Sections = append(rep.Sections,
		Heading("Significant Change Notification"),
		operatorSummary(in),
		Heading("Obligations triggered by the change"),
		List(items...),
		Alert(AlertInfo, "Authorization conditions must be re-validated before the change takes effect."),
	)
	return rep
}

// topActions returns the highest-priority gap recommendations, deduplicated,
// capped at topGapActions. Gaps arrive already priority-ordered.
func topActions(gaps []gap.Record) []string {
	seen := make(map[string]bool, topGapActions)
	out := make([]string, 0, topGapActions)
	for _, g := range gaps {
		if seen[g.Recommendation] {
			continue
		}
		seen[g.Recommendation] = true
		out = append(out, g.Recommendation)
		if len(out) == topGapActions {
			break
		}
	}
	return out
}
