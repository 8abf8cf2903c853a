// Package classify derives regime and tier labels from an operator profile.
//
// Each framework's logic is an ordered list of (predicate, result) rules
// evaluated top to bottom with first-match-wins semantics. Precedence is the
// list order, nothing else, which keeps overlapping conditions unambiguous
// and every rule independently testable.
package classify

import (
	"orbita/internal/domain"
	pkgdomain "orbita/pkg/domain"
)

// Result is a classification outcome for one framework.
type Result struct {
	Framework pkgdomain.Framework `json:"framework"`
	Label     Label               `json:"label"`
	// Reason is the human-readable justification shown in reports.
	Reason string `json:"reason"`
}

// Label is a regime or tier label. The value set depends on the framework.
type Label string

func (l Label) String() string {
	return string(l)
}

// OutOfScope reports whether the label excludes the operator from the
// framework entirely.
func (l Label) OutOfScope() bool {
	return l == RegimeOutOfScope
}

// EU Space Act regimes.
const (
	RegimeStandard   Label = "standard"
	RegimeLight      Label = "light"
	RegimeOutOfScope Label = "out_of_scope"
)

// NIS2 entity classes.
const (
	EntityEssential  Label = "essential"
	EntityImportant  Label = "important"
	EntityOutOfScope Label = "out_of_scope"
)

// Rule pairs a predicate with its result. Reason may reference the matched
// condition; it is fixed per rule, not computed.
type Rule struct {
	Name   string
	When   func(domain.OperatorProfile) bool
	Label  Label
	Reason string
}

// RuleList is an ordered classifier for one framework.
type RuleList struct {
	Framework pkgdomain.Framework
	Rules     []Rule
	// Default applies when no rule matches. Every list must define it so
	// classification is total.
	Default Rule
}

// Classify evaluates the rules in order and returns the first match.
func (l RuleList) Classify(p domain.OperatorProfile) Result {
	for _, r := range l.Rules {
		if r.When(p) {
			return Result{Framework: l.Framework, Label: r.Label, Reason: r.Reason}
		}
	}
	return Result{Framework: l.Framework, Label: l.Default.Label, Reason: l.Default.Reason}
}
