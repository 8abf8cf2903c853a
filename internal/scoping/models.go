// Package scoping implements the sequential branching questionnaire that
// decides whether an operator falls under a framework at all, and collects
// the classification inputs used downstream.
package scoping

// ExitRule marks one option value of a question as an out-of-scope trigger.
// The first fired trigger terminates the evaluation.
type ExitRule struct {
	Value  string
	Reason string
}

// Question is one step of the decision tree. Questions are evaluated strictly
// in sequence; FollowUps lets a question splice additional questions directly
// after itself depending on the answer given, so the effective question set
// is conditional rather than a fixed linear list.
type Question struct {
	ID      string
	Text    string
	Options []string
	Exit    *ExitRule
	// ClassificationKey, when set, records the answer into the verdict's
	// classification inputs under that key.
	ClassificationKey string
	// FollowUps maps an answer value to the questions inserted immediately
	// after this one when that answer was given.
	FollowUps map[string][]Question
}

// Answers is the full current answer set, keyed by question ID. The verdict
// is always recomputed from it; revising an earlier answer just means
// evaluating again.
type Answers map[string]string

// Verdict is the terminal outcome of one evaluation.
type Verdict struct {
	InScope bool `json:"in_scope"`
	// Reason is the out-of-scope explanation; empty when in scope.
	Reason string `json:"reason,omitempty"`
	// ClassificationInputs carries the answers flagged for classification.
	// Nil when out of scope: no downstream evaluation happens.
	ClassificationInputs map[string]string `json:"classification_inputs,omitempty"`
	// Evaluated lists the IDs of the questions actually consulted, in order.
	// Questions after an exit trigger never appear here.
	Evaluated []string `json:"evaluated"`
}
