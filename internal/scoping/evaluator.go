package scoping

import (
	dErrors "orbita/pkg/domain-errors"
)

// maxQuestions bounds the evaluation loop so malformed follow-up data cannot
// splice questions forever.
const maxQuestions = 64

// Evaluate runs the questionnaire against the full current answer set.
//
// Evaluation is stateless and order-strict: questions are consulted in
// declared order, follow-ups spliced in right after the question that
// triggered them, and the first answer matching its question's exit rule
// halts everything with an out-of-scope verdict. Nothing is accumulated
// between calls, so revising an earlier answer is just another Evaluate.
func Evaluate(questions []Question, answers Answers) (Verdict, error) {
	queue := make([]Question, len(questions))
	copy(queue, questions)

	verdict := Verdict{ClassificationInputs: map[string]string{}}

	for step := 0; len(queue) > 0; step++ {
		if step >= maxQuestions {
			return Verdict{}, dErrors.New(dErrors.CodeComputation,
				"questionnaire exceeded maximum question count")
		}
		q := queue[0]
		queue = queue[1:]

		answer, ok := answers[q.ID]
		if !ok {
			return Verdict{}, dErrors.Newf(dErrors.CodeValidation,
				"question %q is unanswered", q.ID)
		}
		if !validOption(q, answer) {
			return Verdict{}, dErrors.Newf(dErrors.CodeValidation,
				"answer %q is not an option of question %q", answer, q.ID)
		}

		verdict.Evaluated = append(verdict.Evaluated, q.ID)

		if q.Exit != nil && answer == q.Exit.Value {
			return Verdict{
				InScope:   false,
				Reason:    q.Exit.Reason,
				Evaluated: verdict.Evaluated,
			}, nil
		}

		if q.ClassificationKey != "" {
			verdict.ClassificationInputs[q.ClassificationKey] = answer
		}

		if follow, ok := q.FollowUps[answer]; ok && len(follow) > 0 {
			queue = append(append([]Question{}, follow...), queue...)
		}
	}

	verdict.InScope = true
	return verdict, nil
}

func validOption(q Question, answer string) bool {
	for _, opt := range q.Options {
		if opt == answer {
			return true
		}
	}
	return false
}
