package scoping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "orbita/pkg/domain-errors"
)

func inScopeAnswers() Answers {
	return Answers{
		"operates_space_assets": AnswerYes,
		"defense_only":          AnswerNo,
		"union_connection":      AnswerYes,
		"primary_activity":      "satellite_operation",
		"fleet_scale":           "constellation",
		"workforce_size":        "medium",
	}
}

func TestEvaluate_InScopeCollectsClassificationInputs(t *testing.T) {
	verdict, err := Evaluate(SpaceActQuestions(), inScopeAnswers())
	require.NoError(t, err)

	assert.True(t, verdict.InScope)
	assert.Empty(t, verdict.Reason)
	assert.Equal(t, map[string]string{
		InputPrimaryActivity: "satellite_operation",
		InputFleetScale:      "constellation",
		InputWorkforceSize:   "medium",
	}, verdict.ClassificationInputs)
}

// TestEvaluate_DefenseExclusionHaltsEvaluation is the defence carve-out
// scenario: the trigger ends the questionnaire and nothing after it is
// consulted, even though later answers are present (and even invalid).
func TestEvaluate_DefenseExclusionHaltsEvaluation(t *testing.T) {
	answers := inScopeAnswers()
	answers["defense_only"] = AnswerYes
	answers["primary_activity"] = "not-even-an-option"

	verdict, err := Evaluate(SpaceActQuestions(), answers)
	require.NoError(t, err)

	assert.False(t, verdict.InScope)
	assert.Equal(t, ReasonDefenseExclusion, verdict.Reason)
	assert.Equal(t, []string{"operates_space_assets", "defense_only"}, verdict.Evaluated)
	assert.Nil(t, verdict.ClassificationInputs)
}

func TestEvaluate_FirstTriggerWins(t *testing.T) {
	answers := inScopeAnswers()
	answers["operates_space_assets"] = AnswerNo
	answers["defense_only"] = AnswerYes // would also trigger, but never reached

	verdict, err := Evaluate(SpaceActQuestions(), answers)
	require.NoError(t, err)
	assert.False(t, verdict.InScope)
	assert.Equal(t, []string{"operates_space_assets"}, verdict.Evaluated)
	assert.NotEqual(t, ReasonDefenseExclusion, verdict.Reason)
}

// TestEvaluate_ConditionalFollowUps verifies that a launch answer splices the
// vehicle-vs-site sub-questions in, and that a satellite answer does not.
func TestEvaluate_ConditionalFollowUps(t *testing.T) {
	t.Run("launch branch inserts sub-questions", func(t *testing.T) {
		answers := Answers{
			"operates_space_assets": AnswerYes,
			"defense_only":          AnswerNo,
			"union_connection":      AnswerYes,
			"primary_activity":      "launch",
			"launch_role":           "site",
			"crewed_flights":        AnswerNo,
			"workforce_size":        "large",
		}
		verdict, err := Evaluate(SpaceActQuestions(), answers)
		require.NoError(t, err)
		assert.True(t, verdict.InScope)
		assert.Equal(t, "site", verdict.ClassificationInputs[InputLaunchRole])
		assert.Equal(t, []string{
			"operates_space_assets", "defense_only", "union_connection",
			"primary_activity", "launch_role", "crewed_flights", "workforce_size",
		}, verdict.Evaluated)
	})

	t.Run("satellite branch skips launch sub-questions", func(t *testing.T) {
		verdict, err := Evaluate(SpaceActQuestions(), inScopeAnswers())
		require.NoError(t, err)
		assert.NotContains(t, verdict.Evaluated, "launch_role")
		assert.Contains(t, verdict.Evaluated, "fleet_scale")
	})
}

// TestEvaluate_RevisionIsSideEffectFree recomputes with a changed earlier
// answer and checks the verdict flips cleanly, with no residue from the
// previous run.
func TestEvaluate_RevisionIsSideEffectFree(t *testing.T) {
	questions := SpaceActQuestions()

	answers := inScopeAnswers()
	answers["defense_only"] = AnswerYes
	out, err := Evaluate(questions, answers)
	require.NoError(t, err)
	require.False(t, out.InScope)

	answers["defense_only"] = AnswerNo
	in, err := Evaluate(questions, answers)
	require.NoError(t, err)
	assert.True(t, in.InScope)
	assert.Len(t, in.Evaluated, 6)
}

func TestEvaluate_ValidationErrors(t *testing.T) {
	t.Run("unanswered question", func(t *testing.T) {
		answers := inScopeAnswers()
		delete(answers, "workforce_size")
		_, err := Evaluate(SpaceActQuestions(), answers)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("answer outside options", func(t *testing.T) {
		answers := inScopeAnswers()
		answers["workforce_size"] = "gigantic"
		_, err := Evaluate(SpaceActQuestions(), answers)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("unanswered follow-up only matters when activated", func(t *testing.T) {
		answers := inScopeAnswers()
		// No launch_role answer, but the satellite branch never asks it.
		verdict, err := Evaluate(SpaceActQuestions(), answers)
		require.NoError(t, err)
		assert.True(t, verdict.InScope)
	})
}
