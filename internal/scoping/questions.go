package scoping

// Answer values shared across questions.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Classification input keys produced by the questionnaire.
const (
	InputPrimaryActivity = "primary_activity"
	InputLaunchRole      = "launch_role"
	InputFleetScale      = "fleet_scale"
	InputWorkforceSize   = "workforce_size"
	InputCrewedFlights   = "crewed_flights"
)

// ReasonDefenseExclusion is the terminal explanation for the defence carve-out.
const ReasonDefenseExclusion = "Space assets used exclusively for defence or national security purposes are excluded from the EU Space Act (Art. 2(3))."

// SpaceActQuestions returns the EU Space Act scoping questionnaire. The
// returned slice is a fresh copy: callers may not mutate shared state.
func SpaceActQuestions() []Question {
	return []Question{
		{
			ID:      "operates_space_assets",
			Text:    "Does the organisation operate spacecraft or launch vehicles, or provide space-based data services?",
			Options: []string{AnswerYes, AnswerNo},
			Exit: &ExitRule{
				Value:  AnswerNo,
				Reason: "The organisation conducts no space activity covered by the EU Space Act.",
			},
		},
		{
			ID:      "defense_only",
			Text:    "Are the organisation's space assets used exclusively for defence or national security purposes?",
			Options: []string{AnswerYes, AnswerNo},
			Exit: &ExitRule{
				Value:  AnswerYes,
				Reason: ReasonDefenseExclusion,
			},
		},
		{
			ID:      "union_connection",
			Text:    "Is the operator established in the Union, or does it provide space services on the Union market?",
			Options: []string{AnswerYes, AnswerNo},
			Exit: &ExitRule{
				Value:  AnswerNo,
				Reason: "Operators with no Union establishment and no Union market activity fall outside the EU Space Act.",
			},
		},
		{
			ID:                "primary_activity",
			Text:              "What is the organisation's primary space activity?",
			Options:           []string{"satellite_operation", "launch", "ground_station", "space_data_service"},
			ClassificationKey: InputPrimaryActivity,
			FollowUps: map[string][]Question{
				"launch": {
					{
						ID:                "launch_role",
						Text:              "Does the organisation operate the launch vehicle or the launch site?",
						Options:           []string{"vehicle", "site"},
						ClassificationKey: InputLaunchRole,
					},
					{
						ID:                "crewed_flights",
						Text:              "Do the licensed launches carry crew or spaceflight participants?",
						Options:           []string{AnswerYes, AnswerNo},
						ClassificationKey: InputCrewedFlights,
					},
				},
				"satellite_operation": {
					{
						ID:                "fleet_scale",
						Text:              "How large is the operated fleet?",
						Options:           []string{"single", "small_fleet", "constellation"},
						ClassificationKey: InputFleetScale,
					},
				},
			},
		},
		{
			ID:                "workforce_size",
			Text:              "What is the organisation's size category under the SME definition?",
			Options:           []string{"micro", "small", "medium", "large"},
			ClassificationKey: InputWorkforceSize,
		},
	}
}
