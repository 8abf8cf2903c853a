// Package domain holds validated value types shared across modules.
//
// Enum types are constructed via Parse* at trust boundaries so unknown values
// are rejected instead of silently defaulted; direct casting bypasses
// validation and is reserved for package-internal literals.
package domain

import (
	"github.com/google/uuid"

	dErrors "orbita/pkg/domain-errors"
)

// AssessmentID identifies one assessment run and its status set.
type AssessmentID uuid.UUID

// NewAssessmentID returns a fresh random assessment ID.
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.New())
}

// ParseAssessmentID constructs an AssessmentID from external input.
func ParseAssessmentID(s string) (AssessmentID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return AssessmentID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid assessment id")
	}
	return AssessmentID(u), nil
}

func (a AssessmentID) String() string {
	return uuid.UUID(a).String()
}

// IsZero reports whether the ID is the zero UUID.
func (a AssessmentID) IsZero() bool {
	return uuid.UUID(a) == uuid.Nil
}

// MarshalText renders the ID as its canonical UUID string in JSON and text
// encodings.
func (a AssessmentID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AssessmentID) UnmarshalText(text []byte) error {
	parsed, err := ParseAssessmentID(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// RequirementID identifies a single catalog requirement, e.g. "eusa-auth-01".
// Requirement IDs are catalog data, not generated, so the type is a plain
// string with no parse step.
type RequirementID string

func (r RequirementID) String() string {
	return string(r)
}
