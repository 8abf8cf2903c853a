package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "orbita/pkg/domain-errors"
)

// TestParseAssessmentID_Invariants validates the parsing invariant:
// assessment IDs must be valid UUIDs.
func TestParseAssessmentID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseAssessmentID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseAssessmentID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseAssessmentID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, AssessmentID(valid), id)
	})
}

// TestEnumParsing verifies that every enum rejects unknown values instead of
// silently defaulting, and round-trips its declared constants.
func TestEnumParsing(t *testing.T) {
	t.Run("framework", func(t *testing.T) {
		for _, f := range Frameworks() {
			parsed, err := ParseFramework(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
		_, err := ParseFramework("gdpr")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("operator type", func(t *testing.T) {
		parsed, err := ParseOperatorType("satellite_operator")
		require.NoError(t, err)
		assert.Equal(t, OperatorSatellite, parsed)

		_, err = ParseOperatorType("astronaut")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("activity type", func(t *testing.T) {
		parsed, err := ParseActivityType("launch")
		require.NoError(t, err)
		assert.Equal(t, ActivityLaunch, parsed)

		_, err = ParseActivityType("")
		require.Error(t, err)
	})

	t.Run("jurisdiction", func(t *testing.T) {
		parsed, err := ParseJurisdiction("fr")
		require.NoError(t, err)
		assert.Equal(t, JurisdictionFR, parsed)

		_, err = ParseJurisdiction("us")
		require.Error(t, err)
	})

	t.Run("compliance status", func(t *testing.T) {
		parsed, err := ParseComplianceStatus("non_compliant")
		require.NoError(t, err)
		assert.Equal(t, StatusNonCompliant, parsed)

		_, err = ParseComplianceStatus("done")
		require.Error(t, err)
	})

	t.Run("orbit regime accepts empty", func(t *testing.T) {
		parsed, err := ParseOrbitRegime("")
		require.NoError(t, err)
		assert.Equal(t, OrbitNone, parsed)

		_, err = ParseOrbitRegime("lunar")
		require.Error(t, err)
	})
}

// TestRiskOrdering verifies the worst-case semantics the aggregator relies on.
func TestRiskOrdering(t *testing.T) {
	t.Run("critical dominates", func(t *testing.T) {
		assert.Equal(t, RiskCritical, MaxRisk(RiskLow, RiskCritical))
		assert.Equal(t, RiskCritical, MaxRisk(RiskCritical, RiskLow))
	})

	t.Run("ranks are strictly ordered", func(t *testing.T) {
		assert.Less(t, RiskLow.Rank(), RiskMedium.Rank())
		assert.Less(t, RiskMedium.Rank(), RiskHigh.Rank())
		assert.Less(t, RiskHigh.Rank(), RiskCritical.Rank())
	})

	t.Run("unknown level never masks a real one", func(t *testing.T) {
		assert.Equal(t, RiskLow, MaxRisk(RiskLevel("bogus"), RiskLow))
	})
}

func TestStatusOpen(t *testing.T) {
	assert.True(t, StatusNonCompliant.Open())
	assert.True(t, StatusPartial.Open())
	assert.True(t, StatusNotStarted.Open())
	assert.False(t, StatusCompliant.Open())
	assert.False(t, StatusNotApplicable.Open())
}

func TestSizeAtLeast(t *testing.T) {
	assert.True(t, SizeLarge.AtLeast(SizeMedium))
	assert.True(t, SizeMedium.AtLeast(SizeMedium))
	assert.False(t, SizeSmall.AtLeast(SizeMedium))
}
