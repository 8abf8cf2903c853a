package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbita/pkg/domain"
	dErrors "orbita/pkg/domain-errors"
)

func TestLoad_EmbeddedCatalogs(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	// Every supported framework ships a catalog.
	assert.Equal(t, domain.Frameworks(), set.Frameworks())

	for _, fw := range set.Frameworks() {
		cat := set.Catalog(fw)
		require.NotNil(t, cat)
		assert.NotEmpty(t, cat.Version)
		assert.Equal(t, fw, cat.Framework)

		err := cat.Walk(func(r Requirement) error {
			assert.Equal(t, fw, r.Framework, "framework stamped on %s", r.ID)
			return nil
		})
		require.NoError(t, err)
	}
}

func TestLoadFromBytes_Validation(t *testing.T) {
	t.Run("accepts a minimal valid catalog", func(t *testing.T) {
		cat, err := LoadFromBytes([]byte(`
framework: nis2
version: "t1"
groups:
  - label: g
    requirements:
      - id: t-01
        text: do the thing
        category: reporting
        severity: low
        mandatory: true
        applies_to: ["*"]
        jurisdictions: ["*"]
`))
		require.NoError(t, err)
		n, err := cat.LeafCount()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("rejects unknown framework", func(t *testing.T) {
		_, err := LoadFromBytes([]byte("framework: maritime\nversion: t\n"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeComputation))
	})

	t.Run("rejects missing version", func(t *testing.T) {
		_, err := LoadFromBytes([]byte("framework: nis2\n"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeComputation))
	})

	t.Run("rejects leaf missing obligation text", func(t *testing.T) {
		_, err := LoadFromBytes([]byte(`
framework: nis2
version: "t1"
groups:
  - label: g
    requirements:
      - id: t-01
        category: reporting
        severity: low
        applies_to: ["*"]
        jurisdictions: ["*"]
`))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeComputation))
	})

	t.Run("rejects leaf with empty predicate", func(t *testing.T) {
		_, err := LoadFromBytes([]byte(`
framework: nis2
version: "t1"
groups:
  - label: g
    requirements:
      - id: t-01
        text: x
        category: reporting
        severity: low
        applies_to: []
        jurisdictions: ["*"]
`))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeComputation))
	})

	t.Run("rejects invalid severity", func(t *testing.T) {
		_, err := LoadFromBytes([]byte(`
framework: nis2
version: "t1"
groups:
  - label: g
    requirements:
      - id: t-01
        text: x
        category: reporting
        severity: catastrophic
        applies_to: ["*"]
        jurisdictions: ["*"]
`))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeComputation))
	})
}

func TestLoad_NoDuplicateIDsAcrossFrameworks(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	seen := map[domain.RequirementID]domain.Framework{}
	for _, fw := range set.Frameworks() {
		err := set.Catalog(fw).Walk(func(r Requirement) error {
			if prev, ok := seen[r.ID]; ok {
				t.Fatalf("requirement %s declared in both %s and %s", r.ID, prev, fw)
			}
			seen[r.ID] = fw
			return nil
		})
		require.NoError(t, err)
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryAuthorization, NormalizeCategory("licensing"))
	assert.Equal(t, CategorySafety, NormalizeCategory("debris_mitigation"))
	assert.Equal(t, CategoryCybersecurity, NormalizeCategory("incident_reporting"))
	assert.Equal(t, CategoryEnvironment, NormalizeCategory("dark_quiet_skies"))
	assert.Equal(t, CategorySupervision, NormalizeCategory("audits"))
	assert.Equal(t, CategoryInformational, NormalizeCategory("spectrum_management"))
	assert.Equal(t, CategoryInformational, NormalizeCategory(""))
}
