package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbita/pkg/domain"
)

func testCatalog() *Catalog {
	wide := leaf("all-1")

	satOnly := leaf("sat-1")
	satOnly.AppliesTo = []string{domain.OperatorSatellite.String()}

	frOnly := leaf("fr-1")
	frOnly.Jurisdictions = []string{domain.JurisdictionFR.String()}

	launch := leaf("launch-1")
	launch.AppliesTo = []string{domain.OperatorLaunchVehicle.String(), domain.OperatorLaunchSite.String()}

	odd := leaf("odd-1")
	odd.Category = "telepathy_clearance"

	return &Catalog{
		Framework: domain.FrameworkEUSpaceAct,
		Version:   "test",
		Groups: []Group{
			{Label: "general", Requirements: []Requirement{wide, satOnly}},
			{Label: "national", Requirements: []Requirement{frOnly}},
			{Label: "launch", Requirements: []Requirement{launch, odd}},
		},
	}
}

func TestResolve_PredicateIntersection(t *testing.T) {
	cat := testCatalog()
	codes := ProfileCodes{
		OperatorTypes: []domain.OperatorType{domain.OperatorSatellite},
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionEU},
	}

	reqs, err := Resolve(cat, codes)
	require.NoError(t, err)

	var ids []string
	for _, r := range reqs {
		ids = append(ids, r.ID.String())
	}
	// fr-1 excluded by jurisdiction, launch-1 by operator type; odd-1 is
	// wildcard so it stays. Declaration order preserved.
	assert.Equal(t, []string{"all-1", "sat-1", "odd-1"}, ids)
}

func TestResolve_WildcardMatchesEverything(t *testing.T) {
	cat := testCatalog()
	codes := ProfileCodes{
		OperatorTypes: []domain.OperatorType{domain.OperatorGroundSegment},
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionLU},
	}

	reqs, err := Resolve(cat, codes)
	require.NoError(t, err)
	var ids []string
	for _, r := range reqs {
		ids = append(ids, r.ID.String())
	}
	assert.Equal(t, []string{"all-1", "odd-1"}, ids)
}

// TestResolve_UnknownRawCategoryFallsBack covers the evolving-catalog rule:
// a raw label absent from the lookup table classifies as informational, not
// as an error.
func TestResolve_UnknownRawCategoryFallsBack(t *testing.T) {
	cat := testCatalog()
	codes := ProfileCodes{
		OperatorTypes: []domain.OperatorType{domain.OperatorSatellite},
		Jurisdictions: []domain.Jurisdiction{domain.JurisdictionEU},
	}

	reqs, err := Resolve(cat, codes)
	require.NoError(t, err)

	byID := map[string]DisplayCategory{}
	for _, r := range reqs {
		byID[r.ID.String()] = r.DisplayCategory
	}
	assert.Equal(t, CategoryInformational, byID["odd-1"])
	assert.Equal(t, CategorySupervision, byID["all-1"])
}

// TestResolve_CountMatchesRecursiveLeafCount is the no-loss/no-duplication
// property: with all-matching codes the resolver returns exactly the leaves.
func TestResolve_CountMatchesRecursiveLeafCount(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	codes := ProfileCodes{
		OperatorTypes: []domain.OperatorType{
			domain.OperatorSatellite, domain.OperatorConstellation,
			domain.OperatorLaunchVehicle, domain.OperatorLaunchSite,
			domain.OperatorGroundSegment, domain.OperatorSpaceData,
		},
		Jurisdictions: []domain.Jurisdiction{
			domain.JurisdictionEU, domain.JurisdictionFR,
			domain.JurisdictionUK, domain.JurisdictionLU,
		},
	}

	for _, fw := range set.Frameworks() {
		cat := set.Catalog(fw)
		leaves, err := cat.LeafCount()
		require.NoError(t, err)

		reqs, err := Resolve(cat, codes)
		require.NoError(t, err)
		assert.Len(t, reqs, leaves, "framework %s", fw)

		seen := map[domain.RequirementID]bool{}
		for _, r := range reqs {
			assert.False(t, seen[r.ID], "duplicate %s", r.ID)
			seen[r.ID] = true
		}
	}
}
