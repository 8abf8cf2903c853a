package domain

import dErrors "orbita/pkg/domain-errors"

// Jurisdiction identifies a supervising authority's territory. Catalog
// applicability predicates and per-authority weight tables key on these codes.
type Jurisdiction string

const (
	JurisdictionEU Jurisdiction = "eu"
	JurisdictionFR Jurisdiction = "fr"
	JurisdictionUK Jurisdiction = "uk"
	JurisdictionLU Jurisdiction = "lu"
)

var validJurisdictions = map[Jurisdiction]bool{
	JurisdictionEU: true,
	JurisdictionFR: true,
	JurisdictionUK: true,
	JurisdictionLU: true,
}

// ParseJurisdiction constructs a Jurisdiction from external input.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "jurisdiction cannot be empty")
	}
	j := Jurisdiction(s)
	if !validJurisdictions[j] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown jurisdiction %q", s)
	}
	return j, nil
}

func (j Jurisdiction) IsValid() bool {
	return validJurisdictions[j]
}

func (j Jurisdiction) String() string {
	return string(j)
}
