// Package domain holds the aggregates shared between the engine modules.
package domain

import (
	pkgdomain "orbita/pkg/domain"
	dErrors "orbita/pkg/domain-errors"
)

// OperatorProfile is the immutable snapshot of an operator that one
// assessment run evaluates. Upstream intake validates and creates it; the
// engines only read it.
type OperatorProfile struct {
	Name                 string                   `json:"name"`
	OperatorTypes        []pkgdomain.OperatorType `json:"operator_types"`
	ActivityTypes        []pkgdomain.ActivityType `json:"activity_types"`
	Jurisdictions        []pkgdomain.Jurisdiction `json:"jurisdictions"`
	EstablishmentCountry string                   `json:"establishment_country,omitempty"`
	Size                 pkgdomain.SizeCategory   `json:"size"`
	Orbit                pkgdomain.OrbitRegime    `json:"orbit"`
	SatelliteCount       int                      `json:"satellite_count"`

	// Capability flags.
	Maneuverable          bool `json:"maneuverable"`
	ConstellationOperator bool `json:"constellation_operator"`
	// ProvidesEssentialServices marks operators whose space services are
	// designated critical infrastructure by a member state.
	ProvidesEssentialServices bool `json:"provides_essential_services"`
}

// Validate rejects malformed or incomplete profiles. Unknown enum values
// are an error, never a silent default: a wrongly-bucketed operator would get
// a wrongly-scoped assessment.
func (p OperatorProfile) Validate() error {
	if p.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "profile is missing operator name")
	}
	if len(p.OperatorTypes) == 0 {
		return dErrors.New(dErrors.CodeValidation, "profile declares no operator types")
	}
	for _, t := range p.OperatorTypes {
		if !t.IsValid() {
			return dErrors.Newf(dErrors.CodeValidation, "unknown operator type %q", t)
		}
	}
	for _, a := range p.ActivityTypes {
		if !a.IsValid() {
			return dErrors.Newf(dErrors.CodeValidation, "unknown activity type %q", a)
		}
	}
	if len(p.Jurisdictions) == 0 {
		return dErrors.New(dErrors.CodeValidation, "profile declares no jurisdictions")
	}
	for _, j := range p.Jurisdictions {
		if !j.IsValid() {
			return dErrors.Newf(dErrors.CodeValidation, "unknown jurisdiction %q", j)
		}
	}
	if !p.Size.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "unknown size category %q", p.Size)
	}
	if !p.Orbit.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "unknown orbit regime %q", p.Orbit)
	}
	if p.SatelliteCount < 0 {
		return dErrors.New(dErrors.CodeValidation, "satellite count cannot be negative")
	}
	return nil
}

// HasOperatorType reports whether the profile carries the given type.
func (p OperatorProfile) HasOperatorType(t pkgdomain.OperatorType) bool {
	for _, have := range p.OperatorTypes {
		if have == t {
			return true
		}
	}
	return false
}

// HasActivity reports whether the profile conducts the given activity.
func (p OperatorProfile) HasActivity(a pkgdomain.ActivityType) bool {
	for _, have := range p.ActivityTypes {
		if have == a {
			return true
		}
	}
	return false
}

// InJurisdiction reports whether the profile is supervised in the given
// jurisdiction.
func (p OperatorProfile) InJurisdiction(j pkgdomain.Jurisdiction) bool {
	for _, have := range p.Jurisdictions {
		if have == j {
			return true
		}
	}
	return false
}
