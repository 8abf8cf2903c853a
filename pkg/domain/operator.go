package domain

import dErrors "orbita/pkg/domain-errors"

// OperatorType classifies what kind of space actor an operator is. Catalog
// applicability predicates match against these codes.
type OperatorType string

const (
	OperatorSatellite     OperatorType = "satellite_operator"
	OperatorConstellation OperatorType = "constellation_operator"
	OperatorLaunchVehicle OperatorType = "launch_vehicle_operator"
	OperatorLaunchSite    OperatorType = "launch_site_operator"
	OperatorGroundSegment OperatorType = "ground_segment_provider"
	OperatorSpaceData     OperatorType = "space_data_provider"
)

var validOperatorTypes = map[OperatorType]bool{
	OperatorSatellite:     true,
	OperatorConstellation: true,
	OperatorLaunchVehicle: true,
	OperatorLaunchSite:    true,
	OperatorGroundSegment: true,
	OperatorSpaceData:     true,
}

// ParseOperatorType constructs an OperatorType from external input.
func ParseOperatorType(s string) (OperatorType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "operator type cannot be empty")
	}
	t := OperatorType(s)
	if !validOperatorTypes[t] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown operator type %q", s)
	}
	return t, nil
}

func (t OperatorType) IsValid() bool {
	return validOperatorTypes[t]
}

func (t OperatorType) String() string {
	return string(t)
}

// ActivityType classifies the space activities an operator conducts.
type ActivityType string

const (
	ActivitySatelliteOperation ActivityType = "satellite_operation"
	ActivityLaunch             ActivityType = "launch"
	ActivityReentry            ActivityType = "reentry"
	ActivityGroundStation      ActivityType = "ground_station"
	ActivitySpaceDataService   ActivityType = "space_data_service"
	ActivityInOrbitServicing   ActivityType = "in_orbit_servicing"
)

var validActivityTypes = map[ActivityType]bool{
	ActivitySatelliteOperation: true,
	ActivityLaunch:             true,
	ActivityReentry:            true,
	ActivityGroundStation:      true,
	ActivitySpaceDataService:   true,
	ActivityInOrbitServicing:   true,
}

// ParseActivityType constructs an ActivityType from external input.
func ParseActivityType(s string) (ActivityType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "activity type cannot be empty")
	}
	t := ActivityType(s)
	if !validActivityTypes[t] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown activity type %q", s)
	}
	return t, nil
}

func (t ActivityType) IsValid() bool {
	return validActivityTypes[t]
}

func (t ActivityType) String() string {
	return string(t)
}
