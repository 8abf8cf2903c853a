package domain

import dErrors "orbita/pkg/domain-errors"

// Framework identifies one regulatory framework evaluated by the engine.
type Framework string

const (
	// FrameworkEUSpaceAct is the EU Space Act, the continental
	// space-activity statute.
	FrameworkEUSpaceAct Framework = "eu_space_act"
	// FrameworkNIS2 is the NIS2 cybersecurity directive.
	FrameworkNIS2 Framework = "nis2"
	// FrameworkFRLOS is the French Space Operations Act (LOS).
	FrameworkFRLOS Framework = "fr_los"
	// FrameworkUKSIA is the UK Space Industry Act 2018.
	FrameworkUKSIA Framework = "uk_sia"
	// FrameworkLUSpace is the Luxembourg space resources and activities law.
	FrameworkLUSpace Framework = "lu_space"
)

var validFrameworks = map[Framework]bool{
	FrameworkEUSpaceAct: true,
	FrameworkNIS2:       true,
	FrameworkFRLOS:      true,
	FrameworkUKSIA:      true,
	FrameworkLUSpace:    true,
}

// Frameworks lists all supported frameworks in evaluation order.
func Frameworks() []Framework {
	return []Framework{
		FrameworkEUSpaceAct,
		FrameworkNIS2,
		FrameworkFRLOS,
		FrameworkUKSIA,
		FrameworkLUSpace,
	}
}

// ParseFramework constructs a Framework from external input.
func ParseFramework(s string) (Framework, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "framework cannot be empty")
	}
	f := Framework(s)
	if !validFrameworks[f] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown framework %q", s)
	}
	return f, nil
}

func (f Framework) IsValid() bool {
	return validFrameworks[f]
}

func (f Framework) String() string {
	return string(f)
}
