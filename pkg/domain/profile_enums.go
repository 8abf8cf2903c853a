package domain

import dErrors "orbita/pkg/domain-errors"

// SizeCategory buckets operators by organisational size. NIS2 classification
// depends on it (the size-cap rule).
type SizeCategory string

const (
	SizeMicro  SizeCategory = "micro"
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

var validSizeCategories = map[SizeCategory]bool{
	SizeMicro:  true,
	SizeSmall:  true,
	SizeMedium: true,
	SizeLarge:  true,
}

// ParseSizeCategory constructs a SizeCategory from external input.
func ParseSizeCategory(s string) (SizeCategory, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "size category cannot be empty")
	}
	c := SizeCategory(s)
	if !validSizeCategories[c] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown size category %q", s)
	}
	return c, nil
}

func (c SizeCategory) IsValid() bool {
	return validSizeCategories[c]
}

// AtLeast reports whether c is the same size as other or larger.
func (c SizeCategory) AtLeast(other SizeCategory) bool {
	return sizeRank[c] >= sizeRank[other]
}

var sizeRank = map[SizeCategory]int{
	SizeMicro:  0,
	SizeSmall:  1,
	SizeMedium: 2,
	SizeLarge:  3,
}

func (c SizeCategory) String() string {
	return string(c)
}

// OrbitRegime identifies where an operator's spacecraft fly. Empty is valid
// for purely ground-based operators.
type OrbitRegime string

const (
	OrbitNone OrbitRegime = ""
	OrbitLEO  OrbitRegime = "leo"
	OrbitMEO  OrbitRegime = "meo"
	OrbitGEO  OrbitRegime = "geo"
	OrbitHEO  OrbitRegime = "heo"
)

var validOrbitRegimes = map[OrbitRegime]bool{
	OrbitNone: true,
	OrbitLEO:  true,
	OrbitMEO:  true,
	OrbitGEO:  true,
	OrbitHEO:  true,
}

// ParseOrbitRegime constructs an OrbitRegime from external input. The empty
// string is accepted and means "no orbital assets".
func ParseOrbitRegime(s string) (OrbitRegime, error) {
	r := OrbitRegime(s)
	if !validOrbitRegimes[r] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown orbit regime %q", s)
	}
	return r, nil
}

func (r OrbitRegime) IsValid() bool {
	return validOrbitRegimes[r]
}

func (r OrbitRegime) String() string {
	return string(r)
}
