// Package scoring aggregates requirement statuses into weighted scores, a
// letter grade, a coarse compliance state, and a risk level.
package scoring

import (
	"math"

	"orbita/internal/catalog"
	"orbita/pkg/domain"
	dErrors "orbita/pkg/domain-errors"
)

// weightEpsilon is the tolerance when checking that a breakdown's weights
// sum to one.
const weightEpsilon = 1e-9

// Weights assigns relative importance to display categories within one
// framework. Weights must sum to 1 within weightEpsilon; categories absent
// from the table (notably informational) carry no weight and are excluded
// from the breakdown.
type Weights map[catalog.DisplayCategory]float64

// Validate checks the sum-to-one invariant.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "weight table is empty")
	}
	sum := 0.0
	for c, v := range w {
		if v < 0 {
			return dErrors.Newf(dErrors.CodeInvariantViolation, "negative weight for category %s", c)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > weightEpsilon {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "weights sum to %g, want 1.0", sum)
	}
	return nil
}

// defaultWeights is the per-framework weight configuration, tailored to the
// categories each framework's catalog actually populates.
var defaultWeights = map[domain.Framework]Weights{
	domain.FrameworkEUSpaceAct: {
		catalog.CategoryAuthorization: 0.25,
		catalog.CategorySafety:        0.30,
		catalog.CategoryCybersecurity: 0.25,
		catalog.CategoryEnvironment:   0.10,
		catalog.CategorySupervision:   0.10,
	},
	domain.FrameworkNIS2: {
		catalog.CategoryCybersecurity: 0.60,
		catalog.CategorySupervision:   0.30,
		catalog.CategoryAuthorization: 0.10,
	},
	domain.FrameworkFRLOS: {
		catalog.CategoryAuthorization: 0.40,
		catalog.CategorySafety:        0.35,
		catalog.CategorySupervision:   0.25,
	},
	domain.FrameworkUKSIA: {
		catalog.CategoryAuthorization: 0.35,
		catalog.CategorySafety:        0.35,
		catalog.CategoryCybersecurity: 0.15,
		catalog.CategorySupervision:   0.15,
	},
	domain.FrameworkLUSpace: {
		catalog.CategoryAuthorization: 0.50,
		catalog.CategorySupervision:   0.50,
	},
}

// DefaultWeights returns the validated weight table for a framework. The
// tables are immutable configuration: loaded once, shared by reference.
func DefaultWeights(f domain.Framework) (Weights, error) {
	w, ok := defaultWeights[f]
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "no weight table for framework %s", f)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
