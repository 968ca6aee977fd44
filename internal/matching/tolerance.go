package matching

import (
	"math"
)

// DefaultTolerance widens every requested numeric band by 10%.
const DefaultTolerance = 0.10

// WithinTolerance reports whether target lies inside [min, max] after each
// present bound is pushed outward by ratio of its magnitude. A nil bound is
// open on that side. With no bounds at all the target is not inspected;
// otherwise a target that does not coerce to a finite number fails.
func WithinTolerance(target any, min, max *float64, ratio float64) bool {
	if min == nil && max == nil {
		return true
	}
	v := ToNumber(target, math.NaN())
	if math.IsNaN(v) {
		return false
	}
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if min != nil && v < *min-math.Abs(*min)*ratio {
		return false
	}
	if max != nil && v > *max+math.Abs(*max)*ratio {
		return false
	}
	return true
}

func hasBound(min, max *float64) bool {
	return min != nil || max != nil
}
