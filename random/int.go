package random

import (
	"golang.org/x/exp/constraints"
)

// InsecureInt returns a deterministic pseudo random integer in [0, max).
func InsecureInt[T constraints.Integer](max T) (n T) {
	return T(insecureSrc.Int64N(int64(max)))
}

// InsecureIntBetween returns a deterministic pseudo random integer in
// [min, max).
func InsecureIntBetween[T constraints.Integer](min, max T) (n T) {
	return min + InsecureInt(max-min)
}
