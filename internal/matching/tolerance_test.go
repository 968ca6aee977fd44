package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

func TestWithinTolerance_Boundaries(t *testing.T) {
	min, max := domain.Float(1_000_000), domain.Float(2_000_000)

	assert.True(t, WithinTolerance(900_000, min, max, 0.10))
	assert.False(t, WithinTolerance(899_999, min, max, 0.10))
	assert.True(t, WithinTolerance(2_200_000, min, max, 0.10))
	assert.False(t, WithinTolerance(2_200_001, min, max, 0.10))
	assert.True(t, WithinTolerance("1.500.000", min, max, 0.10))
}

func TestWithinTolerance_Unconstrained(t *testing.T) {
	for _, v := range []any{0, -3, 1e12, "abc", nil, math.NaN()} {
		assert.True(t, WithinTolerance(v, nil, nil, 0.10), "target %v", v)
	}
}

func TestWithinTolerance_SingleBound(t *testing.T) {
	assert.True(t, WithinTolerance(5_000_000, domain.Float(1_000_000), nil, 0.10))
	assert.False(t, WithinTolerance(800_000, domain.Float(1_000_000), nil, 0.10))
	assert.True(t, WithinTolerance(0, nil, domain.Float(1_000_000), 0.10))
	assert.False(t, WithinTolerance(1_200_000, nil, domain.Float(1_000_000), 0.10))
}

func TestWithinTolerance_UnparseableTargetFails(t *testing.T) {
	assert.False(t, WithinTolerance(math.NaN(), domain.Float(1), nil, 0.10))
	assert.False(t, WithinTolerance("yok", nil, domain.Float(10), 0.10))
	assert.False(t, WithinTolerance(nil, domain.Float(1), domain.Float(5), 0.10))
}

func TestWithinTolerance_NegativeBoundWidensOutward(t *testing.T) {
	assert.True(t, WithinTolerance(-1, domain.Float(-1), domain.Float(3), 0.10))
	assert.False(t, WithinTolerance(-2, domain.Float(-1), domain.Float(3), 0.10))
}

func TestWithinTolerance_ZeroRatioIsExact(t *testing.T) {
	assert.True(t, WithinTolerance(100, domain.Float(100), domain.Float(200), 0))
	assert.False(t, WithinTolerance(99, domain.Float(100), domain.Float(200), 0))
	assert.False(t, WithinTolerance(99, domain.Float(100), domain.Float(200), -0.5))
}
