package cost

import (
	"math"

	"go.uber.org/zap/zapcore"
)

// tinyPositive is the sentinel a Cost is clamped to in place of a
// non-positive value, per spec.md §4.4's "strictly-positive enforcement"
// guarantee. Small enough not to distort real-edge costs, large enough
// that summing millions of edges does not underflow to zero.
const tinyPositive = 1e-9

// Cost is a non-negative scalar with a total order: NaN is refused at
// construction (spec.md §4.4's ordering contract), so every Cost value in
// circulation can always be compared with plain <.
type Cost float64

// Zero is the identity cost, used to seed a search's source label.
const Zero Cost = 0

// New constructs a Cost, returning ErrNaNCost if value is NaN.
func New(value float64) (Cost, error) {
	if math.IsNaN(value) {
		return 0, ErrNaNCost
	}
	return Cost(value), nil
}

// ClampPositive replaces a non-positive Cost with tinyPositive, avoiding
// the degenerate zero-cost cycles spec.md §9 warns label-setting search
// is not correct under.
func ClampPositive(c Cost) Cost {
	if c <= 0 {
		return tinyPositive
	}
	return c
}

// ClampNonNegative replaces a negative Cost with Zero, used in contexts
// (e.g. a regenerative-braking energy delta) where zero cost is a
// meaningful, non-degenerate outcome.
func ClampNonNegative(c Cost) Cost {
	if c < 0 {
		return Zero
	}
	return c
}

// Add returns a + b.
func (a Cost) Add(b Cost) Cost { return a + b }

// Mul returns a * b.
func (a Cost) Mul(b Cost) Cost { return a * b }

// Float64 returns the underlying value.
func (c Cost) Float64() float64 { return float64(c) }

// MarshalLogObject implements zapcore.ObjectMarshaler so a Cost can be
// logged structurally via zap.Object, including whether it was clamped
// from a non-positive raw value (spec.md §9's "detects and logs clamp
// events" debug mode).
func (c Cost) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("value", float64(c))
	enc.AddBool("clamped", float64(c) == tinyPositive)
	return nil
}

// ReverseCost wraps Cost with inverted ordering, so a container/heap
// min-heap keyed by ReverseCost pops the lowest Cost first (spec.md §3's
// "Frontier" row: "ordering: lowest cost first (min-heap via reversed
// compare)").
type ReverseCost Cost

// Less reports whether r orders before other, i.e. whether r's underlying
// Cost is greater than other's (the inversion).
func (r ReverseCost) Less(other ReverseCost) bool {
	return Cost(r) > Cost(other)
}
