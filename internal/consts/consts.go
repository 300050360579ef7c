// Package consts holds the fixed numeric thresholds the solver's behavioral
// models and linear algebra are specified against. Apart from DefaultMaxIter
// and DefaultTol, which the CLI exposes as flag defaults, none of these are
// tuning knobs: they come from the device margins and pivoting rules the
// solver is built to.
package consts

const (
	// GroundNode is the reserved node id for the ground net.
	GroundNode = "0"

	// LEDHysteresis is the dead-band (volts) around Vf used when deciding
	// whether an LED stays on or off between outer iterations.
	LEDHysteresis = 0.1

	// ComparatorMargin is the LM339 input dead-band (volts).
	ComparatorMargin = 1e-3

	// LogicVILFactor and LogicVIHFactor scale a gate's own VCC pin
	// voltage into its low/high input thresholds.
	LogicVILFactor = 0.3
	LogicVIHFactor = 0.7

	// FloatingNodeShunt is the conductance (siemens) stamped to ground on
	// any node left with no coupling after assembly.
	FloatingNodeShunt = 1e-12

	// PivotThreshold is the minimum pivot magnitude LinAlg accepts before
	// declaring a matrix singular.
	PivotThreshold = 1e-15

	// TikhonovEps is the diagonal regularization added on retry after a
	// singular first solve.
	TikhonovEps = 1e-9

	// DefaultMaxIter and DefaultTol are the solver's default outer-loop
	// budget and convergence tolerance (volts).
	DefaultMaxIter = 100
	DefaultTol     = 1e-3
)
