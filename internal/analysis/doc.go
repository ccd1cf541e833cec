// Package analysis provides convergence and sensitivity tools for the
// Solow recurrence.
//
//   - [FixedPoint]: exact fixed point of the per-worker recurrence
//   - [LocalSlope]: derivative of the recurrence at that fixed point
//   - [SeparationRate]: empirical contraction rate from two nearby trajectories
//   - [Sweep]: parameter sweep of steady state and terminal capital
//   - [GeneratePhaseDiagram]: k(t+1) against k(t) with the 45-degree line
//
// # Convergence
//
// A slope with magnitude below one means nearby paths contract toward the
// fixed point; the gap shrinks by that factor every period:
//
//	slope := analysis.LocalSlope(m)
//	if math.Abs(slope) < 1 {
//	    // converges, half-life analysis.ConvergenceHalfLife(m)
//	}
package analysis
