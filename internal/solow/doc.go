// Package solow implements the discrete-time Solow growth model.
//
// A [Model] holds the fixed parameters of one economy and its current
// capital stock per effective worker. Each period capital evolves by
//
//	k' = (s·z·k^alpha + (1-delta)·k) / (1-n)
//
// and converges, for parameters in the usual ranges, to the fixed point
//
//	k* = (s·z / (n+delta))^(1/(1-alpha))
//
// [Generate] samples the capital stock over a fixed horizon.
//
// # Degenerate Parameters
//
// Nothing is validated. Parameters such as n=1, alpha=1 or n+delta=0 yield
// IEEE-754 infinities or NaN instead of errors. Callers that want explicit
// checks can use [Model.Validate].
package solow
