// Package dynamo provides the simulation primitives for discrete-time
// growth recurrences.
//
// The package defines the interfaces and types used to drive a model
// forward and observe it:
//
//   - [System]: a one-dimensional recurrence with a closed-form steady state
//   - [Metric]: accumulates a scalar over a run
//   - [Observer]: receives every observed value
//   - [Simulator]: runs one system for a fixed number of periods
//   - [Ensemble]: runs independent systems concurrently
//
// # Example
//
//	m := solow.New(solow.WithCapital(8.0))
//	s := dynamo.New(logger)
//	result, _ := s.Run(ctx, m, dynamo.DefaultConfig())
//
// # Thread Safety
//
// Simulator runs mutate the system they are given. A system must not be
// shared between concurrent runs; [Ensemble] requires distinct instances.
package dynamo
