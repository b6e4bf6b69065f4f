// Package cobra implements a constraint-programming engine over discrete
// intervals: a finite-domain solver with bound-consistency propagation, a
// trailing state store for backtrackable mutation, and a depth-first
// branch-and-bound search.
//
// The package is built from four tightly coupled pieces:
//   - a trailing undo log (Trail) that records and reverses scalar
//     mutations across nested search "worlds";
//   - integer interval Variables with bound-consistent change notification;
//   - constraint propagators, unary and arithmetic, sharing a common
//     notify/ask/tell protocol;
//   - a reified exclusive-disjunction metaconstraint (Disjunction) with
//     constructive propagation, and an Optimizer that searches over
//     Variables and Disjunctions with pluggable heuristics.
//
// Every value created by this package (Variable, Interval, Constraint,
// Disjunction) is owned by a Model, which replaces process-wide registries
// with an explicit, passed-by-reference solver context. There is no global
// state; two Models never interact.
package cobra
