// Package core defines the abstract syntax tree of the timelang DSL.
//
// Every node is an immutable value type: nodes never point into each other,
// so two nodes are equal exactly when == says so, and a parsed tree can be
// copied freely between goroutines. Tagged unions from the grammar are
// sealed interfaces (TimeExpression, PointInTime, AbsoluteTime,
// RelativeTime, Anchor) implemented only by types in this package.
//
// The tree is purely syntactic. "3 days ago" is a Directional value holding
// a Duration and the Ago direction; turning it into a timestamp requires a
// reference instant and calendar rules that live outside this package.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
package core
