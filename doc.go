// Package tally implements a reversible arithmetic accumulator built around
// the command pattern. It couples a single floating-point accumulator, a
// linear undo/redo history, and an in-process transition hub into a library
// that can be embedded into interactive front ends.
//
// Typical usage looks like:
//   - Create a Tally with configuration
//   - Call Compute with an operator symbol and an operand
//   - Call Undo and Redo to walk the history
//   - Consume Transitions from the TransitionHub or query Value directly
//
// The examples/ directory contains a runnable calculator walkthrough that
// exercises the API in a small domain.
package tally
