// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, bars, popup overlay compositor)
//
// Not allowed here:
// - key handling, selector state, scope logic, or panel policy
package widgets
