// Package panels contains the six clinic panels and the pane host they are
// built from.
//
// Allowed here:
// - panel definitions, their literal datasets and layouts
// - pane types and pane host focus/jump behavior
//
// Not allowed here:
// - app-wide routing, key registry ownership or overlay screens
// - data loading of any kind; every value shown is a literal
package panels
