// Package layout implements the box-flow layout math used by boxflow.
//
// It resolves a [Style] against a parent [Frame] and the previous sibling's
// [Frame] into an absolute [Rect]. Sizes may be absolute pixels or fractions
// of the available space, and padding/margin use CSS shorthand expansion.
// Types are re-exported through the root boxflow package for public consumption.
//
// The main entry point is [Calculate]. It is a pure function: the same inputs
// always produce the same rectangle, so a flow pass can be discarded and re-run
// on every parent resize.
package layout
