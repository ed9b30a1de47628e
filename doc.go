// Package boxflow is a retained-mode box layout engine.
//
// A [Window] owns an ordered list of nodes ([Button], [Text], [Panel]). Each
// node carries a [Style] and resolves its own [Rect] from the rect of the
// sibling before it and the rect of its container. Native resources are owned
// by a [Host], which measures text, creates controls and receives every
// resolved rect.
//
// Users import this single package for the public API: layout types, style
// parsing, nodes and windows.
package boxflow
