// Package termhost is a boxflow host that renders native controls into a grid
// of terminal cells.
//
// Every control created through the host is kept in a handle table. Rendering
// walks the table from a window down, painting backgrounds, borders and text
// into a [Buffer]. Rects are interpreted as cells, so layouts are usually
// measured with [measure.Cells].
package termhost
