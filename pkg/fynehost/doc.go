// Package fynehost hosts boxflow windows as Fyne windows.
//
// Every control is placed in a container without a layout, so boxflow is the
// only thing that positions anything. Window client areas report resizes
// back through boxflow.ResizeNotifier.
//
// Fyne expects UI calls on its own goroutine. Build and open windows before
// running the app, and call Window methods from Fyne callbacks afterwards.
package fynehost
