// Package scene loads window descriptions from TOML or YAML and builds them
// into boxflow windows.
//
// A scene has a window table, named style classes and a tree of nodes:
//
//	[window]
//	title = "Login"
//	width = 320
//	height = 200
//	style = { padding = [8, 12] }
//
//	[styles.primary]
//	background = "#0078d4"
//	color = "FFF"
//
//	[[nodes]]
//	kind = "text"
//	text = "Name"
//
//	[[nodes]]
//	id = "ok"
//	kind = "button"
//	text = "OK"
//	class = "primary"
//	style = { right = 0 }
//
// Style problems never stop a build. They are logged as warnings and the
// offending keys fall back to their defaults.
package scene
