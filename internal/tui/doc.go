// Package tui runs a labeling session in the terminal.
//
// It is the session controller: BubbleTea delivers key and mouse
// messages, the model turns them into engine events (synthesizing
// double-clicks, which terminals do not report), and the renderer
// repaints the linked views when the engine asks for it.
//
// Component architecture:
//
//	model.go:   root model, input routing, navigation, Init/Update/View
//	header.go:  top bar with point counts, footer with status and hints
//	theme.go:   header/footer styles
//	helpers.go: double-click tracker
package tui
