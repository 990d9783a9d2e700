// Package app provides the Bubble Tea model that hosts a chessboard prompt.
//
// It owns the board for one session, maps key presses onto board actions,
// runs mount-time validation, and renders every frame through package ui.
// Confirming the board quits the program; Result then returns the grid of
// option values.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View). Run wraps it in a tea.Program.
package app
