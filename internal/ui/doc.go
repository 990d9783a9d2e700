// Package ui provides rendering functions for the chessboard prompt.
//
// Render takes RenderParams and produces one frame: the prompt line, the
// help line, the board table and the options legend. Rendering is pure
// (no side effects) and separated from the board state machine, which
// lives in package board.
package ui
