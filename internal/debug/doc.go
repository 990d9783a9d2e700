// Package debug provides debug logging functionality for chessboard.
//
// When enabled via the --debug flag, it logs key handling, board
// transitions and mount-time warnings to a file, so the terminal the
// prompt draws on stays clean.
package debug
