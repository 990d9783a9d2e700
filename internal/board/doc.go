// Package board implements the chessboard grid state machine.
//
// A Board holds a rows x columns grid of option indices and a cursor.
// Actions move the cursor, rotate or clear the focused cell, or confirm
// the board. Confirmation is terminal: Values then maps every cell back to
// the caller's option value. Movement past an edge wraps only when the
// matching wrap flag is set; otherwise the cursor stays put.
package board
