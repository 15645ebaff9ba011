// Package game holds the board model and the move rules for a two-player game
// played with knights and bishops on a rectangular grid.
//
// Coordinates run x in [0,height) and y in [0,width). Validation returns a
// MoveError verdict; board bookkeeping problems are returned as wrapped
// sentinel errors and indicate a bug rather than an illegal move.
package game
