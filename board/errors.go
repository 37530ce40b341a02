package board

import "errors"

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrEmptySquare     = errors.New("empty square")
	ErrWrongTurn       = errors.New("wrong turn")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidPiece    = errors.New("invalid piece")
	ErrInvalidSide     = errors.New("invalid side")

	// ErrKingNotFound and ErrMultipleKings are returned when a side does not
	// have exactly one king, in which case check cannot be decided.
	ErrKingNotFound  = errors.New("king not found")
	ErrMultipleKings = errors.New("multiple kings")
)
