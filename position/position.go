package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// Invalid is a position that lies outside the board.
	Invalid = Pos{x: -1, y: -1}
)

// Pos is a file/rank coordinate pair. Coordinates outside 0..7 are allowed
// and denote off-board squares.
type Pos struct {
	x, y int
}

func NewPos(x, y int) Pos {
	return Pos{x: x, y: y}
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return Invalid, err
	}
	return NewPos(x, y), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return p.NotationComponentX() + p.NotationComponentY()
}

func (p Pos) X() int {
	return p.x
}

func (p Pos) Y() int {
	return p.y
}

func (p Pos) IsValid() bool {
	return 0 <= p.x && p.x < MaxComponentScalar && 0 <= p.y && p.y < MaxComponentScalar
}

// Offset returns the position shifted by dx files and dy ranks. The result
// may be off-board.
func (p Pos) Offset(dx, dy int) Pos {
	return Pos{x: p.x + dx, y: p.y + dy}
}

func (p Pos) NotationComponentX() string {
	if p.x < 0 || MaxComponentScalar <= p.x {
		return ""
	}
	return string(rune('a' + p.x))
}

func (p Pos) NotationComponentY() string {
	if p.y < 0 || MaxComponentScalar <= p.y {
		return ""
	}
	return string(rune('1' + p.y))
}

func notationToXY(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (int, error) {
	pX := int(x) - 'a'
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToY(y byte) (int, error) {
	pY := int(y) - '1'
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}
