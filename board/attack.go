package board

import "github.com/daystram/chesscore/position"

// AttackMap marks every square controlled by one side, regardless of whose
// turn it is and of whether the attacking move would be legal.
type AttackMap struct {
	side    Side
	squares [Height][Width]bool
}

// NewAttackMap builds the attack map of side s on b.
func NewAttackMap(b *Board, s Side) AttackMap {
	m := AttackMap{side: s}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.grid[y][x].Side() != s {
				continue
			}
			m.markPiece(b, position.NewPos(x, y), b.grid[y][x].Kind())
		}
	}
	return m
}

func (m *AttackMap) markPiece(b *Board, from position.Pos, k Kind) {
	switch k {
	case KindPawn:
		// forward pawn moves never attack
		m.mark(from.Offset(-1, m.side.Forward()))
		m.mark(from.Offset(+1, m.side.Forward()))
	case KindKnight:
		m.markSteps(from, offsetsKnight[:])
	case KindKing:
		m.markSteps(from, offsetsKing[:])
	case KindRook:
		m.markRays(b, from, directionsLateral[:])
	case KindBishop:
		m.markRays(b, from, directionsDiagonal[:])
	case KindQueen:
		m.markRays(b, from, directionsLateral[:])
		m.markRays(b, from, directionsDiagonal[:])
	}
}

func (m *AttackMap) markSteps(from position.Pos, offsets []offset) {
	for _, o := range offsets {
		m.mark(from.Offset(o.dx, o.dy))
	}
}

// markRays includes the first blocker whatever its side: a defended piece is
// still attacked.
func (m *AttackMap) markRays(b *Board, from position.Pos, directions []offset) {
	for _, d := range directions {
		to := from.Offset(d.dx, d.dy)
		for ; b.At(to).IsEmpty(); to = to.Offset(d.dx, d.dy) {
			m.mark(to)
		}
		m.mark(to)
	}
}

func (m *AttackMap) mark(pos position.Pos) {
	if pos.IsValid() {
		m.squares[pos.Y()][pos.X()] = true
	}
}

func (m *AttackMap) Side() Side {
	return m.side
}

// IsAttacked reports whether pos is controlled. Off-board squares never are.
func (m *AttackMap) IsAttacked(pos position.Pos) bool {
	return pos.IsValid() && m.squares[pos.Y()][pos.X()]
}

// Count returns the number of controlled squares.
func (m *AttackMap) Count() int {
	var n int
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if m.squares[y][x] {
				n++
			}
		}
	}
	return n
}

func (m *AttackMap) anyAttacked(rank int, files []int) bool {
	for _, x := range files {
		if m.IsAttacked(position.NewPos(x, rank)) {
			return true
		}
	}
	return false
}
