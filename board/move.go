package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

// MaxPieceMoves is the most destinations a single piece can have: a queen on
// an open board plus both castling options.
const MaxPieceMoves = 27 + 2

type Move struct {
	From, To position.Pos
	Piece    Piece

	// Promotion is KindQueen when the move carries a pawn to its last rank,
	// and KindUnknown otherwise.
	Promotion Kind
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) IsPromote() bool {
	return m.Promotion != KindUnknown
}

// IsCastle reports the castling direction of a two-file king move.
func (m Move) IsCastle() CastleDirection {
	if m.Piece.Kind() != KindKing {
		return CastleDirectionUnknown
	}
	switch m.To.X() - m.From.X() {
	case 2:
		return CastleDirectionKingside
	case -2:
		return CastleDirectionQueenside
	default:
		return CastleDirectionUnknown
	}
}

// UCI returns the coordinate form of the move, e.g. e2e4 or e7e8q.
func (m Move) UCI() string {
	s := m.From.Notation() + m.To.Notation()
	if m.IsPromote() {
		s += "q"
	}
	return s
}

// ParseMove parses the coordinate form produced by Move.UCI. Only queen
// promotion suffixes are accepted. The returned move carries no piece, so
// whether the suffix fits the move is checked by Board.ApplyMove.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if len(s) == 5 && s[4] != 'q' {
		return Move{}, fmt.Errorf("%w: unsupported promotion %q", ErrInvalidMove, s[4:])
	}
	from, err := position.NewPosFromNotation(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := position.NewPosFromNotation(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		mv.Promotion = KindQueen
	}
	return mv, nil
}
