package board

type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing

	kindOffBoard
)

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

// Piece is the content of a single square: a side and a kind. The zero
// value is an empty square.
type Piece struct {
	side Side
	kind Kind
}

var (
	Empty = Piece{}

	// OffBoard is read for any coordinate outside the board. It is neither
	// empty nor owned by a side, so rays stop on it and never capture it.
	OffBoard = Piece{kind: kindOffBoard}
)

func NewPiece(s Side, k Kind) Piece {
	if s == SideUnknown || k == KindUnknown || k == kindOffBoard {
		return Empty
	}
	return Piece{side: s, kind: k}
}

func (p Piece) Side() Side {
	return p.side
}

func (p Piece) Kind() Kind {
	if p.kind == kindOffBoard {
		return KindUnknown
	}
	return p.kind
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

func (p Piece) IsOffBoard() bool {
	return p == OffBoard
}

// IsEnemyOf reports whether p is a piece owned by the opponent of s.
func (p Piece) IsEnemyOf(s Side) bool {
	return p.side != SideUnknown && p.side == s.Opposite()
}

// IsEmptyOrEnemyOf reports whether a piece of side s may land on p.
func (p Piece) IsEmptyOrEnemyOf(s Side) bool {
	return p.IsEmpty() || p.IsEnemyOf(s)
}

func (p Piece) String() string {
	if p.IsEmpty() || p.IsOffBoard() {
		return ""
	}
	return p.side.String() + " " + p.kind.Name()
}

func (p Piece) SymbolLetter() string {
	var sym rune
	switch p.kind {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if p.side == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(invert bool) string {
	s := p.side
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p.kind {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p.kind {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}
