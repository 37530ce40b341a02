package board

import "github.com/daystram/chesscore/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// HomeRank is the rank holding the side's king and rooks at the start.
func (s Side) HomeRank() int {
	if s == SideBlack {
		return position.Rank8
	}
	return position.Rank1
}

// PawnRank is the rank pawns may double-step from.
func (s Side) PawnRank() int {
	if s == SideBlack {
		return position.Rank7
	}
	return position.Rank2
}

// PromotionRank is the farthest rank for the side's pawns.
func (s Side) PromotionRank() int {
	if s == SideBlack {
		return position.Rank1
	}
	return position.Rank8
}

// Forward is the rank direction the side's pawns advance in.
func (s Side) Forward() int {
	if s == SideBlack {
		return -1
	}
	return 1
}
