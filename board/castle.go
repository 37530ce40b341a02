package board

import "github.com/daystram/chesscore/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionKingside
	CastleDirectionQueenside
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionKingside:
		return "0-0"
	case CastleDirectionQueenside:
		return "0-0-0"
	default:
		return ""
	}
}

// CastleRights tracks, for one side, whether the king and each rook are
// still on their home squares. Bits are only ever cleared.
type CastleRights uint8

const (
	CastleKingAtHome CastleRights = 1 << iota
	CastleKingRookAtHome
	CastleQueenRookAtHome

	CastleRightsAll = CastleKingAtHome | CastleKingRookAtHome | CastleQueenRookAtHome
)

var maskCastleRights = [3]CastleRights{
	CastleDirectionKingside:  CastleKingAtHome | CastleKingRookAtHome,
	CastleDirectionQueenside: CastleKingAtHome | CastleQueenRookAtHome,
}

func (c *CastleRights) Revoke(r CastleRights) {
	*c &^= r
}

func (c CastleRights) Has(r CastleRights) bool {
	return c&r == r
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	if d == CastleDirectionUnknown {
		return false
	}
	return c.Has(maskCastleRights[d])
}

func (c CastleRights) IsAnyAllowed() bool {
	return c.IsAllowed(CastleDirectionKingside) || c.IsAllowed(CastleDirectionQueenside)
}

// castlePath describes the squares involved in castling toward one rook.
type castlePath struct {
	rookFrom, rookTo int
	kingTo           int
	empty            []int // files between king and rook
	safe             []int // files the king starts on, crosses, and lands on
}

var castlePaths = [3]castlePath{
	CastleDirectionKingside: {
		rookFrom: position.FileH,
		rookTo:   position.FileF,
		kingTo:   position.FileG,
		empty:    []int{position.FileF, position.FileG},
		safe:     []int{position.FileE, position.FileF, position.FileG},
	},
	CastleDirectionQueenside: {
		rookFrom: position.FileA,
		rookTo:   position.FileD,
		kingTo:   position.FileC,
		empty:    []int{position.FileB, position.FileC, position.FileD},
		safe:     []int{position.FileE, position.FileD, position.FileC},
	},
}

// rookRight maps a rook's home file to the right lost when it leaves.
func rookRight(file int) CastleRights {
	switch file {
	case position.FileH:
		return CastleKingRookAtHome
	case position.FileA:
		return CastleQueenRookAtHome
	default:
		return 0
	}
}
