package board

import "github.com/daystram/chesscore/position"

// apply plays from -> to without any legality check. Callers must have
// validated the move, as Apply and GenerateMoves do.
func (b *Board) apply(from, to position.Pos) {
	p := b.At(from)
	s := p.Side()
	captured := b.At(to)
	enPassant := b.enPassant

	b.set(to, p)
	b.set(from, Empty)

	// a captured rook cannot castle anymore
	if captured.Kind() == KindRook && to.Y() == captured.Side().HomeRank() {
		b.castleRights[captured.Side()].Revoke(rookRight(to.X()))
	}

	// remove pawn captured en passant, which sits beside the destination
	if p.Kind() == KindPawn && to == enPassant {
		b.set(position.NewPos(to.X(), from.Y()), Empty)
	}

	// update enPassant
	b.enPassant = position.Invalid
	if p.Kind() == KindPawn && abs(to.Y()-from.Y()) == 2 {
		b.enPassant = position.NewPos(from.X(), (from.Y()+to.Y())/2)
	}

	// auto-promote
	if p.Kind() == KindPawn && to.Y() == s.PromotionRank() {
		b.set(to, NewPiece(s, KindQueen))
	}

	// castling moves the rook alongside the king
	if p.Kind() == KindKing {
		if dx := to.X() - from.X(); dx == 2 || dx == -2 {
			path := castlePaths[CastleDirectionKingside]
			if dx < 0 {
				path = castlePaths[CastleDirectionQueenside]
			}
			rookFrom := position.NewPos(path.rookFrom, to.Y())
			b.set(position.NewPos(path.rookTo, to.Y()), b.At(rookFrom))
			b.set(rookFrom, Empty)
		}
		b.castleRights[s].Revoke(CastleKingAtHome)
	}

	if p.Kind() == KindRook && from.Y() == s.HomeRank() {
		b.castleRights[s].Revoke(rookRight(from.X()))
	}

	b.turn = s.Opposite()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
