package board

import "github.com/daystram/chesscore/position"

type offset struct {
	dx, dy int
}

var (
	offsetsKnight = [8]offset{
		{-2, -1}, {-2, +1}, {+2, -1}, {+2, +1},
		{-1, -2}, {-1, +2}, {+1, -2}, {+1, +2},
	}
	offsetsKing = [8]offset{
		{-1, -1}, {-1, 0}, {-1, +1},
		{0, -1}, {0, +1},
		{+1, -1}, {+1, 0}, {+1, +1},
	}
	directionsLateral  = [4]offset{{0, -1}, {0, +1}, {-1, 0}, {+1, 0}}
	directionsDiagonal = [4]offset{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// genPseudoLegal appends the destinations of the piece on from to dst. The
// generated moves may leave the mover's own king in check.
func (b *Board) genPseudoLegal(dst []position.Pos, from position.Pos) []position.Pos {
	p := b.At(from)
	switch p.Kind() {
	case KindPawn:
		return b.genPawn(dst, p.Side(), from)
	case KindKnight:
		return b.genSteps(dst, p.Side(), from, offsetsKnight[:])
	case KindRook:
		return b.genRays(dst, p.Side(), from, directionsLateral[:])
	case KindBishop:
		return b.genRays(dst, p.Side(), from, directionsDiagonal[:])
	case KindQueen:
		dst = b.genRays(dst, p.Side(), from, directionsLateral[:])
		return b.genRays(dst, p.Side(), from, directionsDiagonal[:])
	case KindKing:
		dst = b.genSteps(dst, p.Side(), from, offsetsKing[:])
		return b.genCastling(dst, p.Side(), from)
	default:
		return dst
	}
}

func (b *Board) genPawn(dst []position.Pos, s Side, from position.Pos) []position.Pos {
	dir := s.Forward()
	if one := from.Offset(0, dir); b.At(one).IsEmpty() {
		dst = append(dst, one)
		if two := from.Offset(0, 2*dir); from.Y() == s.PawnRank() && b.At(two).IsEmpty() {
			dst = append(dst, two)
		}
	}
	for _, dx := range [2]int{-1, +1} {
		to := from.Offset(dx, dir)
		if b.At(to).IsEnemyOf(s) || b.isEnPassantFor(s, to) {
			dst = append(dst, to)
		}
	}
	return dst
}

// isEnPassantFor reports whether a pawn of side s may capture onto pos en
// passant. The target must have been left by an opponent's double step.
func (b *Board) isEnPassantFor(s Side, pos position.Pos) bool {
	if !pos.IsValid() || pos != b.enPassant {
		return false
	}
	opp := s.Opposite()
	return pos.Y() == opp.PawnRank()+opp.Forward()
}

func (b *Board) genSteps(dst []position.Pos, s Side, from position.Pos, offsets []offset) []position.Pos {
	for _, o := range offsets {
		to := from.Offset(o.dx, o.dy)
		if b.At(to).IsEmptyOrEnemyOf(s) {
			dst = append(dst, to)
		}
	}
	return dst
}

func (b *Board) genRays(dst []position.Pos, s Side, from position.Pos, directions []offset) []position.Pos {
	for _, d := range directions {
		// OffBoard is never empty, so every ray ends at the edge at the latest.
		to := from.Offset(d.dx, d.dy)
		for ; b.At(to).IsEmpty(); to = to.Offset(d.dx, d.dy) {
			dst = append(dst, to)
		}
		if b.At(to).IsEnemyOf(s) {
			dst = append(dst, to)
		}
	}
	return dst
}

func (b *Board) genCastling(dst []position.Pos, s Side, from position.Pos) []position.Pos {
	rank := s.HomeRank()
	rights := b.castleRights[s]
	if from != position.NewPos(position.FileE, rank) || !rights.IsAnyAllowed() {
		return dst
	}

	var opponentAttacks *AttackMap
	for _, d := range [2]CastleDirection{CastleDirectionKingside, CastleDirectionQueenside} {
		path := castlePaths[d]
		if !rights.IsAllowed(d) || b.At(position.NewPos(path.rookFrom, rank)) != NewPiece(s, KindRook) {
			continue
		}
		if !b.filesEmpty(rank, path.empty) {
			continue
		}
		if opponentAttacks == nil {
			attacks := NewAttackMap(b, s.Opposite())
			opponentAttacks = &attacks
		}
		if opponentAttacks.anyAttacked(rank, path.safe) {
			continue
		}
		dst = append(dst, position.NewPos(path.kingTo, rank))
	}
	return dst
}

func (b *Board) filesEmpty(rank int, files []int) bool {
	for _, x := range files {
		if !b.At(position.NewPos(x, rank)).IsEmpty() {
			return false
		}
	}
	return true
}
