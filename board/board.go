package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var startingRank = [Width]Kind{
	KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook,
}

// Board holds a position as an 8x8 grid along with the side to move, the
// castling rights and the en passant target. A Board must not be used by
// multiple goroutines at once; Clone yields independent copies.
type Board struct {
	grid         [Height][Width]Piece
	turn         Side
	castleRights [2 + 1]CastleRights
	enPassant    position.Pos
}

type boardConfig struct {
	placement    map[position.Pos]Piece
	turn         Side
	castleRights *[2 + 1]CastleRights
	enPassant    position.Pos
}

type BoardOption func(*boardConfig)

// WithPlacement replaces the starting layout with the given pieces. Unless
// WithCastleRights is also given, castling rights are derived from which
// kings and rooks stand on their home squares.
func WithPlacement(placement map[position.Pos]Piece) BoardOption {
	return func(cfg *boardConfig) {
		cfg.placement = placement
	}
}

func WithTurn(s Side) BoardOption {
	return func(cfg *boardConfig) {
		cfg.turn = s
	}
}

func WithCastleRights(white, black CastleRights) BoardOption {
	return func(cfg *boardConfig) {
		cfg.castleRights = &[2 + 1]CastleRights{SideWhite: white, SideBlack: black}
	}
}

func WithEnPassant(pos position.Pos) BoardOption {
	return func(cfg *boardConfig) {
		cfg.enPassant = pos
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		turn:      SideWhite,
		enPassant: position.Invalid,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	b.Reset()
	if cfg.turn != SideWhite && cfg.turn != SideBlack {
		return nil, fmt.Errorf("%w: turn %d", ErrWrongTurn, int(cfg.turn))
	}
	b.turn = cfg.turn

	if cfg.placement != nil {
		b.grid = [Height][Width]Piece{}
		for pos, p := range cfg.placement {
			if !pos.IsValid() {
				return nil, fmt.Errorf("%w: placement off board", ErrInvalidPosition)
			}
			if p.Kind() == KindUnknown || p.Side() == SideUnknown {
				return nil, fmt.Errorf("%w: %q on %s", ErrInvalidPiece, p, pos)
			}
			if p.Kind() == KindPawn && (pos.Y() == position.Rank1 || pos.Y() == position.Rank8) {
				return nil, fmt.Errorf("%w: pawn on %s", ErrInvalidPiece, pos)
			}
			b.set(pos, p)
		}
		b.castleRights = b.deriveCastleRights()
	}
	if cfg.castleRights != nil {
		b.castleRights = *cfg.castleRights
	}

	if cfg.enPassant != position.Invalid {
		if !cfg.enPassant.IsValid() || (cfg.enPassant.Y() != position.Rank3 && cfg.enPassant.Y() != position.Rank6) {
			return nil, fmt.Errorf("%w: en passant target %d,%d", ErrInvalidPosition, cfg.enPassant.X(), cfg.enPassant.Y())
		}
		b.enPassant = cfg.enPassant
	}
	return b, nil
}

// Reset reinitializes the board to the standard starting position.
func (b *Board) Reset() {
	b.grid = [Height][Width]Piece{}
	for x := 0; x < Width; x++ {
		b.grid[SideWhite.HomeRank()][x] = NewPiece(SideWhite, startingRank[x])
		b.grid[SideWhite.PawnRank()][x] = NewPiece(SideWhite, KindPawn)
		b.grid[SideBlack.PawnRank()][x] = NewPiece(SideBlack, KindPawn)
		b.grid[SideBlack.HomeRank()][x] = NewPiece(SideBlack, startingRank[x])
	}
	b.turn = SideWhite
	b.castleRights = [2 + 1]CastleRights{SideWhite: CastleRightsAll, SideBlack: CastleRightsAll}
	b.enPassant = position.Invalid
}

func (b *Board) deriveCastleRights() [2 + 1]CastleRights {
	var rights [2 + 1]CastleRights
	for _, s := range [2]Side{SideWhite, SideBlack} {
		rank := s.HomeRank()
		if b.At(position.NewPos(position.FileE, rank)) == NewPiece(s, KindKing) {
			rights[s] |= CastleKingAtHome
		}
		for _, x := range [2]int{position.FileA, position.FileH} {
			if b.At(position.NewPos(x, rank)) == NewPiece(s, KindRook) {
				rights[s] |= rookRight(x)
			}
		}
	}
	return rights
}

// At returns the piece on pos. Off-board coordinates read as OffBoard.
func (b *Board) At(pos position.Pos) Piece {
	if !pos.IsValid() {
		return OffBoard
	}
	return b.grid[pos.Y()][pos.X()]
}

func (b *Board) set(pos position.Pos, p Piece) {
	b.grid[pos.Y()][pos.X()] = p
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights(s Side) CastleRights {
	if s != SideWhite && s != SideBlack {
		return 0
	}
	return b.castleRights[s]
}

// EnPassant returns the current en passant target, or position.Invalid.
func (b *Board) EnPassant() position.Pos {
	return b.enPassant
}

// Pieces returns the squares occupied by side s, rank by rank from a1.
func (b *Board) Pieces(s Side) []position.Pos {
	var ps []position.Pos
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.grid[y][x].Side() == s {
				ps = append(ps, position.NewPos(x, y))
			}
		}
	}
	return ps
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// FindKing returns the square of side s's king.
func (b *Board) FindKing(s Side) (position.Pos, error) {
	if s != SideWhite && s != SideBlack {
		return position.Invalid, fmt.Errorf("%w: %d", ErrInvalidSide, int(s))
	}
	king := NewPiece(s, KindKing)
	found := position.Invalid
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.grid[y][x] != king {
				continue
			}
			if found != position.Invalid {
				return position.Invalid, fmt.Errorf("%w: %s", ErrMultipleKings, s)
			}
			found = position.NewPos(x, y)
		}
	}
	if found == position.Invalid {
		return position.Invalid, fmt.Errorf("%w: %s", ErrKingNotFound, s)
	}
	return found, nil
}

// IsAttacked reports whether pos is controlled by side by.
func (b *Board) IsAttacked(pos position.Pos, by Side) bool {
	attacks := NewAttackMap(b, by)
	return attacks.IsAttacked(pos)
}

// InCheck reports whether side s's king is attacked.
func (b *Board) InCheck(s Side) (bool, error) {
	king, err := b.FindKing(s)
	if err != nil {
		return false, err
	}
	return b.IsAttacked(king, s.Opposite()), nil
}

// GenerateMoves returns the legal destinations of the piece on from, in
// generation order. Empty and off-board squares have none.
func (b *Board) GenerateMoves(from position.Pos) ([]position.Pos, error) {
	p := b.At(from)
	if p.IsEmpty() || p.IsOffBoard() {
		return nil, nil
	}
	s := p.Side()
	if _, err := b.FindKing(s); err != nil {
		return nil, err
	}

	candidates := b.genPseudoLegal(make([]position.Pos, 0, MaxPieceMoves), from)
	mvs := make([]position.Pos, 0, MaxPieceMoves)
	for _, to := range candidates {
		scratch := *b
		scratch.apply(from, to)
		checked, err := scratch.InCheck(s)
		if err != nil {
			return nil, err
		}
		if checked {
			continue
		}
		mvs = append(mvs, to)
	}
	return mvs, nil
}

// LegalMoves returns every legal move of the side to move.
func (b *Board) LegalMoves() ([]Move, error) {
	var mvs []Move
	for _, from := range b.Pieces(b.turn) {
		tos, err := b.GenerateMoves(from)
		if err != nil {
			return nil, err
		}
		for _, to := range tos {
			mv := Move{From: from, To: to, Piece: b.At(from)}
			if b.isPromotion(from, to) {
				mv.Promotion = KindQueen
			}
			mvs = append(mvs, mv)
		}
	}
	return mvs, nil
}

func (b *Board) HasLegalMoves(from position.Pos) (bool, error) {
	mvs, err := b.GenerateMoves(from)
	return len(mvs) != 0, err
}

func (b *Board) IsLegalMove(from, to position.Pos) (bool, error) {
	mvs, err := b.GenerateMoves(from)
	if err != nil {
		return false, err
	}
	for _, mv := range mvs {
		if mv == to {
			return true, nil
		}
	}
	return false, nil
}

// State reports check, checkmate and stalemate for the side to move.
func (b *Board) State() (State, error) {
	checked, err := b.InCheck(b.turn)
	if err != nil {
		return StateUnknown, err
	}
	hasMoves := false
	for _, from := range b.Pieces(b.turn) {
		if hasMoves, err = b.HasLegalMoves(from); err != nil {
			return StateUnknown, err
		}
		if hasMoves {
			break
		}
	}
	switch {
	case checked && !hasMoves:
		return stateCheckmate(b.turn), nil
	case checked:
		return stateCheck(b.turn), nil
	case !hasMoves:
		return StateStalemate, nil
	default:
		return StateRunning, nil
	}
}

// Apply plays the move from -> to. The move must be legal for the side to
// move; otherwise an error is returned and the board is left untouched.
func (b *Board) Apply(from, to position.Pos) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: %d,%d -> %d,%d", ErrInvalidPosition, from.X(), from.Y(), to.X(), to.Y())
	}
	p := b.At(from)
	if p.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if p.Side() != b.turn {
		return fmt.Errorf("%w: %s to move, got %s", ErrWrongTurn, b.turn, p)
	}
	ok, err := b.IsLegalMove(from, to)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	b.apply(from, to)
	return nil
}

// ApplyMove is Apply for a Move. Its Promotion must be set exactly when
// the move carries a pawn to its last rank.
func (b *Board) ApplyMove(mv Move) error {
	switch promotes := b.isPromotion(mv.From, mv.To); {
	case promotes && mv.Promotion != KindQueen:
		return fmt.Errorf("%w: %s%s must promote to a queen", ErrInvalidMove, mv.From, mv.To)
	case !promotes && mv.Promotion != KindUnknown:
		return fmt.Errorf("%w: %s%s is not a promotion", ErrInvalidMove, mv.From, mv.To)
	}
	return b.Apply(mv.From, mv.To)
}

// ApplyMoves plays mvs in order and returns them with their pieces filled
// in. It stops at the first rejected move, whose error is wrapped with the
// ply number; the moves before it stay applied.
func (b *Board) ApplyMoves(mvs []Move) ([]Move, error) {
	played := make([]Move, 0, len(mvs))
	for i, mv := range mvs {
		mv.Piece = b.At(mv.From)
		if err := b.ApplyMove(mv); err != nil {
			return played, fmt.Errorf("ply %d (%s%s): %w", i+1, mv.From, mv.To, err)
		}
		played = append(played, mv)
	}
	return played, nil
}

func (b *Board) isPromotion(from, to position.Pos) bool {
	p := b.At(from)
	return p.Kind() == KindPawn && to.Y() == p.Side().PromotionRank()
}
