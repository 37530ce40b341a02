package position

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

var (
	A1, B1, C1, D1, E1, F1, G1, H1 = rank(Rank1)
	A2, B2, C2, D2, E2, F2, G2, H2 = rank(Rank2)
	A3, B3, C3, D3, E3, F3, G3, H3 = rank(Rank3)
	A4, B4, C4, D4, E4, F4, G4, H4 = rank(Rank4)
	A5, B5, C5, D5, E5, F5, G5, H5 = rank(Rank5)
	A6, B6, C6, D6, E6, F6, G6, H6 = rank(Rank6)
	A7, B7, C7, D7, E7, F7, G7, H7 = rank(Rank7)
	A8, B8, C8, D8, E8, F8, G8, H8 = rank(Rank8)
)

func rank(y int) (Pos, Pos, Pos, Pos, Pos, Pos, Pos, Pos) {
	return NewPos(FileA, y), NewPos(FileB, y), NewPos(FileC, y), NewPos(FileD, y),
		NewPos(FileE, y), NewPos(FileF, y), NewPos(FileG, y), NewPos(FileH, y)
}
