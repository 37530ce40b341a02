package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chesscore/position"
)

var (
	colorCellLight     = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark      = color.New(color.FgBlack, color.BgGreen)
	colorCellHighlight = color.New(color.FgBlack, color.BgYellow)
	colorCellCheck     = color.New(color.FgBlack, color.BgRed)
	colorLabel         = color.New(color.Bold)
)

// Dump renders the board as plain text.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := 0; x < Width; x++ {
			sym := b.grid[y][x].SymbolLetter()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NewPos(x, 0).NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board with terminal colors. The king of the side to move
// is marked when in check, and highlight squares are marked as well.
func (b *Board) Draw(highlight ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}
	checkedKing := position.Invalid
	if checked, err := b.InCheck(b.turn); err == nil && checked {
		checkedKing, _ = b.FindKing(b.turn)
	}

	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := 0; x < Width; x++ {
			pos := position.NewPos(x, y)
			sym := b.grid[y][x].SymbolUnicode(false)
			if sym == "" {
				sym = " "
			}
			cell := colorCellLight
			switch {
			case pos == checkedKing:
				cell = colorCellCheck
			case marked[pos]:
				cell = colorCellHighlight
			case x%2^y%2 == 0:
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NewPos(x, 0).NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	ep := b.enPassant.Notation()
	if ep == "" {
		ep = "-"
	}
	return fmt.Sprintf("turn: %s\ncast: %03b %03b\nenp:  %s", b.turn, b.castleRights[SideWhite], b.castleRights[SideBlack], ep)
}
