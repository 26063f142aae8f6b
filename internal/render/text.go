package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"game2048/internal/board"
	"game2048/internal/component"
)

// EmptyGlyph marks an empty cell in text output.
const EmptyGlyph = "."

// cellLabel returns the text shown for a cell value.
func cellLabel(value int) string {
	if value == board.Empty {
		return EmptyGlyph
	}
	return strconv.Itoa(component.Tile{Value: value}.Number())
}

// Text renders b as right-aligned columns, top row first. Row y = Size-1
// is printed first because (0,0) is the bottom-left cell.
func Text(b *board.Board) string {
	width := 1
	for y := range b.Size {
		for x := range b.Size {
			width = max(width, runewidth.StringWidth(cellLabel(b.At(x, y))))
		}
	}

	var sb strings.Builder
	for y := b.Size - 1; y >= 0; y-- {
		for x := range b.Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(runewidth.FillLeft(cellLabel(b.At(x, y)), width))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
