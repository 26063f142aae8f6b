package render

import "github.com/gdamore/tcell/v2"

// TileColors holds the background and text colour of one tile value.
type TileColors struct {
	BG, FG tcell.Color
}

// TilePalette maps a tile value (exponent) to its colours. Values past the
// end of the table reuse the last entry.
var TilePalette = []TileColors{
	{BG: tcell.NewHexColor(0xeee4da), FG: tcell.NewHexColor(0x776e65)}, // 2
	{BG: tcell.NewHexColor(0xede0c8), FG: tcell.NewHexColor(0x776e65)}, // 4
	{BG: tcell.NewHexColor(0xf2b179), FG: tcell.NewHexColor(0xf9f6f2)}, // 8
	{BG: tcell.NewHexColor(0xf59563), FG: tcell.NewHexColor(0xf9f6f2)}, // 16
	{BG: tcell.NewHexColor(0xf67c5f), FG: tcell.NewHexColor(0xf9f6f2)}, // 32
	{BG: tcell.NewHexColor(0xf65e3b), FG: tcell.NewHexColor(0xf9f6f2)}, // 64
	{BG: tcell.NewHexColor(0xedcf72), FG: tcell.NewHexColor(0xf9f6f2)}, // 128
	{BG: tcell.NewHexColor(0xedcc61), FG: tcell.NewHexColor(0xf9f6f2)}, // 256
	{BG: tcell.NewHexColor(0xedc850), FG: tcell.NewHexColor(0xf9f6f2)}, // 512
	{BG: tcell.NewHexColor(0xedc53f), FG: tcell.NewHexColor(0xf9f6f2)}, // 1024
	{BG: tcell.NewHexColor(0xedc22e), FG: tcell.NewHexColor(0xf9f6f2)}, // 2048
	{BG: tcell.NewHexColor(0x3c3a32), FG: tcell.NewHexColor(0xf9f6f2)}, // beyond
}

// EmptyCell is the style of a cell without a tile.
var EmptyCell = TileColors{BG: tcell.NewHexColor(0xcdc1b4), FG: tcell.NewHexColor(0xcdc1b4)}

// ColorsFor returns the palette entry for value.
func ColorsFor(value int) TileColors {
	if value < 0 {
		return EmptyCell
	}
	if value >= len(TilePalette) {
		return TilePalette[len(TilePalette)-1]
	}
	return TilePalette[value]
}
