package form

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lootpick/internal/loot"
)

const (
	inputCol  = 2  // control labels
	fieldCol  = 12 // control bodies
	outputCol = 40 // live output labels
	sliderLen = 20 // slider bar cells
)

// render draws one full frame from the snapshot. Pure: same state and table,
// same frame.
func render(scr tcell.Screen, s State, t *loot.Table) {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	focused := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)

	scr.Clear()

	// pick returns the label style for a control, highlighted when focused.
	pick := func(f Focus) tcell.Style {
		if s.Focus == f {
			return focused
		}
		return dim
	}

	putText(scr, inputCol, 1, fmt.Sprintf("Loot Picker — %s table, %d items", t.Mode, len(t.Entries)), gold)
	drawHLine(scr, 2, gray)

	// Slider: a filled bar plus its numeric value.
	y := 4
	putText(scr, inputCol, y, "Slider", pick(FocusSlider))
	putText(scr, fieldCol, y, sliderBar(s.Slider), white)
	putText(scr, fieldCol+sliderLen+3, y, fmt.Sprintf("%3d", s.Slider), white)
	putText(scr, outputCol, y, fmt.Sprintf("Added: %d", s.Added()), dim)
	y += 2

	putText(scr, inputCol, y, "Spinner", pick(FocusSpinner))
	putText(scr, fieldCol, y, fmt.Sprintf("‹ %3d ›", s.Spinner), white)
	putText(scr, outputCol, y, fmt.Sprintf("Subtracted: %d", s.Subtracted()), dim)
	y += 2

	drawHLine(scr, y, gray)
	y += 2

	putText(scr, inputCol, y, "Text", pick(FocusEntry))
	putText(scr, fieldCol, y, "["+s.Entry+cursor(s, FocusEntry)+"]", white)
	putText(scr, outputCol, y, "Text: "+s.Entry, dim)
	y += 2

	// The multiline control renders newlines as ⏎ on its single input row;
	// the output label shows the last line in full.
	putText(scr, inputCol, y, "Notes", pick(FocusMulti))
	putText(scr, fieldCol, y, "["+flattenNewlines(s.Multi)+cursor(s, FocusMulti)+"]", white)
	putText(scr, outputCol, y, "Multiline Text: "+flattenNewlines(s.Multi), dim)
	y += 2

	buttonStyle := green
	if s.Focus == FocusButton {
		buttonStyle = focused
	}
	putText(scr, inputCol, y, "[ Pick Loot ]", buttonStyle)
	if s.PickErr != "" {
		putText(scr, outputCol, y, "Selected Item: ✗ "+s.PickErr, red)
	} else {
		putWideText(scr, outputCol, y, "Selected Item: "+s.Picked, white)
	}
	y += 2

	drawHLine(scr, y, gray)
	putText(scr, inputCol, y+1,
		fmt.Sprintf("Tab next field · ←/→ slider · ↑/↓ spinner · Enter pick · Esc quit · picks: %d", s.Picks),
		gray)

	scr.Show()
}

// sliderBar renders the slider value as a proportional bar, e.g. "[####....]".
func sliderBar(v int) string {
	filled := v * sliderLen / numMax
	bar := make([]rune, 0, sliderLen+2)
	bar = append(bar, '[')
	for i := 0; i < sliderLen; i++ {
		if i < filled {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '·')
		}
	}
	return string(append(bar, ']'))
}

// cursor marks the insertion point of the focused text control.
func cursor(s State, f Focus) string {
	if s.Focus == f {
		return "_"
	}
	return ""
}

func flattenNewlines(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			r = '⏎'
		}
		out = append(out, r)
	}
	return string(out)
}

// putText writes a string starting at (x, y), one column per rune, clipped at
// the right screen edge.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x++
	}
}

// putWideText is putText advancing by display width, so emoji item names do
// not overlap the cells after them.
func putWideText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		x += w
	}
}

func drawHLine(scr tcell.Screen, y int, st tcell.Style) {
	w, _ := scr.Size()
	for x := 0; x < w; x++ {
		scr.SetContent(x, y, '─', nil, st)
	}
}
