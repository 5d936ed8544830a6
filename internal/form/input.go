package form

import "github.com/gdamore/tcell/v2"

// Action represents one user input gesture.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextField
	ActionPrevField
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionActivate
	ActionBackspace
	ActionRune
)

// keyToAction maps a tcell key event to a form action. Printable runes map to
// ActionRune; the rune itself stays on the event.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyTab:
		return ActionNextField
	case tcell.KeyBacktab:
		return ActionPrevField
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionActivate
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionBackspace
	case tcell.KeyRune:
		return ActionRune
	}
	return ActionNone
}
