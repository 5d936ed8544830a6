package form

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"lootpick/internal/loot"
)

// Form drives one interactive session over a screen. The table is shared and
// read-only; the RNG belongs to this session alone.
type Form struct {
	screen tcell.Screen
	table  *loot.Table
	rng    *rand.Rand
	state  State
}

// New returns a Form over an initialized screen. The caller retains ownership
// of the screen; Run finalizes it on exit.
func New(screen tcell.Screen, table *loot.Table, rng *rand.Rand) *Form {
	return &Form{
		screen: screen,
		table:  table,
		rng:    rng,
		state:  NewState(),
	}
}

// Run blocks until the user quits. Each event produces a fresh State
// snapshot; the screen is redrawn from that snapshot and nothing else.
func (f *Form) Run() {
	defer f.screen.Fini()

	for {
		render(f.screen, f.state, f.table)

		ev := f.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return // screen finalized under us
		case *tcell.EventResize:
			f.screen.Sync()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				return
			}
			if f.buttonPressed(action, ev.Rune()) {
				f.state = f.pick(f.state)
				continue
			}
			f.state = f.state.Apply(action, ev.Rune())
		}
	}
}

// buttonPressed reports whether this event activates the Pick Loot button:
// Enter or Space while the button has focus.
func (f *Form) buttonPressed(a Action, r rune) bool {
	if f.state.Focus != FocusButton {
		return false
	}
	return a == ActionActivate || (a == ActionRune && r == ' ')
}

// pick runs one draw against the table and folds the outcome into the state.
// Successful picks are also appended to the on-disk history, best-effort.
func (f *Form) pick(s State) State {
	item, err := f.table.Pick(f.rng)
	if err != nil {
		return s.WithPickError(err)
	}
	recordPick(item, f.table.Mode)
	return s.WithPick(item)
}
