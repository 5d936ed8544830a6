// Package form is the interactive terminal surface for a loot table: a small
// control panel with numeric and text inputs, live output labels, and a
// button that draws one item from the table.
//
// The package owns no selection logic. Every pick goes through loot.Table.Pick
// against an immutable table; the form only displays the result.
package form

// Focus identifies the control that receives input.
type Focus uint8

const (
	FocusSlider Focus = iota
	FocusSpinner
	FocusEntry
	FocusMulti
	FocusButton
	focusCount
)

const (
	numMin = 1
	numMax = 100
)

// State is one immutable snapshot of the form. Input events reduce a State to
// a new State via Apply; rendering is a pure function of State. Nothing holds
// a State across events, so there is no shared mutable UI state anywhere.
type State struct {
	Focus   Focus
	Slider  int // numMin..numMax
	Spinner int // numMin..numMax
	Entry   string
	Multi   string

	Picked  string // last successful pick ("" before the first)
	PickErr string // last pick failure ("" when the last pick succeeded)
	Picks   int    // successful picks this session
}

// NewState returns the form's initial snapshot.
func NewState() State {
	return State{Slider: numMin, Spinner: numMin}
}

// Apply reduces the state by one input action. Rune actions carry the typed
// rune in r; for every other action r is ignored. The receiver is taken by
// value and never mutated.
func (s State) Apply(a Action, r rune) State {
	switch a {
	case ActionNextField:
		s.Focus = (s.Focus + 1) % focusCount
	case ActionPrevField:
		s.Focus = (s.Focus + focusCount - 1) % focusCount
	case ActionLeft:
		if s.Focus == FocusSlider {
			s.Slider = clamp(s.Slider - 1)
		}
	case ActionRight:
		if s.Focus == FocusSlider {
			s.Slider = clamp(s.Slider + 1)
		}
	case ActionUp:
		if s.Focus == FocusSpinner {
			s.Spinner = clamp(s.Spinner + 1)
		}
	case ActionDown:
		if s.Focus == FocusSpinner {
			s.Spinner = clamp(s.Spinner - 1)
		}
	case ActionBackspace:
		switch s.Focus {
		case FocusEntry:
			s.Entry = dropLastRune(s.Entry)
		case FocusMulti:
			s.Multi = dropLastRune(s.Multi)
		}
	case ActionActivate:
		// Button activation is handled by the event loop; in the multiline
		// control Enter is just another character.
		if s.Focus == FocusMulti {
			s.Multi += "\n"
		}
	case ActionRune:
		switch s.Focus {
		case FocusSlider:
			// Vim-style alternates for the arrow keys.
			switch r {
			case 'h':
				s.Slider = clamp(s.Slider - 1)
			case 'l':
				s.Slider = clamp(s.Slider + 1)
			}
		case FocusSpinner:
			switch r {
			case '+':
				s.Spinner = clamp(s.Spinner + 1)
			case '-':
				s.Spinner = clamp(s.Spinner - 1)
			}
		case FocusEntry:
			s.Entry += string(r)
		case FocusMulti:
			s.Multi += string(r)
		}
	}
	return s
}

// WithPick records a successful draw.
func (s State) WithPick(item string) State {
	s.Picked = item
	s.PickErr = ""
	s.Picks++
	return s
}

// WithPickError records a failed draw. The error replaces the displayed
// result but the form (and the table) stay usable.
func (s State) WithPickError(err error) State {
	s.PickErr = err.Error()
	return s
}

// Added and Subtracted are the live numeric output labels.
func (s State) Added() int      { return s.Slider + s.Spinner }
func (s State) Subtracted() int { return s.Slider - s.Spinner }

func clamp(v int) int {
	if v < numMin {
		return numMin
	}
	if v > numMax {
		return numMax
	}
	return v
}

func dropLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
