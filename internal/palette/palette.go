// Package palette implements the command palette state machine. The palette
// is either Closed or Open; selecting an action while Open hands the action
// to the caller exactly once and closes the palette. The machine itself is
// pure: executing an action (print, open a link, copy) is the caller's job,
// which keeps the same model usable behind the web overlay and the terminal
// viewer.
package palette

import "strings"

// State is the palette's only piece of UI state.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Palette holds the fixed action list and the open/closed state. One
// instance exists per page; all transitions run on the UI goroutine, so no
// locking is needed.
type Palette struct {
	state   State
	actions []Action
	query   string
}

// New builds a palette over a fixed action list.
func New(actions []Action) *Palette {
	return &Palette{actions: actions}
}

// State returns the current state.
func (p *Palette) State() State {
	return p.state
}

// IsOpen reports whether the palette is showing.
func (p *Palette) IsOpen() bool {
	return p.state == StateOpen
}

// Toggle flips Closed and Open. This is the transition bound to the
// global keyboard combination.
func (p *Palette) Toggle() State {
	if p.state == StateOpen {
		return p.close()
	}
	p.state = StateOpen
	return p.state
}

// Open opens the palette. Opening while already open is a no-op: the state
// stays Open and the filter query is untouched, so no duplicate overlay can
// exist.
func (p *Palette) Open() State {
	p.state = StateOpen
	return p.state
}

// Dismiss closes the palette without selecting anything (escape key,
// click-outside). Dismissing while closed is a no-op.
func (p *Palette) Dismiss() State {
	return p.close()
}

// Select picks an action by id. When the palette is Open and the id names a
// known action, the action is returned exactly once and the palette closes;
// otherwise nothing is returned and the state does not change. The caller
// performs the action's side effect.
func (p *Palette) Select(id string) (Action, bool) {
	if p.state != StateOpen {
		return Action{}, false
	}
	for _, a := range p.actions {
		if a.ID == id {
			p.close()
			return a, true
		}
	}
	return Action{}, false
}

// SetQuery updates the filter text. Only meaningful while Open.
func (p *Palette) SetQuery(q string) {
	if p.state == StateOpen {
		p.query = q
	}
}

// Query returns the current filter text.
func (p *Palette) Query() string {
	return p.query
}

// Actions returns the full action list in its fixed order.
func (p *Palette) Actions() []Action {
	return p.actions
}

// Filtered returns the actions whose titles match the current query,
// case-insensitively, preserving the fixed order. An empty query matches
// everything.
func (p *Palette) Filtered() []Action {
	if p.query == "" {
		return p.actions
	}
	needle := strings.ToLower(p.query)
	matched := make([]Action, 0, len(p.actions))
	for _, a := range p.actions {
		if strings.Contains(strings.ToLower(a.Title), needle) {
			matched = append(matched, a)
		}
	}
	return matched
}

func (p *Palette) close() State {
	p.state = StateClosed
	p.query = ""
	return p.state
}
