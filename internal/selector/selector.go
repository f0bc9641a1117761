// Package selector keeps a set of independently toggleable options and the
// "select all" aggregate consistent with each other.
//
// The aggregate is true iff every option is checked. An empty registry is
// vacuously all-selected.
package selector

import (
	"fmt"
	"strings"
)

// Strategy selects how the aggregate value is maintained
type Strategy int

const (
	// StrategyDerived recomputes the aggregate from the selection map on every read
	StrategyDerived Strategy = iota
	// StrategyTracked caches the aggregate and resynchronizes it on every toggle
	StrategyTracked
)

func (s Strategy) String() string {
	switch s {
	case StrategyDerived:
		return "derived"
	case StrategyTracked:
		return "tracked"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name. An empty string means derived.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "derived":
		return StrategyDerived, nil
	case "tracked":
		return StrategyTracked, nil
	default:
		return StrategyDerived, fmt.Errorf("unknown strategy %q (want derived or tracked)", name)
	}
}

// Item is the render view of one option
type Item struct {
	Name    string
	Label   string
	Checked bool
}

// Selector is the contract both strategies satisfy
type Selector interface {
	// ToggleOne flips a single option. Unknown names are ignored and report false.
	ToggleOne(name string) bool
	// ToggleAll sets every option to the negation of the current aggregate and
	// returns the value applied.
	ToggleAll() bool
	// AllSelected reports whether every option is checked
	AllSelected() bool
	// Checked reports one option's value; unknown names are false
	Checked(name string) bool
	// Items returns every option with its current value, in registry order
	Items() []Item
	// Selected returns the names of checked options, in registry order
	Selected() []string
	// Count returns the number of checked options
	Count() int
	Registry() *Registry
	Strategy() Strategy
}

// New creates a selector seeded with allSelected || option.Default per option
func New(reg *Registry, allSelected bool, strategy Strategy) Selector {
	st := newState(reg, allSelected)
	if strategy == StrategyTracked {
		t := &trackedSelector{state: st}
		t.count = st.countChecked()
		t.all = t.count == reg.Len()
		return t
	}
	return &derivedSelector{state: st}
}

// state is the name -> checked map shared by both strategies
type state struct {
	reg     *Registry
	checked map[string]bool
}

func newState(reg *Registry, allSelected bool) state {
	checked := make(map[string]bool, reg.Len())
	for _, opt := range reg.options {
		checked[opt.Name] = allSelected || opt.Default
	}
	return state{reg: reg, checked: checked}
}

// fill replaces the whole map with every option set to value
func (s *state) fill(value bool) {
	checked := make(map[string]bool, s.reg.Len())
	for _, opt := range s.reg.options {
		checked[opt.Name] = value
	}
	s.checked = checked
}

func (s *state) countChecked() int {
	n := 0
	for _, v := range s.checked {
		if v {
			n++
		}
	}
	return n
}

func (s *state) Checked(name string) bool {
	return s.checked[name]
}

func (s *state) Items() []Item {
	items := make([]Item, 0, s.reg.Len())
	for _, opt := range s.reg.options {
		items = append(items, Item{
			Name:    opt.Name,
			Label:   opt.DisplayLabel(),
			Checked: s.checked[opt.Name],
		})
	}
	return items
}

func (s *state) Selected() []string {
	var names []string
	for _, opt := range s.reg.options {
		if s.checked[opt.Name] {
			names = append(names, opt.Name)
		}
	}
	return names
}

func (s *state) Registry() *Registry {
	return s.reg
}

type derivedSelector struct {
	state
}

func (d *derivedSelector) ToggleOne(name string) bool {
	v, ok := d.checked[name]
	if !ok {
		return false
	}
	d.checked[name] = !v
	return true
}

func (d *derivedSelector) ToggleAll() bool {
	next := !d.AllSelected()
	d.fill(next)
	return next
}

func (d *derivedSelector) AllSelected() bool {
	for _, v := range d.checked {
		if !v {
			return false
		}
	}
	return true
}

func (d *derivedSelector) Count() int {
	return d.countChecked()
}

func (d *derivedSelector) Strategy() Strategy {
	return StrategyDerived
}

// trackedSelector keeps the aggregate in a field. count is updated on every
// ToggleOne so all never drifts from the map.
type trackedSelector struct {
	state
	all   bool
	count int
}

func (t *trackedSelector) ToggleOne(name string) bool {
	v, ok := t.checked[name]
	if !ok {
		return false
	}
	t.checked[name] = !v
	if v {
		t.count--
	} else {
		t.count++
	}
	t.all = t.count == t.reg.Len()
	return true
}

func (t *trackedSelector) ToggleAll() bool {
	next := !t.all
	t.fill(next)
	if next {
		t.count = t.reg.Len()
	} else {
		t.count = 0
	}
	t.all = t.count == t.reg.Len()
	return next
}

func (t *trackedSelector) AllSelected() bool {
	return t.all
}

func (t *trackedSelector) Count() int {
	return t.count
}

func (t *trackedSelector) Strategy() Strategy {
	return StrategyTracked
}
