package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleAction struct {
	Index int // -1 for current
}

func (a ToggleAction) Type() string { return "toggle" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// AcceptAction ends the session and reports the selection
type AcceptAction struct{}

func (a AcceptAction) Type() string { return "accept" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
