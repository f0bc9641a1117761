package state

// AppState contains the UI state that lives outside the selector
type AppState struct {
	Width         int
	Height        int
	StatusMessage string // status bar message, cleared on the next key

	// Outcome
	Done     bool // the session is over
	Accepted bool // ended with enter rather than q/esc/ctrl+c
	Aborted  bool // ended with ctrl+c
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// Finish records how the session ended
func (s *AppState) Finish(accepted, aborted bool) {
	s.Done = true
	s.Accepted = accepted
	s.Aborted = aborted
}
