package ui

// pagerClosedMsg is sent when the ov pager exits
type pagerClosedMsg struct {
	err error
}

// readyMsg arrives once the event loop is running and input is live
type readyMsg struct{}
