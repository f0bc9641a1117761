package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOptionToggled  EventType = "OptionToggled"
	EventAllToggled     EventType = "AllToggled"
	EventRegistryLoaded EventType = "RegistryLoaded"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventSelectionDone  EventType = "SelectionDone"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OptionToggledEvent is emitted after a single option was flipped
type OptionToggledEvent struct {
	Name        string
	Checked     bool
	AllSelected bool // aggregate after the toggle
}

func (e OptionToggledEvent) Type() EventType { return EventOptionToggled }

// AllToggledEvent is emitted after the select all control set every option
type AllToggledEvent struct {
	Checked bool
	Count   int
}

func (e AllToggledEvent) Type() EventType { return EventAllToggled }

// RegistryLoadedEvent is emitted once the option registry has been built
type RegistryLoadedEvent struct {
	Source string // file path, "-" for stdin, "config" or "flags"
	Count  int
}

func (e RegistryLoadedEvent) Type() EventType { return EventRegistryLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Found bool // false when defaults were used
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// SelectionDoneEvent is emitted when the user accepts or abandons the checklist
type SelectionDoneEvent struct {
	Accepted bool
	Selected []string
}

func (e SelectionDoneEvent) Type() EventType { return EventSelectionDone }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
