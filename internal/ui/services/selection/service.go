package selection

import (
	"github.com/rs/zerolog"

	"checkgrip/internal/eventbus"
	"checkgrip/internal/logging"
	"checkgrip/internal/selector"
)

// Service adapts a selector to the row-based checklist and publishes
// selection events
type Service struct {
	sel            selector.Selector
	bus            eventbus.EventBus
	selectAllLabel string
	logger         zerolog.Logger
}

// NewService creates a new selection service. bus may be nil.
func NewService(sel selector.Selector, bus eventbus.EventBus, selectAllLabel string) *Service {
	if selectAllLabel == "" {
		selectAllLabel = "Select All"
	}
	return &Service{
		sel:            sel,
		bus:            bus,
		selectAllLabel: selectAllLabel,
		logger:         logging.GetLogger("selection"),
	}
}

// RowCount returns the number of rows including the select all control
func (s *Service) RowCount() int {
	return s.sel.Registry().Len() + 1
}

// NameAt returns the option name for a row, "" for the select all row or
// out of range rows
func (s *Service) NameAt(row int) string {
	opt, ok := s.sel.Registry().At(row - 1)
	if !ok {
		return ""
	}
	return opt.Name
}

// ToggleAt toggles the row under the cursor
func (s *Service) ToggleAt(row int) {
	if row == SelectAllRow {
		s.ToggleAll()
		return
	}
	s.Toggle(s.NameAt(row))
}

// Toggle flips a single option; unknown names are ignored
func (s *Service) Toggle(name string) {
	if !s.sel.ToggleOne(name) {
		s.logger.Debug().Str("option", name).Msg("Ignoring toggle for unknown option")
		return
	}

	checked := s.sel.Checked(name)
	all := s.sel.AllSelected()
	s.logger.Debug().Str("option", name).Bool("checked", checked).Bool("all", all).Msg("Option toggled")

	if s.bus != nil {
		s.bus.Publish(eventbus.OptionToggledEvent{
			Name:        name,
			Checked:     checked,
			AllSelected: all,
		})
	}
}

// ToggleAll drives the select all control
func (s *Service) ToggleAll() {
	next := s.sel.ToggleAll()
	s.logger.Debug().Bool("checked", next).Msg("All options toggled")

	if s.bus != nil {
		s.bus.Publish(eventbus.AllToggledEvent{
			Checked: next,
			Count:   s.sel.Count(),
		})
	}
}

// Rows returns the select all row followed by every option
func (s *Service) Rows() []Row {
	items := s.sel.Items()
	rows := make([]Row, 0, len(items)+1)
	rows = append(rows, Row{
		Label:       s.selectAllLabel,
		Checked:     s.sel.AllSelected(),
		IsSelectAll: true,
	})
	for _, it := range items {
		rows = append(rows, Row{Name: it.Name, Label: it.Label, Checked: it.Checked})
	}
	return rows
}

// AllSelected reports the aggregate state
func (s *Service) AllSelected() bool {
	return s.sel.AllSelected()
}

// IsSelected checks if an option is checked
func (s *Service) IsSelected(name string) bool {
	return s.sel.Checked(name)
}

// GetSelected returns checked names in registry order
func (s *Service) GetSelected() []string {
	return s.sel.Selected()
}

// GetCount returns the number of checked options
func (s *Service) GetCount() int {
	return s.sel.Count()
}

// Total returns the number of options
func (s *Service) Total() int {
	return s.sel.Registry().Len()
}

// HasSelection returns true if anything is checked
func (s *Service) HasSelection() bool {
	return s.sel.Count() > 0
}
