package selection

// Row is one line of the checklist as the renderer sees it. Row 0 is the
// select all control.
type Row struct {
	Name        string
	Label       string
	Checked     bool
	IsSelectAll bool
}

// SelectAllRow is the index of the aggregate control
const SelectAllRow = 0
