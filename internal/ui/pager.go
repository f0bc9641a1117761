package ui

import (
	"io"
	"strings"

	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in the ov pager. It implements tea.ExecCommand so
// Bubble Tea releases the terminal while ov runs; ov opens the tty itself,
// so the std stream setters are no-ops.
type pagerCommand struct {
	content string
}

func newPagerCommand(content string) *pagerCommand {
	return &pagerCommand{content: content}
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}
