package types

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
)

// TerminalPrinter keeps a single status line updated in place
type TerminalPrinter struct {
	writer *uilive.Writer
	// print every n episodes
	every int
}

func NewTerminalPrinter(out io.Writer, every int) *TerminalPrinter {
	writer := uilive.New()
	writer.Out = out
	if every < 1 {
		every = 1
	}
	return &TerminalPrinter{
		writer: writer,
		every:  every,
	}
}

// Print replaces the status line. Only every n-th episode and the last one are printed.
func (p *TerminalPrinter) Print(episode, total int, status string) {
	if episode%p.every != 0 && episode != total {
		return
	}
	fmt.Fprintln(p.writer, status)
	p.writer.Flush()
}

// Done leaves the last status on screen
func (p *TerminalPrinter) Done() {
	p.writer.Flush()
}
