package grid

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

// String renders the grid one row per line, R marks the robot, C a can and _ an empty cell
func (g *CanEnvironment) String() string {
	return g.Render(false)
}

// Render draws the grid, optionally with terminal colours
func (g *CanEnvironment) Render(colors bool) string {
	au := aurora.NewAurora(colors)
	b := strings.Builder{}
	for i, row := range g.cells {
		for j, c := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			if g.CurPos.I == i && g.CurPos.J == j {
				if c == Can {
					b.WriteString(au.Bold(au.Magenta("R")).String())
				} else {
					b.WriteString(au.Bold(au.Cyan("R")).String())
				}
				continue
			}
			switch c {
			case Can:
				b.WriteString(au.Green("C").String())
			default:
				b.WriteString(au.Faint("_").String())
			}
		}
		if i < len(g.cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
