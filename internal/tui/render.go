package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algolab/internal/anim"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// tagStyle maps a snapshot tag to the style its element is drawn with.
func tagStyle(t anim.Tag) lipgloss.Style {
	switch t {
	case anim.TagComparing, anim.TagCurrent, anim.TagFrontier:
		return yellow
	case anim.TagSwapping, anim.TagRejected, anim.TagEliminated:
		return red
	case anim.TagSorted, anim.TagFound, anim.TagSelected, anim.TagInPath, anim.TagFilled:
		return green
	case anim.TagPivot, anim.TagTarget, anim.TagMinimum:
		return magenta
	case anim.TagVisited, anim.TagProcessed:
		return cyan
	default:
		return dim
	}
}

// renderSnapshot dispatches on the snapshot union; every kind has a
// dedicated renderer.
func renderSnapshot(s anim.Snapshot, width, height int) string {
	switch snap := s.(type) {
	case anim.ArraySnapshot:
		return renderArray(snap, width, height)
	case anim.GraphSnapshot:
		return renderGraph(snap, width, height)
	case anim.MatrixSnapshot:
		return renderMatrix(snap)
	case anim.StringMatchSnapshot:
		return renderStringMatch(snap)
	case anim.HuffmanSnapshot:
		return renderHuffman(snap)
	case anim.JobsSnapshot:
		return renderJobs(snap)
	case anim.ConceptSnapshot:
		return renderConcept(snap)
	default:
		return dim.Render("   (no visual for this step)")
	}
}

// renderArray draws values as vertical bars scaled to the tallest one.
func renderArray(s anim.ArraySnapshot, width, height int) string {
	if len(s.Elements) == 0 {
		return ""
	}
	maxVal := 1
	for _, e := range s.Elements {
		if e.Value > maxVal {
			maxVal = e.Value
		}
	}
	barH := height - 2
	if barH < 4 {
		barH = 4
	}
	colW := 4
	if len(s.Elements)*colW > width {
		colW = 3
	}

	var b strings.Builder
	for row := barH; row >= 1; row-- {
		b.WriteString("   ")
		for _, e := range s.Elements {
			h := e.Value * barH / maxVal
			if h < 1 {
				h = 1
			}
			if h >= row {
				b.WriteString(tagStyle(e.Tag).Render(strings.Repeat("█", colW-1)))
			} else {
				b.WriteString(strings.Repeat(" ", colW-1))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("   ")
	for _, e := range s.Elements {
		b.WriteString(tagStyle(e.Tag).Render(fmt.Sprintf("%*d", colW-1, e.Value)) + " ")
	}
	b.WriteString("\n")
	return b.String()
}

// renderGraph lays the nodes out on a circle and draws edges with
// Bresenham lines, then overlays the labels.
func renderGraph(s anim.GraphSnapshot, width, height int) string {
	cw, ch := width-6, height
	if cw < 40 {
		cw = 40
	}
	if ch < 12 {
		ch = 12
	}
	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	n := len(s.Nodes)
	pos := make(map[string][2]int, n)
	cx, cy := cw/2, ch/2
	rx, ry := float64(cw)/2-6, float64(ch)/2-2
	for i, node := range s.Nodes {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := cx + int(rx*math.Cos(angle))
		y := cy + int(ry*math.Sin(angle))
		pos[node.ID] = [2]int{x, y}
	}

	type styled struct {
		x, y int
		text string
	}
	var overlay []styled

	for _, e := range s.Edges {
		from, okF := pos[e.From]
		to, okT := pos[e.To]
		if !okF || !okT {
			continue
		}
		mark := '·'
		if e.Tag == anim.TagInPath || e.Tag == anim.TagSelected {
			mark = '*'
		}
		drawLine(canvas, cw, ch, from[0], from[1], to[0], to[1], mark)
		if e.Weight > 1 {
			mx, my := (from[0]+to[0])/2, (from[1]+to[1])/2
			overlay = append(overlay, styled{mx, my, dimmer.Render(fmt.Sprintf("%d", e.Weight))})
		}
	}

	for _, node := range s.Nodes {
		p := pos[node.ID]
		label := node.Label
		if label == "" {
			label = node.ID
		}
		overlay = append(overlay, styled{p[0], p[1], tagStyle(node.Tag).Render("(" + label + ")")})
	}

	lines := make([]string, len(canvas))
	for i, row := range canvas {
		lines[i] = string(row)
	}
	// Overlays are spliced into the plain rows; later entries win.
	for _, o := range overlay {
		if o.y < 0 || o.y >= len(lines) {
			continue
		}
		row := []rune(lines[o.y])
		plain := lipgloss.Width(o.text)
		start := o.x - plain/2
		if start < 0 {
			start = 0
		}
		if start+plain > len(row) {
			// Styled text can't be split mid-sequence; skip when the
			// row has no room.
			continue
		}
		lines[o.y] = string(row[:start]) + o.text + string(row[start+plain:])
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString("   " + line + "\n")
	}
	return b.String()
}

func renderMatrix(s anim.MatrixSnapshot) string {
	var b strings.Builder

	cellW := 4
	if len(s.ColLabels) > 0 {
		b.WriteString("        ")
		for _, label := range s.ColLabels {
			b.WriteString(dim.Render(fmt.Sprintf("%*s", cellW, label)))
		}
		b.WriteString("\n")
	}
	for r, row := range s.Cells {
		if r < len(s.RowLabels) {
			b.WriteString("   " + dim.Render(fmt.Sprintf("%4s", s.RowLabels[r])) + " ")
		} else {
			b.WriteString("        ")
		}
		for _, c := range row {
			text := c.Text
			if text == "" {
				text = fmt.Sprintf("%d", c.Value)
			}
			b.WriteString(tagStyle(c.Tag).Render(fmt.Sprintf("%*s", cellW, text)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderStringMatch(s anim.StringMatchSnapshot) string {
	var b strings.Builder

	matched := make(map[int]bool)
	for _, m := range s.Matches {
		for j := 0; j < len(s.Pattern); j++ {
			matched[m+j] = true
		}
	}

	b.WriteString("   " + dim.Render("text    ") + " ")
	for i := 0; i < len(s.Text); i++ {
		ch := string(s.Text[i])
		switch {
		case i == s.TextIndex:
			b.WriteString(yellow.Render(ch))
		case matched[i]:
			b.WriteString(green.Render(ch))
		default:
			b.WriteString(white.Render(ch))
		}
	}
	b.WriteString("\n   " + strings.Repeat(" ", 9))
	if s.TextIndex >= 0 {
		b.WriteString(strings.Repeat(" ", s.TextIndex) + yellow.Render("↑"))
	}
	b.WriteString("\n")

	b.WriteString("   " + dim.Render("pattern ") + " ")
	offset := 0
	if s.TextIndex >= 0 && s.PatternIndex >= 0 {
		offset = s.TextIndex - s.PatternIndex
	}
	if offset > 0 {
		b.WriteString(strings.Repeat(" ", offset))
	}
	for j := 0; j < len(s.Pattern); j++ {
		ch := string(s.Pattern[j])
		if j == s.PatternIndex {
			b.WriteString(yellow.Render(ch))
		} else {
			b.WriteString(cyan.Render(ch))
		}
	}
	b.WriteString("\n")

	if len(s.Matches) > 0 {
		b.WriteString("   " + green.Render(fmt.Sprintf("matches at %v", s.Matches)) + "\n")
	}
	return b.String()
}

// renderHuffman prints the forest as an indented tree per root, leaves
// first getting their code once assigned.
func renderHuffman(s anim.HuffmanSnapshot) string {
	var b strings.Builder

	isChild := make([]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.Left >= 0 {
			isChild[n.Left] = true
		}
		if n.Right >= 0 {
			isChild[n.Right] = true
		}
	}

	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		n := s.Nodes[idx]
		indent := strings.Repeat("  ", depth)
		if n.Left == -1 && n.Right == -1 {
			line := fmt.Sprintf("%s%s (%d)", indent, n.Symbol, n.Freq)
			if code, ok := s.Codes[n.Symbol]; ok {
				line += "  " + code
			}
			b.WriteString("   " + tagStyle(n.Tag).Render(line) + "\n")
			return
		}
		b.WriteString("   " + tagStyle(n.Tag).Render(fmt.Sprintf("%s● (%d)", indent, n.Freq)) + "\n")
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}

	if s.Root >= 0 {
		walk(s.Root, 0)
	} else {
		for i := range s.Nodes {
			if !isChild[i] {
				walk(i, 0)
			}
		}
	}
	return b.String()
}

func renderJobs(s anim.JobsSnapshot) string {
	var b strings.Builder
	for _, j := range s.Jobs {
		var detail string
		switch {
		case j.Weight > 0 && j.Value > 0:
			detail = fmt.Sprintf("weight %2d  value %2d", j.Weight, j.Value)
			if j.Fraction > 0 && j.Fraction < 1 {
				detail += fmt.Sprintf("  ×%.2f", j.Fraction)
			}
		case j.Deadline > 0:
			detail = fmt.Sprintf("deadline %d  profit %2d", j.Deadline, j.Profit)
		default:
			detail = fmt.Sprintf("[%2d, %2d]", j.Start, j.End)
		}
		marker := " "
		switch j.Tag {
		case anim.TagSelected:
			marker = "✓"
		case anim.TagRejected:
			marker = "✗"
		case anim.TagCurrent:
			marker = "▸"
		}
		b.WriteString("   " + tagStyle(j.Tag).Render(fmt.Sprintf("%s %-4s %s", marker, j.Name, detail)) + "\n")
	}
	b.WriteString("   " + dim.Render(fmt.Sprintf("total %.1f", s.Total)) + "\n")
	return b.String()
}

func renderConcept(s anim.ConceptSnapshot) string {
	var b strings.Builder
	b.WriteString("   " + cyan.Render(s.Title) + "\n\n")
	for _, item := range s.Items {
		marker := "  "
		if item.Tag == anim.TagCurrent {
			marker = "▸ "
		}
		b.WriteString("   " + tagStyle(item.Tag).Render(fmt.Sprintf("%s%-14s %s", marker, item.Label, item.Detail)) + "\n")
	}
	return b.String()
}

func drawLine(canvas [][]rune, w, h, x1, y1, x2, y2 int, c rune) {
	dx := intAbs(x2 - x1)
	dy := intAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		if x1 >= 0 && x1 < w && y1 >= 0 && y1 < h {
			canvas[y1][x1] = c
		}
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
