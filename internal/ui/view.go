package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"carousel/internal/carousel"
	"carousel/internal/deck"
)

const (
	minStageHeight = 5
	slideMargin    = 2
)

// footerItem is one clickable affordance on the footer row
type footerItem struct {
	el    carousel.Element
	text  string
	start int // first column
	width int
}

// layout describes where things are drawn for the current window size
type layout struct {
	stageHeight int // including the border
	innerWidth  int
	innerHeight int
	footerY     int
	footer      []footerItem
	footerPad   int
}

func (m *Model) layout() layout {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	stageHeight := m.height - 1 - 1 - helpLines
	if stageHeight < minStageHeight {
		stageHeight = minStageHeight
	}
	innerWidth := m.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	l := layout{
		stageHeight: stageHeight,
		innerWidth:  innerWidth,
		innerHeight: stageHeight - 2,
		footerY:     1 + stageHeight,
	}

	l.footer = m.footerItems()
	total := 0
	for i := range l.footer {
		if i > 0 {
			total++
		}
		l.footer[i].start = total
		total += l.footer[i].width
	}
	if pad := (m.width - total) / 2; pad > 0 {
		l.footerPad = pad
		for i := range l.footer {
			l.footer[i].start += pad
		}
	}
	return l
}

// footerItems lists prev controls, then indicators, then next controls
func (m *Model) footerItems() []footerItem {
	var prev, next, inds []footerItem

	for _, ctl := range m.carousel.Controls() {
		text := labelOf(ctl.Element)
		if text == "" {
			if ctl.Action == carousel.ActionPrev {
				text = "‹"
			} else {
				text = "›"
			}
		}
		item := footerItem{el: ctl.Element, text: text, width: ansi.StringWidth(text)}
		if ctl.Action == carousel.ActionPrev {
			prev = append(prev, item)
		} else {
			next = append(next, item)
		}
	}

	for _, ind := range m.carousel.Indicators() {
		text := labelOf(ind.Element)
		if text == "" {
			text = "●"
		}
		inds = append(inds, footerItem{el: ind.Element, text: text, width: ansi.StringWidth(text)})
	}

	items := append(prev, inds...)
	return append(items, next...)
}

func labelOf(el carousel.Element) string {
	if n, ok := el.(*deck.Node); ok {
		return n.Label
	}
	return ""
}

// hitTest returns the footer affordance under a mouse position
func (m *Model) hitTest(x, y int) (carousel.Element, bool) {
	l := m.layout()
	if y != l.footerY {
		return nil, false
	}
	for _, item := range l.footer {
		if x >= item.start && x < item.start+item.width {
			return item.el, true
		}
	}
	return nil, false
}

// View renders the screen
func (m *Model) View() string {
	l := m.layout()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	stage := m.styles.Stage
	if m.surface.Moving() {
		stage = m.styles.StageMoving
	}
	b.WriteString(stage.Render(strings.Join(m.renderStage(l), "\n")))
	b.WriteString("\n")

	b.WriteString(m.renderFooter(l))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.deck.Title
	if title == "" {
		title = "carousel"
	}
	st := m.carousel.State()
	header := m.styles.Title.Render(title) + " " +
		m.styles.Counter.Render(fmt.Sprintf("%d/%d", st.Active+1, m.carousel.Len()))
	if m.status != "" {
		header += "  " + m.styles.Error.Render(m.status)
	} else if m.carousel.Scheduled() {
		header += "  " + m.styles.Status.Render("auto")
	}
	return header
}

func (m *Model) renderFooter(l layout) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", l.footerPad))
	for i, item := range l.footer {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.footerStyle(item).Render(item.text))
	}
	return b.String()
}

func (m *Model) footerStyle(item footerItem) lipgloss.Style {
	if item.el == m.pressed {
		return m.styles.ControlPressed
	}
	if n, ok := item.el.(*deck.Node); ok && n.Kind == deck.KindControl {
		return m.styles.Control
	}
	if m.surface.Active(item.el) {
		return m.styles.IndicatorOn
	}
	return m.styles.Indicator
}

// renderStage composes every visible slide at its current offset
func (m *Model) renderStage(l layout) []string {
	rows := make([][]rune, l.innerHeight)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", l.innerWidth))
	}

	for i, el := range m.carousel.Slides() {
		offset, ok := m.surface.Offset(el)
		if !ok || math.Abs(offset) >= 1 {
			continue
		}
		left := int(math.Round(offset * float64(l.innerWidth)))
		block := slideBlock(m.deck.Slide(i), l.innerWidth, l.innerHeight)
		for r, line := range block {
			for x, ch := range line {
				c := left + x
				if c >= 0 && c < l.innerWidth {
					rows[r][c] = ch
				}
			}
		}
	}

	out := make([]string, len(rows))
	for r, row := range rows {
		out[r] = rowString(row)
	}
	return out
}

// slideBlock lays out one slide as height rows of width cells. A wide rune
// takes its cell and the ones after it, which hold wideTail.
func slideBlock(n *deck.Node, width, height int) [][]rune {
	textWidth := width - 2*slideMargin
	if textWidth < 1 {
		textWidth = 1
	}

	var lines []string
	if n != nil {
		if n.Title != "" {
			lines = append(lines, n.Title, strings.Repeat("─", ansi.StringWidth(n.Title)), "")
		}
		if n.Body != "" {
			lines = append(lines, strings.Split(ansi.Wordwrap(n.Body, textWidth, ""), "\n")...)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	top := (height - len(lines)) / 2
	block := make([][]rune, height)
	for r := range block {
		row := []rune(strings.Repeat(" ", width))
		if i := r - top; i >= 0 && i < len(lines) {
			putCells(row, slideMargin, ansi.Truncate(lines[i], textWidth, ""))
		}
		block[r] = row
	}
	return block
}

// wideTail fills the cells covered by the right part of a wide rune
const wideTail = rune(0)

// putCells writes s into row starting at column col, one cell per column
func putCells(row []rune, col int, s string) {
	for _, ch := range s {
		w := ansi.StringWidth(string(ch))
		if w == 0 {
			continue
		}
		if col+w > len(row) {
			return
		}
		row[col] = ch
		for i := 1; i < w; i++ {
			row[col+i] = wideTail
		}
		col += w
	}
}

// rowString turns cells into text. A wide rune cut by the stage edge or by
// another slide becomes a blank so the row keeps its width.
func rowString(row []rune) string {
	var b strings.Builder
	for c := 0; c < len(row); c++ {
		ch := row[c]
		if ch == wideTail {
			b.WriteRune(' ')
			continue
		}
		w := ansi.StringWidth(string(ch))
		if w <= 1 {
			b.WriteRune(ch)
			continue
		}
		whole := c+w <= len(row)
		for i := 1; whole && i < w; i++ {
			if row[c+i] != wideTail {
				whole = false
			}
		}
		if !whole {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(ch)
		c += w - 1
	}
	return b.String()
}
