package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/scrollspy"
	"github.com/san-kum/folio/internal/viz"
)

const (
	hitLogo   = "\x00logo"
	hitToggle = "\x00toggle"
)

// span is a block of page rows.
type span struct{ top, rows int }

// geometry is where things landed on the page, in page rows.
type geometry struct {
	total        int
	sectionTops  map[string]int
	heroTop      int
	achievements span
	timeline     []span
	fieldRows    map[int]span
	buttonRow    int
}

type navHit struct {
	start, end int
	target     string
}

// View renders the TUI interface.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.loading {
		return m.splash()
	}

	lines, _ := m.render()
	top := min(m.scrollRow(), max(0, len(lines)-1))
	bottom := min(len(lines), top+m.viewRows())
	visible := lines[top:bottom]
	for len(visible) < m.viewRows() {
		visible = append(visible, "")
	}

	var b strings.Builder
	b.WriteString(m.navbar())
	b.WriteByte('\n')
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteByte('\n')
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) splash() string {
	logo := m.styles.Logo.Render("<" + m.cfg.Name + " />")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		logo+"\n\n"+m.styles.Subtle.Render("loading"))
}

func (m Model) navbar() string {
	var b strings.Builder
	b.WriteString(m.styles.Logo.Render("<" + m.cfg.Name + " />"))
	b.WriteString("  ")
	for _, l := range m.links {
		if l.Active {
			b.WriteString(m.styles.NavActive.Render(m.sectionTitle(l.Target)))
		} else {
			b.WriteString(m.styles.NavLink.Render(m.sectionTitle(l.Target)))
		}
	}
	b.WriteString("  ")
	b.WriteString(viz.ToggleGlyph(m.theme, m.toggleFrame))

	style := m.styles.Navbar
	if scrollspy.Scrolled(m.scrollY, m.cfg.Scroll.NavbarThreshold) {
		style = m.styles.NavScroll
	}
	bar := style.Width(m.width).Render(b.String())
	rows := strings.Split(bar, "\n")
	for len(rows) < navRows {
		rows = append(rows, "")
	}
	return strings.Join(rows[:navRows], "\n")
}

// navHits returns the clickable column ranges of the navbar row.
func (m Model) navHits() []navHit {
	var hits []navHit
	col := m.styles.Navbar.GetPaddingLeft()
	w := lipgloss.Width(m.styles.Logo.Render("<" + m.cfg.Name + " />"))
	hits = append(hits, navHit{col, col + w, hitLogo})
	col += w + 2
	for _, l := range m.links {
		style := m.styles.NavLink
		if l.Active {
			style = m.styles.NavActive
		}
		w := lipgloss.Width(style.Render(m.sectionTitle(l.Target)))
		hits = append(hits, navHit{col, col + w, l.Target})
		col += w
	}
	col += 2
	hits = append(hits, navHit{col, col + 1, hitToggle})
	return hits
}

func (m Model) footer() string {
	hint := "↑↓ scroll  1-9 jump  g top  t theme  c contact  s stop  q quit"
	if m.focus != focusNone {
		hint = "tab next field  enter/ctrl+s send  esc leave form"
	}
	if m.stopped {
		hint += "  [stopped]"
	}
	return m.styles.KeyHint.Render(hint)
}

func (m Model) sectionTitle(id string) string {
	for _, s := range m.cfg.Sections {
		if s.ID == id {
			if s.Title != "" {
				return s.Title
			}
			return s.ID
		}
	}
	return id
}

// render lays out the whole page and reports where each block landed.
func (m Model) render() ([]string, geometry) {
	geo := geometry{
		sectionTops: make(map[string]int, len(m.cfg.Sections)),
		fieldRows:   make(map[int]span),
		heroTop:     -1,
		buttonRow:   -1,
	}
	var lines []string
	add := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}

	for _, sec := range m.cfg.Sections {
		geo.sectionTops[sec.ID] = len(lines)
		switch sec.ID {
		case "home":
			m.renderHero(&lines, &geo, sec, add)
		case "experience":
			add(m.styles.Heading.Render(sec.Title))
			m.renderBody(sec, add)
			m.renderTimeline(&lines, &geo, add)
		case "achievements":
			add(m.styles.Heading.Render(sec.Title))
			m.renderBody(sec, add)
			m.renderCounters(&lines, &geo, add)
		case "contact":
			add(m.styles.Heading.Render(sec.Title))
			m.renderBody(sec, add)
			m.renderForm(&lines, &geo, add)
		default:
			add(m.styles.Heading.Render(sec.Title))
			m.renderBody(sec, add)
		}
		add("")
		add(m.styles.Separator(min(m.width, 72)))
	}
	geo.total = len(lines)
	return lines, geo
}

func (m Model) renderBody(sec config.Section, add func(string)) {
	for _, l := range sec.Lines {
		add(m.styles.Body.Render(l))
	}
}

func (m Model) renderHero(lines *[]string, geo *geometry, sec config.Section, add func(string)) {
	add("")
	add(m.styles.Subtle.Render("Hi, I'm ") + viz.GradientText(m.cfg.Name, m.theme.Primary, m.theme.Accent))
	if m.typer != nil {
		add(m.styles.Typed.Render(m.typed) + m.styles.Caret.Render("▌"))
	}
	add(m.ornamentRow())

	if m.canvas != nil {
		if m.field != nil {
			m.field.Render(m.canvas)
			m.drawCursor()
		} else {
			m.canvas.Clear()
		}
		geo.heroTop = len(*lines)
		add(m.canvas.Render(m.theme.Particle, m.theme.Background))
	}
	m.renderBody(sec, add)
}

// drawCursor rings the pointer on the particle canvas.
func (m Model) drawCursor() {
	x, y, ok := m.field.Pointer()
	if !ok || !m.pointerIn {
		return
	}
	r := 2.0
	if m.hover {
		r = 3.0
	}
	cx, cy := x/m.canvas.Scale, y/m.canvas.Scale
	for a := 0.0; a < 2*math.Pi; a += math.Pi / 8 {
		m.canvas.Set(int(cx+r*math.Cos(a)), int(cy+r*math.Sin(a)))
	}
}

// ornamentRow places the decorative shapes, shifted by pointer parallax.
func (m Model) ornamentRow() string {
	if m.width <= 0 {
		return ""
	}
	row := []rune(strings.Repeat(" ", m.width))
	px, py := float64(m.width)/2, float64(m.height)/2
	if m.pointerIn {
		px, py = float64(m.mouseX), float64(m.mouseY)
	}
	for _, o := range ornaments {
		dx, _ := Parallax(px, py, float64(m.width), float64(m.height), o.index, o.base)
		col := int(o.anchor*float64(m.width) + dx)
		if col >= 0 && col < len(row) {
			row[col] = []rune(o.glyph)[0]
		}
	}
	return m.styles.Shape.Render(string(row))
}

func (m Model) renderTimeline(lines *[]string, geo *geometry, add func(string)) {
	for i, item := range m.cfg.Timeline {
		top := len(*lines)
		if i < len(m.revealed) && m.revealed[i] {
			add(m.styles.Label.Render(item.Period))
			add(m.styles.Headline.Render(item.Title) + m.styles.Subtle.Render(" @ "+item.Org))
			add(m.styles.Body.Render("  " + item.Summary))
		} else {
			add("")
			add("")
			add("")
		}
		geo.timeline = append(geo.timeline, span{top, len(*lines) - top})
	}
}

func (m Model) renderCounters(lines *[]string, geo *geometry, add func(string)) {
	top := len(*lines)
	texts := m.counters.Texts()
	for i, spec := range m.counters.Specs() {
		value := m.styles.Counter.Width(8).Align(lipgloss.Right).Render(texts[i])
		add(fmt.Sprintf("%s  %s  %s", value, m.styles.ProgressBar(m.counters.Progress(i), 20), m.styles.Label.Render(spec.Label)))
	}
	geo.achievements = span{top, len(*lines) - top}
}

func (m Model) renderForm(lines *[]string, geo *geometry, add func(string)) {
	box := func(f int, view string) {
		style := m.styles.Input
		if m.focus == f {
			style = m.styles.InputFocus
		}
		top := len(*lines)
		add(style.Render(view))
		geo.fieldRows[f] = span{top, len(*lines) - top}
	}
	box(focusName, m.inputs[0].View())
	box(focusEmail, m.inputs[1].View())
	box(focusMessage, m.message.View())

	button := m.styles.Button
	if m.bridge.Acknowledging() {
		button = m.styles.ButtonAck
	}
	label := m.bridge.ButtonLabel()
	if m.focus == focusButton && !m.bridge.Acknowledging() {
		label = "▶ " + label
	}
	geo.buttonRow = len(*lines)
	geo.fieldRows[focusButton] = span{geo.buttonRow, 1}
	add(button.Render(label))
}
