// Package ui renders the portfolio page as a Bubble Tea program and routes
// terminal events to the page effects.
package ui

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/folio/internal/anim"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/contact"
	"github.com/san-kum/folio/internal/counter"
	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/prefs"
	"github.com/san-kum/folio/internal/scrollspy"
	"github.com/san-kum/folio/internal/typewriter"
	"github.com/san-kum/folio/internal/viz"
)

const (
	navRows    = 2
	footerRows = 1

	toggleSpinFrame  = 75 * time.Millisecond
	toggleSpinFrames = 4

	wheelRows = 3
)

const (
	focusNone = iota - 1
	focusName
	focusEmail
	focusMessage
	focusButton
	focusCount
)

// Deps are the collaborators a Model needs. Nil Logger, Clock and Rand get
// sensible defaults.
type Deps struct {
	Config *config.Config
	Store  prefs.Store
	Opener contact.Opener
	Logger *zap.Logger
	Clock  anim.Clock
	Rand   *rand.Rand
}

// Model is the portfolio page.
type Model struct {
	cfg    *config.Config
	log    *zap.Logger
	store  prefs.Store
	opener contact.Opener
	clock  anim.Clock
	rng    *rand.Rand

	width, height int
	loading       bool
	stopped       bool

	theme       viz.Theme
	styles      viz.Styles
	toggleFrame int

	typer *typewriter.Cycle
	typed string

	field    *particles.Field
	canvas   *viz.Canvas
	heroRows int

	spy       *scrollspy.Spy
	links     []scrollspy.Link
	scroller  *scrollspy.SmoothScroller
	scrollY   float64
	scrolling bool
	geo       geometry

	counters        *counter.Animation
	countersTicking bool
	revealed        []bool

	inputs  []textinput.Model
	message textarea.Model
	focus   int
	bridge  *contact.Bridge
	outbox  *outbox

	mouseX, mouseY int
	pointerIn      bool
	hover          bool
}

// outbox is the Opener handed to the contact bridge. It only records the URI
// so the actual hand-off can run outside the update loop.
type outbox struct{ uri string }

func (o *outbox) Open(uri string) error {
	o.uri = uri
	return nil
}

func New(d Deps) Model {
	cfg := d.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := d.Clock
	if clock == nil {
		clock = anim.Real()
	}
	rng := d.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	store := d.Store
	if store == nil {
		store = prefs.NewMemoryStore()
	}

	theme, err := prefs.LoadTheme(store)
	if err != nil {
		log.Warn("theme preference unavailable", zap.Error(err))
	}

	m := Model{
		cfg:         cfg,
		log:         log,
		store:       store,
		opener:      d.Opener,
		clock:       clock,
		rng:         rng,
		loading:     cfg.Loader > 0,
		toggleFrame: -1,
		scroller:    scrollspy.NewSmoothScroller(cfg.FPS),
		counters:    counter.New(cfg.Counters),
		revealed:    make([]bool, len(cfg.Timeline)),
		focus:       focusNone,
		outbox:      &outbox{},
	}
	m.applyTheme(viz.GetTheme(theme))

	if len(cfg.Phrases) > 0 {
		typer, err := typewriter.New(cfg.Phrases, cfg.Typing)
		if err != nil {
			log.Warn("typewriter disabled", zap.Error(err))
		} else {
			m.typer = typer
		}
	}

	m.inputs = make([]textinput.Model, 2)
	for i, placeholder := range []string{"Your Name", "your@email.com"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = ""
		in.CharLimit = 120
		m.inputs[i] = in
	}
	m.message = textarea.New()
	m.message.Placeholder = "Your Message"
	m.message.ShowLineNumbers = false
	m.message.SetHeight(3)

	m.bridge = contact.NewBridge(cfg.Contact.Recipient, m.outbox, clock)
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.loading {
		cmds = append(cmds, loaderCmd(m.cfg.Loader))
	}
	if m.typer != nil {
		cmds = append(cmds, typeCmd(0))
	}
	cmds = append(cmds, frameCmd(m.cfg.FrameInterval()))
	m.log.Info("page started", zap.Int("fps", m.cfg.FPS), zap.Int("sections", len(m.cfg.Sections)))
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.pointerIn = false
		if m.field != nil {
			m.field.ClearPointer()
		}
		return m, nil

	case StopMsg:
		m.stopped = true
		m.log.Info("animations stopped")
		return m, nil

	case loaderDoneMsg:
		m.loading = false
		return m, nil

	case frameMsg:
		if m.stopped {
			return m, nil
		}
		if m.field != nil {
			m.field.Step()
		}
		return m, frameCmd(m.cfg.FrameInterval())

	case scrollMsg:
		if !m.scroller.Active() {
			m.scrolling = false
			return m, nil
		}
		m.scrollY = m.clampScroll(m.scroller.Step())
		return m, tea.Batch(m.refresh(), scrollCmd(m.cfg.FrameInterval()))

	case ackDoneMsg:
		if m.bridge.Tick() {
			m.resetForm()
			return m, nil
		}
		if m.bridge.Acknowledging() {
			return m, ackCmd(m.clock, m.bridge.Remaining())
		}
		return m, nil

	case typeMsg:
		if m.stopped || m.typer == nil {
			return m, nil
		}
		text, delay := m.typer.Step()
		m.typed = text
		return m, typeCmd(delay)

	case counterMsg:
		if m.stopped || !m.counters.Step() {
			m.countersTicking = false
			return m, nil
		}
		return m, counterCmd(m.counters.Interval())

	case spinMsg:
		if m.toggleFrame < 0 {
			return m, nil
		}
		m.toggleFrame++
		if m.toggleFrame >= toggleSpinFrames {
			m.toggleFrame = -1
			return m, nil
		}
		return m, spinCmd()

	case mailtoResultMsg:
		if msg.err != nil {
			m.log.Warn("mail client hand-off failed", zap.Error(msg.err))
		} else {
			m.log.Info("mail client opened")
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.heroRows = max(6, h-navRows-footerRows-8)

	scale := m.cfg.Particles.Scale
	m.canvas = viz.NewCanvas(w, m.heroRows, scale)
	bw, bh := m.canvas.Bounds()

	if m.cfg.Particles.Enabled && m.hasSection("home") {
		if m.field == nil {
			field, err := particles.New(m.cfg.Particles.Params, bw, bh, m.rng)
			if err != nil {
				m.log.Warn("particle field disabled", zap.Error(err))
			} else {
				m.field = field
				m.log.Info("particle field ready", zap.Int("particles", field.Len()))
			}
		} else if err := m.field.Resize(bw, bh); err != nil {
			m.log.Debug("particle resize skipped", zap.Error(err))
		}
	}

	for i := range m.inputs {
		m.inputs[i].Width = max(10, min(w-8, 60))
	}
	m.message.SetWidth(max(10, min(w-6, 62)))
}

// refresh recomputes page geometry after a layout or scroll change and
// reacts to what became visible.
func (m *Model) refresh() tea.Cmd {
	_, m.geo = m.render()
	m.scrollY = m.clampScroll(m.scrollY)

	units := m.cfg.Scroll.RowUnits
	sections := make([]scrollspy.Section, 0, len(m.cfg.Sections))
	for _, s := range m.cfg.Sections {
		sections = append(sections, scrollspy.Section{ID: s.ID, Top: float64(m.geo.sectionTops[s.ID]) * units})
	}
	m.spy = scrollspy.New(sections, m.cfg.SectionIDs(), m.cfg.Scroll.Offset)
	m.links = m.spy.Update(m.scrollY)

	return m.observe()
}

// observe reveals timeline items and starts the counters once their rows
// intersect the viewport.
func (m *Model) observe() tea.Cmd {
	top := m.scrollRow()
	bottom := top + m.viewRows()

	margin := int(math.Ceil(50 / m.cfg.Scroll.RowUnits))
	for i, item := range m.geo.timeline {
		if i >= len(m.revealed) || m.revealed[i] {
			continue
		}
		if visibleRatio(item, top, bottom-margin) >= 0.1 {
			m.revealed[i] = true
		}
	}

	if m.geo.achievements.rows > 0 && m.counters.Trigger(visibleRatio(m.geo.achievements, top, bottom)) {
		m.log.Info("counters started")
		if !m.counters.Done() {
			m.countersTicking = true
			return counterCmd(m.counters.Interval())
		}
	}
	return nil
}

func visibleRatio(s span, top, bottom int) float64 {
	if s.rows <= 0 {
		return 0
	}
	overlap := min(s.top+s.rows, bottom) - max(s.top, top)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(s.rows)
}

func (m *Model) viewRows() int {
	return max(1, m.height-navRows-footerRows)
}

func (m *Model) scrollRow() int {
	return int(m.scrollY / m.cfg.Scroll.RowUnits)
}

func (m *Model) maxScroll() float64 {
	return float64(max(0, m.geo.total-m.viewRows())) * m.cfg.Scroll.RowUnits
}

func (m *Model) clampScroll(y float64) float64 {
	return math.Max(0, math.Min(y, m.maxScroll()))
}

func (m *Model) scrollBy(rows int) tea.Cmd {
	m.scroller.Cancel()
	m.scrollY = m.clampScroll(m.scrollY + float64(rows)*m.cfg.Scroll.RowUnits)
	return m.refresh()
}

// scrollTo eases to a section's top edge.
func (m *Model) scrollTo(id string) tea.Cmd {
	if m.spy == nil {
		return nil
	}
	top, ok := m.spy.Top(id)
	if !ok {
		return nil
	}
	m.scroller.ScrollTo(m.scrollY, m.clampScroll(top))
	return m.startScroll()
}

func (m *Model) scrollHome() tea.Cmd {
	m.scroller.ScrollTo(m.scrollY, 0)
	return m.startScroll()
}

// startScroll runs the scroll tick chain unless one is already running.
func (m *Model) startScroll() tea.Cmd {
	if m.scrolling {
		return nil
	}
	m.scrolling = true
	return scrollCmd(m.cfg.FrameInterval())
}

func (m *Model) hasSection(id string) bool {
	for _, s := range m.cfg.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (m *Model) applyTheme(t viz.Theme) {
	m.theme = t
	m.styles = viz.NewStyles(t)
}

func (m *Model) toggleTheme() tea.Cmd {
	next := m.theme.Name.Toggle()
	if err := prefs.SaveTheme(m.store, next); err != nil {
		m.log.Warn("theme preference not saved", zap.Error(err))
	}
	m.applyTheme(viz.GetTheme(next))
	m.log.Info("theme toggled", zap.Stringer("theme", next))
	m.toggleFrame = 0
	return spinCmd()
}

func (m *Model) submit() tea.Cmd {
	form := contact.Form{
		Name:    m.inputs[0].Value(),
		Email:   m.inputs[1].Value(),
		Message: m.message.Value(),
	}
	uri, err := m.bridge.Submit(form)
	if err != nil {
		m.log.Warn("contact form not sent", zap.Error(err))
		return nil
	}
	m.log.Info("contact form submitted", zap.Int("uri_len", len(uri)))
	ack := ackCmd(m.clock, m.bridge.Remaining())
	opener := m.opener
	if opener == nil {
		return ack
	}
	return tea.Batch(ack, func() tea.Msg {
		return mailtoResultMsg{uri: uri, err: opener.Open(uri)}
	})
}

func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
}

// Accessors used by the command line and tests.

func (m Model) Theme() prefs.Theme { return m.theme.Name }
func (m Model) Typed() string { return m.typed }
func (m Model) ScrollY() float64 { return m.scrollY }
func (m Model) Links() []scrollspy.Link { return m.links }
func (m Model) Counters() []string { return m.counters.Texts() }
func (m Model) Stopped() bool { return m.stopped }
func (m Model) Field() *particles.Field { return m.field }
func (m Model) Acknowledging() bool { return m.bridge.Acknowledging() }
func (m Model) LastMailto() string { return m.outbox.uri }
func (m Model) Revealed() []bool { return append([]bool(nil), m.revealed...) }
func (m Model) Loading() bool { return m.loading }
func (m Model) Focus() int { return m.focus }
func (m Model) Scrolling() bool { return m.scroller.Active() }
