package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	Page       lipgloss.Style
	Navbar     lipgloss.Style
	NavScroll  lipgloss.Style
	NavLink    lipgloss.Style
	NavActive  lipgloss.Style
	Logo       lipgloss.Style
	Headline   lipgloss.Style
	Typed      lipgloss.Style
	Caret      lipgloss.Style
	Heading    lipgloss.Style
	Body       lipgloss.Style
	Subtle     lipgloss.Style
	Panel      lipgloss.Style
	Counter    lipgloss.Style
	Label      lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	Button     lipgloss.Style
	ButtonAck  lipgloss.Style
	Cursor     lipgloss.Style
	CursorOver lipgloss.Style
	KeyHint    lipgloss.Style
	Shape      lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Page:  lipgloss.NewStyle().Background(t.Background).Foreground(t.Text),
		Navbar: lipgloss.NewStyle().
			Foreground(t.Text).
			Padding(0, 1),
		NavScroll: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		NavLink:   lipgloss.NewStyle().Foreground(t.Secondary).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true).Padding(0, 1),
		Logo:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Headline:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Typed:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Caret:     lipgloss.NewStyle().Foreground(t.Accent).Blink(true),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Body:   lipgloss.NewStyle().Foreground(t.Text),
		Subtle: lipgloss.NewStyle().Foreground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 2),
		Counter: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(t.Secondary),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Bold(true).
			Padding(0, 2),
		ButtonAck: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true).
			Padding(0, 2),
		Cursor:     lipgloss.NewStyle().Foreground(t.Primary),
		CursorOver: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		KeyHint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Shape:      lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// GradientText colours text from start to end, one rune at a time.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(Blend(start, end, t)))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// ToggleGlyph is the theme toggle icon for a rotation frame. frame < 0 means
// the toggle is at rest.
func ToggleGlyph(t Theme, frame int) string {
	if frame < 0 {
		if t.Name == ThemeLight.Name {
			return "☀"
		}
		return "☾"
	}
	spin := []string{"◐", "◓", "◑", "◒"}
	return spin[frame%len(spin)]
}

// ProgressBar renders a fraction in [0, 1] as a bar of the given width.
func (s Styles) ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return lipgloss.NewStyle().Foreground(s.Theme.Primary).Render(strings.Repeat("█", filled)) +
		s.Subtle.Render(strings.Repeat("░", width-filled))
}

// Separator is a decorative rule.
func (s Styles) Separator(width int) string {
	if width < 8 {
		return s.Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}
