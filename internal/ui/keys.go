package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.focus != focusNone {
		return m.formKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		return m, m.toggleTheme()
	case "down", "j":
		return m, m.scrollBy(1)
	case "up", "k":
		return m, m.scrollBy(-1)
	case "pgdown", " ":
		return m, m.scrollBy(m.viewRows())
	case "pgup":
		return m, m.scrollBy(-m.viewRows())
	case "home", "g":
		return m, m.scrollHome()
	case "end", "G":
		m.scroller.Cancel()
		m.scrollY = m.maxScroll()
		return m, m.refresh()
	case "c":
		return m, tea.Batch(m.scrollTo("contact"), m.setFocus(focusName))
	case "s":
		m.stopped = true
		m.log.Info("animations stopped")
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(msg.String()[0] - '1')
		if i < len(m.cfg.Sections) {
			return m, m.scrollTo(m.cfg.Sections[i].ID)
		}
	}
	return m, nil
}

func (m Model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.setFocus(focusNone)
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		return m, m.submit()
	case "enter":
		switch m.focus {
		case focusButton:
			return m, m.submit()
		case focusName, focusEmail:
			return m, m.setFocus(m.focus + 1)
		}
	}
	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused form field.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName, focusEmail:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f int) tea.Cmd {
	m.focus = f
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
	switch f {
	case focusName, focusEmail:
		return m.inputs[f].Focus()
	case focusMessage:
		return m.message.Focus()
	}
	return nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX, m.mouseY = msg.X, msg.Y
	m.pointerIn = true
	m.trackPointer()

	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		return m, m.scrollBy(wheelRows)
	case msg.Button == tea.MouseButtonWheelUp:
		return m, m.scrollBy(-wheelRows)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.click()
	}
	return m, nil
}

// trackPointer maps the terminal cell under the mouse to particle-field
// coordinates and updates the hover state.
func (m *Model) trackPointer() {
	pageRow := m.mouseY - navRows + m.scrollRow()
	m.hover = m.mouseY == 0 || (m.geo.buttonRow >= 0 && pageRow == m.geo.buttonRow)

	if m.field == nil || m.canvas == nil {
		return
	}
	if m.mouseY < navRows || m.geo.heroTop < 0 || pageRow < m.geo.heroTop || pageRow >= m.geo.heroTop+m.heroRows {
		m.field.ClearPointer()
		return
	}
	scale := m.canvas.Scale
	x := (float64(m.mouseX)*2 + 1) * scale
	y := (float64(pageRow-m.geo.heroTop)*4 + 2) * scale
	m.field.SetPointer(x, y)
}

func (m Model) click() (tea.Model, tea.Cmd) {
	if m.mouseY == 0 {
		for _, h := range m.navHits() {
			if m.mouseX < h.start || m.mouseX >= h.end {
				continue
			}
			switch h.target {
			case hitLogo:
				return m, m.scrollHome()
			case hitToggle:
				return m, m.toggleTheme()
			default:
				return m, m.scrollTo(h.target)
			}
		}
		return m, nil
	}

	pageRow := m.mouseY - navRows + m.scrollRow()
	for f, r := range m.geo.fieldRows {
		if pageRow >= r.top && pageRow < r.top+r.rows {
			if f == focusButton {
				cmd := m.setFocus(focusButton)
				return m, tea.Batch(cmd, m.submit())
			}
			return m, m.setFocus(f)
		}
	}
	if m.focus != focusNone {
		return m, m.setFocus(focusNone)
	}
	return m, nil
}
