package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/folio/internal/anim"
)

type (
	frameMsg      time.Time
	typeMsg       time.Time
	counterMsg    time.Time
	spinMsg       time.Time
	scrollMsg     time.Time
	loaderDoneMsg struct{}
	ackDoneMsg    struct{}

	mailtoResultMsg struct {
		uri string
		err error
	}
)

// StopMsg halts the particle, typewriter and counter loops. Scrolling and the
// contact acknowledgment keep their own timers, and input is still handled.
type StopMsg struct{}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func typeCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return typeMsg(t) })
}

func counterCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return counterMsg(t) })
}

func spinCmd() tea.Cmd {
	return tea.Tick(toggleSpinFrame, func(t time.Time) tea.Msg { return spinMsg(t) })
}

func loaderCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return loaderDoneMsg{} })
}

func scrollCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return scrollMsg(t) })
}

// ackCmd waits on clock so the acknowledgment window follows the same time
// source as the contact bridge.
func ackCmd(clock anim.Clock, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		<-clock.After(d)
		return ackDoneMsg{}
	}
}
