// Package view holds the board's components: thin lipgloss templates plus the handler
// setters presenters use to listen for clicks and submits.
package view

import (
	"strings"
	"time"

	"taskboard-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Theme/palette helpers.
//
// Cards must stay readable on light and dark terminals, so colors are adaptive and
// "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted          lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg      lipgloss.TerminalColor = ac("235", "252")
	colorAccent         lipgloss.TerminalColor = ac("27", "62")
	colorCardBorder     lipgloss.TerminalColor = ac("250", "243")
	colorSelectedBorder lipgloss.TerminalColor = ac("232", "255")
	colorDeadline       lipgloss.TerminalColor = ac("160", "203")
	colorCardMetaFg     lipgloss.TerminalColor = ac("238", "250")
)

var cardColors = map[model.Color]lipgloss.TerminalColor{
	model.ColorBlack:  ac("232", "252"),
	model.ColorYellow: ac("136", "220"),
	model.ColorBlue:   ac("27", "75"),
	model.ColorGreen:  ac("28", "78"),
	model.ColorPink:   ac("162", "212"),
}

func cardColor(c model.Color) lipgloss.TerminalColor {
	if v, ok := cardColors[c]; ok {
		return v
	}
	return colorCardBorder
}

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	styleMeta     = lipgloss.NewStyle().Foreground(colorCardMetaFg)
	styleMuted    = faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
	styleActive   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent)
	styleDeadline = lipgloss.NewStyle().Bold(true).Foreground(colorDeadline)
	styleButton   = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).BorderForeground(colorCardBorder)
	styleFocusBtn = styleButton.BorderForeground(colorSelectedBorder).Bold(true)
)

const (
	defaultWidth = 60
	minWidth     = 24
)

// Layout is shared by the cards of one board. Cards read it on every render, so a resize
// shows up without rebuilding them. A nil Layout renders at the defaults.
type Layout struct {
	Width int
	// Now decides deadline styling.
	Now func() time.Time
}

func NewLayout(width int, now func() time.Time) *Layout {
	l := &Layout{Now: now}
	l.SetWidth(width)
	return l
}

// SetWidth sets the outer card width; zero or less means the default.
func (l *Layout) SetWidth(w int) {
	switch {
	case w <= 0:
		w = defaultWidth
	case w < minWidth:
		w = minWidth
	}
	l.Width = w
}

func (l *Layout) width() int {
	if l == nil || l.Width <= 0 {
		return defaultWidth
	}
	return max(l.Width, minWidth)
}

func (l *Layout) now() time.Time {
	if l == nil || l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	cur := xansi.StringWidth(s)
	switch {
	case cur < w:
		return s + strings.Repeat(" ", w-cur)
	case cur > w:
		return xansi.Cut(s, 0, w) + "\x1b[0m"
	default:
		return s
	}
}

// focus is embedded by components the TUI can move a cursor onto.
type focus struct {
	focused bool
}

func (f *focus) SetFocused(v bool) { f.focused = v }
func (f *focus) Focused() bool     { return f.focused }
