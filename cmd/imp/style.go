package main

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// renderer applies styles, or strips them again when color is off.
type renderer struct {
	color bool
}

func newRenderer(color bool) renderer {
	return renderer{color: color}
}

func (r renderer) render(style lipgloss.Style, s string) string {
	out := style.Render(s)
	if !r.color {
		return ansi.Strip(out)
	}
	return out
}

func (r renderer) banner(s string) string { return r.render(bannerStyle, s) }

func (r renderer) name(s string) string { return r.render(nameStyle, s) }

func (r renderer) dim(s string) string { return r.render(dimStyle, s) }

func (r renderer) verdict(ok bool, s string) string {
	if ok {
		return r.render(okStyle, s)
	}
	return r.render(failStyle, s)
}
