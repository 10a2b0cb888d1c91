package main

import "github.com/charmbracelet/lipgloss"

type colorPalette struct {
	text      lipgloss.AdaptiveColor
	textMuted lipgloss.AdaptiveColor
	accent    lipgloss.AdaptiveColor
	good      lipgloss.AdaptiveColor
	bad       lipgloss.AdaptiveColor
	border    lipgloss.AdaptiveColor
	selection lipgloss.AdaptiveColor
}

var palette = colorPalette{
	text:      lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#e6e6e6"},
	textMuted: lipgloss.AdaptiveColor{Light: "#6b6b6b", Dark: "#8a8a8a"},
	accent:    lipgloss.AdaptiveColor{Light: "#5a32a3", Dark: "#a277ff"},
	good:      lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34d399"},
	bad:       lipgloss.AdaptiveColor{Light: "#be123c", Dark: "#fb7185"},
	border:    lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#3a3a3a"},
	selection: lipgloss.AdaptiveColor{Light: "#ede9fe", Dark: "#2d2250"},
}

type styles struct {
	app, topBar                      lipgloss.Style
	breadcrumbs, breadcrumbLink      lipgloss.Style
	sidebarTitle, groupHead          lipgloss.Style
	panel, panelFocused              lipgloss.Style
	columnTitle                      lipgloss.Style
	alert                            lipgloss.Style
	statusBar, statusSeg, statusHint lipgloss.Style
	listItem, listSel                lipgloss.Style
	good, bad                        lipgloss.Style
	filterLabel, filterDisabled      lipgloss.Style
	cmdOverlay, cmdPrompt, cmdHint   lipgloss.Style
	shortcutHint                     lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	panelBorder := lipgloss.NormalBorder()
	focusedBorder := lipgloss.DoubleBorder()

	return styles{
		app:            base,
		topBar:         base.Padding(0, 1).Bold(true),
		breadcrumbs:    base.Padding(0, 1),
		breadcrumbLink: base.Foreground(palette.accent),
		sidebarTitle:   base.Copy().Bold(true).Padding(0, 1),
		groupHead:      base.Copy().Bold(true).Foreground(palette.textMuted).Padding(0, 1),
		panel:          base.BorderStyle(panelBorder).BorderForeground(palette.border),
		panelFocused:   base.BorderStyle(focusedBorder).BorderForeground(palette.accent),
		columnTitle:    base.Copy().Bold(true).Padding(0, 1),
		alert:          base.Border(lipgloss.RoundedBorder()).BorderForeground(palette.accent).Padding(0, 1),
		statusBar:      base.Padding(0, 1),
		statusSeg:      base.Padding(0, 1).MarginRight(1).Foreground(palette.textMuted),
		statusHint:     base.Foreground(palette.textMuted),
		listItem:       base.Padding(0, 1),
		listSel:        base.Padding(0, 1).Bold(true).Foreground(palette.accent),
		good:           base.Foreground(palette.good),
		bad:            base.Foreground(palette.bad),
		filterLabel:    base.Foreground(palette.textMuted),
		filterDisabled: base.Faint(true),
		cmdOverlay:     base.Border(lipgloss.RoundedBorder()).Padding(1, 2),
		cmdPrompt:      base.Copy().Bold(true),
		cmdHint:        base.Copy().Faint(true),
		shortcutHint:   base.Foreground(palette.textMuted),
	}
}
