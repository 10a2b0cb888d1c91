package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// videoTableColumn renders the paged catalog window. It owns only the
// cursor; rows arrive pre-filtered, pre-sorted, and pre-paged from the
// pipeline.
type videoTableColumn struct {
	title    string
	table    table.Model
	rows     []VideoRecord
	width    int
	height   int
	onSelect func(rec VideoRecord) tea.Cmd
}

func newVideoTableColumn(title string) *videoTableColumn {
	columns := []table.Column{
		{Title: "Watched", Width: 8},
		{Title: "Title", Width: 40},
		{Title: "Folder", Width: 32},
		{Title: "Duration", Width: 10},
		{Title: "Size", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	tStyles := table.DefaultStyles()
	tStyles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.textMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.border).
		Padding(0, 1)
	tStyles.Cell = lipgloss.NewStyle().Padding(0, 1)
	tStyles.Selected = lipgloss.NewStyle().
		Foreground(palette.text).
		Background(palette.selection).
		Padding(0, 1)
	t.SetStyles(tStyles)

	return &videoTableColumn{title: title, table: t}
}

func (c *videoTableColumn) SetOnSelect(fn func(rec VideoRecord) tea.Cmd) {
	c.onSelect = fn
}

// SetRows replaces the visible window, keeping the cursor on the same
// record when it survives the refresh.
func (c *videoTableColumn) SetRows(rows []VideoRecord) {
	selectedID := ""
	if rec, ok := c.SelectedRecord(); ok {
		selectedID = rec.ID
	}
	c.rows = append([]VideoRecord(nil), rows...)
	tableRows := make([]table.Row, len(rows))
	for i, rec := range rows {
		tableRows[i] = buildVideoRow(rec)
	}
	c.table.SetRows(tableRows)
	if len(tableRows) == 0 {
		return
	}
	target := 0
	if selectedID != "" {
		for idx, rec := range c.rows {
			if rec.ID == selectedID {
				target = idx
				break
			}
		}
	}
	if target >= len(tableRows) {
		target = len(tableRows) - 1
	}
	c.table.SetCursor(target)
}

func buildVideoRow(rec VideoRecord) table.Row {
	watched := "✗"
	if rec.Watched {
		watched = "✓"
	}
	title := rec.Title
	if !rec.Exists {
		title += " (missing)"
	}
	return table.Row{
		watched,
		title,
		folderOf(rec.FilePath),
		durationClock(rec.DurationNanos),
		fileSizeHuman(rec.SizeBytes),
	}
}

func (c *videoTableColumn) SelectedRecord() (VideoRecord, bool) {
	cursor := c.table.Cursor()
	if cursor < 0 || cursor >= len(c.rows) {
		return VideoRecord{}, false
	}
	return c.rows[cursor], true
}

func (c *videoTableColumn) SetSize(width, height int) {
	if width < 40 {
		width = 40
	}
	if height < 5 {
		height = 5
	}
	c.width = width
	c.height = height

	watchedWidth := 8
	durationWidth := 10
	sizeWidth := 11
	rest := width - watchedWidth - durationWidth - sizeWidth - 12
	titleWidth := maxInt(rest*3/5, 20)
	folderWidth := maxInt(rest-titleWidth, 16)

	c.table.SetColumns([]table.Column{
		{Title: "Watched", Width: watchedWidth},
		{Title: "Title", Width: titleWidth},
		{Title: "Folder", Width: folderWidth},
		{Title: "Duration", Width: durationWidth},
		{Title: "Size", Width: sizeWidth},
	})
	c.table.SetHeight(height - 3)
}

func (c *videoTableColumn) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "enter" && c.onSelect != nil {
			if rec, ok := c.SelectedRecord(); ok {
				if run := c.onSelect(rec); run != nil {
					cmds = append(cmds, run)
				}
			}
		}
	}
	return tea.Batch(cmds...)
}

func (c *videoTableColumn) View(s styles, focused bool) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.columnTitle.Render(c.title),
		c.table.View(),
	)
	if focused {
		return s.panelFocused.Width(c.width).Render(body)
	}
	return s.panel.Width(c.width).Render(body)
}

// sidebarAction identifies one sidebar menu entry.
type sidebarAction int

const (
	sidebarActionReload sidebarAction = iota
	sidebarActionEnableBoost
	sidebarActionCycleBoost
	sidebarActionCycleTheme
	sidebarActionSettings
	sidebarActionCopyPath
)

type sidebarActionMsg struct {
	action sidebarAction
}

type listEntry struct {
	title   string
	desc    string
	payload sidebarAction
}

func (e listEntry) Title() string       { return e.title }
func (e listEntry) Description() string { return e.desc }
func (e listEntry) FilterValue() string { return e.title }

// sidebarColumn is the collapsible menu on the left: library actions,
// audio boost controls, preferences.
type sidebarColumn struct {
	title  string
	model  list.Model
	width  int
	height int
}

func newSidebarColumn(title string, s styles) *sidebarColumn {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = s.listSel
	delegate.Styles.SelectedDesc = s.listSel.Copy().Faint(true)
	delegate.Styles.NormalTitle = s.listItem
	delegate.Styles.NormalDesc = s.listItem.Foreground(palette.textMuted)

	m := list.New(nil, delegate, 30, 20)
	m.Title = title
	m.SetShowStatusBar(false)
	m.SetFilteringEnabled(false)
	m.SetShowHelp(false)
	m.SetShowPagination(false)

	return &sidebarColumn{title: title, model: m}
}

// Refresh rebuilds the entries from live command state so the menu never
// shows stale values.
func (c *sidebarColumn) Refresh(set *commandSet, theme uiTheme) {
	boostDesc := "Shift+Alt+A"
	if set.boostEnabled.Value() {
		boostDesc = "enabled"
	}
	entries := []list.Item{
		listEntry{title: "Reload data", desc: "rescan server library", payload: sidebarActionReload},
		listEntry{title: "Enable audio boost", desc: boostDesc, payload: sidebarActionEnableBoost},
		listEntry{
			title:   fmt.Sprintf("Boost limit: %d%%", set.boostLimit.Value()),
			desc:    boostLimitDesc(set),
			payload: sidebarActionCycleBoost,
		},
		listEntry{title: "Theme: " + themeLabel(theme), desc: "Shift+Alt+T", payload: sidebarActionCycleTheme},
		listEntry{title: "Settings", desc: "F1", payload: sidebarActionSettings},
		listEntry{title: "Copy file path", desc: "highlighted video", payload: sidebarActionCopyPath},
	}
	index := c.model.Index()
	c.model.SetItems(entries)
	if index >= 0 && index < len(entries) {
		c.model.Select(index)
	}
}

func boostLimitDesc(set *commandSet) string {
	if !set.boostLimit.Enabled() {
		return "enable boost first"
	}
	labels := make([]string, len(boostGains))
	for i, gain := range boostGains {
		labels[i] = fmt.Sprintf("%d", gain)
	}
	return strings.Join(labels, "/") + "%"
}

func (c *sidebarColumn) SetSize(width, height int) {
	c.width = width
	if height < 3 {
		height = 3
	}
	c.height = height
	c.model.SetSize(width, height-2)
}

func (c *sidebarColumn) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if entry, ok := c.model.SelectedItem().(listEntry); ok {
			action := entry.payload
			return func() tea.Msg { return sidebarActionMsg{action: action} }
		}
	}
	var cmd tea.Cmd
	c.model, cmd = c.model.Update(msg)
	return cmd
}

func (c *sidebarColumn) View(s styles, focused bool) string {
	body := lipgloss.JoinVertical(lipgloss.Left, s.sidebarTitle.Render(c.title), c.model.View())
	if focused {
		return s.panelFocused.Width(c.width).Render(body)
	}
	return s.panel.Width(c.width).Render(body)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
