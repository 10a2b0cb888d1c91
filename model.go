package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusFilterWatched
	focusFilterTitle
	focusFilterFolder
	focusTable
	focusPlayer
)

type videoChosenMsg struct {
	rec VideoRecord
}

type keyMap struct {
	quit        key.Binding
	nextFocus   key.Binding
	prevFocus   key.Binding
	prevPage    key.Binding
	nextPage    key.Binding
	growPage    key.Binding
	shrinkPage  key.Binding
	toggleBoost key.Binding
	toggleSide  key.Binding
	themeSel    key.Binding
	palette     key.Binding
	toggleLogs  key.Binding
	copyPath    key.Binding
	cycleSort   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		nextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		prevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		prevPage: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "prev page"),
		),
		nextPage: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "next page"),
		),
		growPage: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑", "more per page"),
		),
		shrinkPage: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("alt+↓", "fewer per page"),
		),
		toggleBoost: key.NewBinding(
			key.WithKeys("alt+A"),
			key.WithHelp("shift+alt+a", "audio boost"),
		),
		toggleSide: key.NewBinding(
			key.WithKeys("alt+H"),
			key.WithHelp("shift+alt+h", "sidebar"),
		),
		themeSel: key.NewBinding(
			key.WithKeys("alt+T"),
			key.WithHelp("shift+alt+t", "theme selector"),
		),
		palette: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "settings"),
		),
		toggleLogs: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("F6", "toggle logs"),
		),
		copyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),
		cycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.nextFocus,
		k.prevPage,
		k.nextPage,
		k.palette,
		k.toggleSide,
		k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nextFocus, k.prevFocus},
		{k.prevPage, k.nextPage, k.growPage, k.shrinkPage},
		{k.toggleBoost, k.toggleSide, k.themeSel, k.palette},
		{k.copyPath, k.cycleSort, k.toggleLogs, k.quit},
	}
}

type model struct {
	width  int
	height int

	styles styles
	keys   keyMap
	help   help.Model
	theme  uiTheme

	uiConfig     *uiConfig
	uiConfigPath string
	prefs        *prefStore
	telemetry    *telemetryLogger

	commands   *commandSet
	dispatch   *dispatcher
	pipe       *pipeline
	pager      *pageController
	client     *catalogClient
	player     *playerState
	playback   *playbackManager
	catalog    []VideoRecord
	catalogAge string

	sidebar       *sidebarColumn
	table         *videoTableColumn
	filterWatched textinput.Model
	filterTitle   textinput.Model
	filterFolder  textinput.Model

	focus focusArea

	showLogs   bool
	logsHeight int
	logs       viewport.Model
	logLines   []string

	spinner       spinner.Model
	spinnerActive bool

	paletteIndex int
	themeIndex   int

	toastMessage string
	toastExpires time.Time
}

func initialModel(cfg *uiConfig, cfgPath string) *model {
	s := newStyles()
	m := &model{
		styles:       s,
		keys:         newKeyMap(),
		help:         help.New(),
		theme:        currentUITheme(),
		uiConfig:     cfg,
		uiConfigPath: cfgPath,
		showLogs:     false,
		logsHeight:   6,
		logLines: []string{
			"[INFO] Fetching catalog…",
			"[TIP] Alt+←/→ turn pages, Alt+↑/↓ change the page size.",
		},
	}

	m.help.ShortSeparator = " │ "
	m.help.Styles.ShortKey = s.statusHint.Copy()
	m.help.Styles.ShortDesc = s.statusHint.Copy()
	m.help.Styles.ShortSeparator = s.statusSeg.Copy()

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.spinner.Style = s.statusHint.Copy().Bold(true)

	m.telemetry = newTelemetryLogger(filepath.Join(resolveConfigDir(), "ui-events.ndjson"))

	if prefs, err := openPrefStore(); err == nil {
		m.prefs = prefs
	} else {
		m.appendLog("[WARN] preference store unavailable: " + err.Error())
	}

	sidebarOpen := true
	if open, ok := m.prefs.GetBool(prefKeySidebarOpen); ok {
		sidebarOpen = open
	}

	m.player = newPlayerState()
	m.playback = newPlaybackManager()
	m.client = newCatalogClient(cfg.apiEndpoint())
	m.pipe = newPipeline(cfg.priorityFolder())
	m.pager = newPageController()
	if size, ok := m.prefs.GetInt(prefKeyItemsPerPage); ok {
		m.pager.SetSize(size)
	}

	m.commands = newCommandSet(commandHooks{
		startBoostAttach: func() tea.Cmd {
			m.telemetry.Event("boost.enabled", nil)
			return m.player.StartAttach()
		},
		sidebarChanged: func(open bool) {
			m.prefs.SetBool(prefKeySidebarOpen, open)
		},
		boostGainChanged: func(percent int) {
			m.telemetry.Event("boost.gain", map[string]string{"percent": fmt.Sprint(percent)})
		},
		videoSelected: func(rec *VideoRecord) tea.Cmd {
			return m.startPlayback(rec)
		},
	}, sidebarOpen)
	m.dispatch = newDispatcher(m.commands.reg, m.pager, m.player)

	m.sidebar = newSidebarColumn("[NX] Video Player", s)
	m.sidebar.Refresh(m.commands, m.theme)

	m.table = newVideoTableColumn("Videos")
	m.table.SetOnSelect(func(rec VideoRecord) tea.Cmd {
		return func() tea.Msg { return videoChosenMsg{rec: rec} }
	})

	m.filterWatched = newFilterInput("YTS/NF", 4)
	m.filterTitle = newFilterInput("Video title", 128)
	m.filterFolder = newFilterInput("Video path", 128)

	m.logs = viewport.New(80, m.logsHeight)
	m.focus = focusTable
	return m
}

func newFilterInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Blur()
	return in
}

func (m *model) Init() tea.Cmd {
	m.spinnerActive = true
	return tea.Batch(
		m.spinner.Tick,
		m.client.FetchVideos(),
		m.client.FetchPages(),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if tick, ok := msg.(spinner.TickMsg); ok && m.spinnerActive {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = message.Width, message.Height
		m.applyLayout()
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		cmd := m.handleKey(message)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.syncRows()
		return m, tea.Batch(cmds...)

	case videosLoadedMsg:
		if cmd := m.handleVideosLoaded(message); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case pagesLoadedMsg:
		if message.err != nil {
			m.appendLog("[WARN] pages fetch failed: " + message.err.Error())
		} else {
			m.commands.navigation.SetValue(message.pages)
		}

	case reloadFinishedMsg:
		if message.err != nil {
			// Reload failures log only; the catalog stays as it was.
			m.spinnerActive = false
			m.appendLog("[WARN] reload failed: " + message.err.Error())
			m.telemetry.Event("reload.failed", map[string]string{"error": message.err.Error()})
		} else {
			m.appendLog("[INFO] server rescan complete, refreshing catalog")
			cmds = append(cmds, m.client.FetchVideos())
		}

	case sidebarActionMsg:
		if cmd := m.handleSidebarAction(message.action); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case videoChosenMsg:
		if cmd := m.chooseVideo(message.rec); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case sinkAttachTickMsg:
		if cmd := m.player.HandleAttachTick(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case sinkErrorMsg:
		m.appendLog(fmt.Sprintf("[WARN] player %s failed: %v", message.op, message.err))

	case playbackMsg:
		if cmd := m.handlePlaybackMessage(message); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	m.syncRows()
	return m, tea.Batch(cmds...)
}

func (m *model) handleVideosLoaded(msg videosLoadedMsg) tea.Cmd {
	if msg.generation < m.client.CurrentGeneration() {
		// A newer fetch is in flight or already landed; this response
		// lost the race and is dropped. The spinner keeps running for
		// the pending fetch.
		m.telemetry.Event("catalog.stale_dropped", map[string]string{
			"generation": fmt.Sprint(msg.generation),
		})
		return nil
	}
	m.spinnerActive = false
	if msg.err != nil {
		m.appendLog("[WARN] catalog fetch failed: " + msg.err.Error())
		m.telemetry.Event("catalog.fetch_failed", map[string]string{"error": msg.err.Error()})
		return nil
	}
	m.catalog = msg.records
	m.catalogAge = msg.when
	m.pipe.SetRecords(m.catalog)
	m.appendLog(fmt.Sprintf("[INFO] catalog loaded: %d videos", len(m.catalog)))
	m.telemetry.Event("catalog.loaded", map[string]string{"count": fmt.Sprint(len(m.catalog))})
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) {
		m.teardown()
		return tea.Quit
	}

	if m.commands.themeSelector.Value() {
		return m.handleThemeSelectorKey(msg)
	}
	if m.commands.settings.Value() {
		if cmd, handled := m.handlePaletteKey(msg); handled {
			return cmd
		}
	}

	// Global shortcuts run before focus routing, so the alt-less
	// Shift+A/Shift+H variants fire even while a filter input has
	// focus; a capital A or H typed there goes to the shortcut, not
	// the input.
	ev := keyEventFromMsg(msg)
	if handled, cmd := m.dispatch.Dispatch(ev, m.focus == focusPlayer); handled {
		m.sidebar.Refresh(m.commands, m.theme)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.nextFocus):
		m.cycleFocus(1)
		return nil
	case key.Matches(msg, m.keys.prevFocus):
		m.cycleFocus(-1)
		return nil
	case key.Matches(msg, m.keys.toggleLogs):
		m.showLogs = !m.showLogs
		m.applyLayout()
		return nil
	}

	switch m.focus {
	case focusSidebar:
		return m.sidebar.Update(msg)
	case focusFilterWatched, focusFilterTitle, focusFilterFolder:
		return m.updateFilterInput(msg)
	case focusTable:
		switch msg.String() {
		case "y":
			m.copyHighlightedPath()
			return nil
		case "s":
			m.cycleSort(false)
			return nil
		case "S":
			m.cycleSort(true)
			return nil
		}
		return m.table.Update(msg)
	case focusPlayer:
		// Unmatched keys on the player pane are left unhandled.
		return nil
	}
	return nil
}

func (m *model) handleThemeSelectorKey(msg tea.KeyMsg) tea.Cmd {
	themes := []uiTheme{themeAuto, themeDark, themeLight}
	switch msg.String() {
	case "esc":
		m.commands.themeSelector.SetValue(false)
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
		}
	case "enter":
		m.applyTheme(themes[m.themeIndex])
		m.commands.themeSelector.SetValue(false)
	default:
		ev := keyEventFromMsg(msg)
		if handled, cmd := m.dispatch.Dispatch(ev, false); handled {
			return cmd
		}
	}
	return nil
}

// handlePaletteKey drives the F1 settings dialog. Keys it does not own
// fall back to normal handling so global shortcuts keep working while
// the dialog is open.
func (m *model) handlePaletteKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	entries := m.paletteEntries()
	switch msg.String() {
	case "esc":
		m.commands.settings.SetValue(false)
		return nil, true
	case "up", "ctrl+p":
		if m.paletteIndex > 0 {
			m.paletteIndex--
		}
		return nil, true
	case "down", "ctrl+n", "tab":
		if m.paletteIndex < len(entries)-1 {
			m.paletteIndex++
		}
		return nil, true
	case "enter":
		if m.paletteIndex >= 0 && m.paletteIndex < len(entries) {
			entry := entries[m.paletteIndex]
			if entry.cmd != nil && entry.cmd.Enabled() {
				m.telemetry.Event("command.invoke", map[string]string{"name": entry.cmd.Name()})
				return entry.cmd.Invoke(), true
			}
		}
		return nil, true
	}
	return nil, false
}

type paletteRow struct {
	group string
	cmd   command
}

// paletteEntries enumerates visible commands in registration order;
// hidden groups and hidden commands stay out of the dialog even though
// their shortcuts still dispatch.
func (m *model) paletteEntries() []paletteRow {
	var rows []paletteRow
	for _, group := range m.commands.reg.Groups() {
		if !group.visible {
			continue
		}
		for _, cmd := range group.commands {
			if !cmd.Visible() {
				continue
			}
			rows = append(rows, paletteRow{group: group.label, cmd: cmd})
		}
	}
	return rows
}

func (m *model) updateFilterInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusFilterWatched:
		m.filterWatched, cmd = m.filterWatched.Update(msg)
	case focusFilterTitle:
		m.filterTitle, cmd = m.filterTitle.Update(msg)
	case focusFilterFolder:
		m.filterFolder, cmd = m.filterFolder.Update(msg)
	}
	m.pipe.SetFilters(FilterState{
		Watched:     watchedModeFromInput(m.filterWatched.Value()),
		TitleQuery:  m.filterTitle.Value(),
		FolderQuery: m.filterFolder.Value(),
	})
	return cmd
}

func (m *model) cycleFocus(delta int) {
	order := []focusArea{focusSidebar, focusFilterWatched, focusFilterTitle, focusFilterFolder, focusTable}
	if !m.commands.sidebarOpen.Value() {
		order = order[1:]
	}
	if m.player.Video() != nil {
		order = append(order, focusPlayer)
	}
	current := 0
	for i, area := range order {
		if area == m.focus {
			current = i
			break
		}
	}
	next := (current + delta + len(order)) % len(order)
	m.setFocus(order[next])
}

func (m *model) setFocus(area focusArea) {
	m.focus = area
	m.filterWatched.Blur()
	m.filterTitle.Blur()
	m.filterFolder.Blur()
	switch area {
	case focusFilterWatched:
		m.filterWatched.Focus()
	case focusFilterTitle:
		m.filterTitle.Focus()
	case focusFilterFolder:
		m.filterFolder.Focus()
	}
}

func (m *model) cycleSort(desc bool) {
	spec := m.pipe.sort
	spec.Column = sortColumn((int(spec.Column) + 1) % 6)
	spec.Desc = desc
	m.pipe.SetSort(spec)
	m.setToast("Sort: "+sortColumnLabel(spec.Column), 2*time.Second)
}

func sortColumnLabel(col sortColumn) string {
	switch col {
	case sortTitle:
		return "title"
	case sortFolder:
		return "folder"
	case sortDuration:
		return "duration"
	case sortSize:
		return "size"
	case sortWatched:
		return "watched"
	default:
		return "default (priority folder)"
	}
}

func (m *model) handleSidebarAction(action sidebarAction) tea.Cmd {
	switch action {
	case sidebarActionReload:
		m.spinnerActive = true
		m.appendLog("[INFO] asking server to rescan library…")
		return tea.Batch(m.spinner.Tick, m.client.Reload())
	case sidebarActionEnableBoost:
		return m.commands.boostEnabled.Invoke()
	case sidebarActionCycleBoost:
		if !m.commands.boostLimit.Enabled() {
			m.setToast("Enable audio boost first", 2*time.Second)
			return nil
		}
		next := nextBoostGain(m.commands.boostLimit.Value())
		m.commands.boostLimit.SetValue(next)
		m.sidebar.Refresh(m.commands, m.theme)
		return m.player.ApplyGain(next)
	case sidebarActionCycleTheme:
		m.applyTheme(nextUITheme(m.theme))
		return nil
	case sidebarActionSettings:
		return m.commands.settings.Invoke()
	case sidebarActionCopyPath:
		m.copyHighlightedPath()
		return nil
	}
	return nil
}

func nextBoostGain(current int) int {
	for i, gain := range boostGains {
		if gain == current {
			return boostGains[(i+1)%len(boostGains)]
		}
	}
	return boostGains[defaultBoostGainIndex]
}

func (m *model) copyHighlightedPath() {
	rec, ok := m.table.SelectedRecord()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(rec.FilePath); err != nil {
		m.setToast("Copy failed: "+err.Error(), 3*time.Second)
		return
	}
	m.setToast("Copied "+abbreviatePath(rec.FilePath), 2*time.Second)
}

// chooseVideo routes the selection through the hidden current-video
// command so every consumer sees the same value, then marks the record
// watched in the authoritative catalog.
func (m *model) chooseVideo(rec VideoRecord) tea.Cmd {
	m.markWatched(rec.ID)
	selected := rec
	selected.Watched = true
	m.commands.currentVideo.SetValue(&selected)
	m.telemetry.VideoEvent("video.play", rec.ID)
	m.focus = focusPlayer
	return m.commands.currentVideo.Invoke()
}

// markWatched writes the watched flag back into the catalog slice, which
// the client-side pipeline only borrows.
func (m *model) markWatched(id string) {
	for i := range m.catalog {
		if m.catalog[i].ID == id && !m.catalog[i].Watched {
			m.catalog[i].Watched = true
			m.pipe.SetRecords(m.catalog)
			return
		}
	}
}

func (m *model) startPlayback(rec *VideoRecord) tea.Cmd {
	if rec == nil {
		m.playback.Stop()
		m.player.SetVideo(nil, nil)
		return nil
	}
	url := m.client.StreamURL(rec)
	start := m.playback.Start(playbackRequest{
		title:   rec.Title,
		url:     url,
		command: m.uiConfig.playerCommand(),
	})
	m.player.SetVideo(rec, func() (mediaSink, error) {
		path := m.playback.SocketPath()
		if path == "" {
			return nil, fmt.Errorf("no active playback session")
		}
		return dialMPVSink(path)
	})
	cmds := []tea.Cmd{start}
	if m.commands.boostEnabled.Value() {
		cmds = append(cmds, m.player.StartAttach())
	}
	return tea.Batch(cmds...)
}

func (m *model) handlePlaybackMessage(msg playbackMsg) tea.Cmd {
	switch message := msg.(type) {
	case playbackStartedMsg:
		m.appendLog("[INFO] playing: " + message.Title)
	case playbackLogMsg:
		m.appendLog("[mpv] " + message.Line)
	case playbackFinishedMsg:
		if message.Err != nil {
			m.appendLog(fmt.Sprintf("[WARN] playback of %s ended: %v", message.Title, message.Err))
		} else {
			m.appendLog("[INFO] playback finished: " + message.Title)
		}
	case playbackClosedMsg:
		return nil
	}
	return m.playback.WaitForMsg()
}

func (m *model) applyTheme(theme uiTheme) {
	m.theme = theme
	setUITheme(theme)
	m.sidebar.Refresh(m.commands, m.theme)
	if m.uiConfig != nil {
		m.uiConfig.Theme = theme.String()
		if err := saveUIConfig(m.uiConfig, m.uiConfigPath); err != nil {
			m.appendLog("[WARN] could not persist theme: " + err.Error())
		}
	}
	m.setToast("Theme: "+themeLabel(theme), 2*time.Second)
}

// syncRows recomputes the visible window and re-clamps pagination. Runs
// after every message so a shrinking filtered set can never leave the
// page index dangling.
func (m *model) syncRows() {
	count := m.pipe.FilteredCount()
	m.pager.SetCount(count)
	m.table.SetRows(m.pipe.VisibleRows(m.pager.State()))
	if m.prefs != nil {
		if size, ok := m.prefs.GetInt(prefKeyItemsPerPage); !ok || size != m.pager.Size() {
			m.prefs.SetInt(prefKeyItemsPerPage, m.pager.Size())
		}
	}
}

func (m *model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > 500 {
		m.logLines = m.logLines[len(m.logLines)-500:]
	}
	m.logs.SetContent(strings.Join(m.logLines, "\n"))
	m.logs.GotoBottom()
}

func (m *model) setToast(message string, ttl time.Duration) {
	m.toastMessage = message
	m.toastExpires = time.Now().Add(ttl)
}

func (m *model) teardown() {
	m.playback.Stop()
	if m.prefs != nil {
		_ = m.prefs.Close()
	}
	m.telemetry.Event("session.end", nil)
}

func (m *model) View() string {
	if m.width == 0 {
		return "loading…"
	}
	s := m.styles

	var b strings.Builder
	b.WriteString(m.viewTopBar())
	b.WriteString("\n")
	b.WriteString(m.viewBreadcrumbs())
	b.WriteString("\n")

	if m.commands.boostEnabled.Value() {
		alert := fmt.Sprintf("Audio boost active: volume limit %d%%. Loud output can damage hearing and speakers.",
			m.commands.boostLimit.Value())
		b.WriteString(s.alert.Render(alert))
		b.WriteString("\n")
	}

	b.WriteString(m.viewFilterRow())
	b.WriteString("\n")

	center := m.table.View(s, m.focus == focusTable)
	if m.commands.sidebarOpen.Value() {
		center = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(s, m.focus == focusSidebar), center)
	}
	b.WriteString(center)
	b.WriteString("\n")

	if rec := m.player.Video(); rec != nil {
		b.WriteString(m.viewTransport(rec))
		b.WriteString("\n")
	}

	if m.showLogs {
		b.WriteString(s.panel.Copy().Width(maxInt(m.width-2, 20)).Render(m.logs.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatusBar())

	if m.commands.themeSelector.Value() {
		return m.overlayView(m.viewThemeSelector())
	}
	if m.commands.settings.Value() {
		return m.overlayView(m.viewPalette())
	}
	return s.app.Render(b.String())
}

func (m *model) viewTopBar() string {
	s := m.styles
	left := s.topBar.Render(" [NX] Video Player ")
	if m.spinnerActive {
		left += " " + m.spinner.View()
	}
	right := ""
	if m.catalogAge != "" {
		right = s.statusHint.Render("catalog " + m.catalogAge)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *model) viewBreadcrumbs() string {
	s := m.styles
	parts := []string{
		s.breadcrumbLink.Render("Homepage"),
		s.breadcrumbLink.Render("Video Player"),
	}
	if rec := m.player.Video(); rec != nil {
		parts = append(parts, rec.Title)
	}
	return s.breadcrumbs.Render(strings.Join(parts, " › "))
}

func (m *model) viewFilterRow() string {
	s := m.styles
	label := func(text string, focused bool) string {
		st := s.filterLabel
		if focused {
			st = st.Copy().Bold(true)
		}
		return st.Render(text)
	}
	segments := []string{
		label("Watched:", m.focus == focusFilterWatched) + " " + m.filterWatched.View(),
		label("Title:", m.focus == focusFilterTitle) + " " + m.filterTitle.View(),
		label("Folder:", m.focus == focusFilterFolder) + " " + m.filterFolder.View(),
		s.filterDisabled.Render("Duration: (soon)"),
		s.filterDisabled.Render("Size: (soon)"),
	}
	return strings.Join(segments, "   ")
}

func (m *model) viewTransport(rec *VideoRecord) string {
	s := m.styles
	position := durationClock(m.player.positionNanos)
	total := durationClock(rec.DurationNanos)
	link := s.bad.Render("detached")
	if m.player.Attached() {
		link = s.good.Render("live")
	}
	line := fmt.Sprintf("▶ %s  %s / %s  vol %d%%  [%s]",
		rec.Title, position, total, int(m.player.volume*100), link)
	if m.focus == focusPlayer {
		line += s.statusHint.Render("  ←/→ seek · ↑/↓ volume · 0-9 jump")
	}
	st := s.panel
	if m.focus == focusPlayer {
		st = s.panelFocused
	}
	return st.Copy().Width(maxInt(m.width-2, 20)).Render(line)
}

func (m *model) viewStatusBar() string {
	s := m.styles
	segments := []string{
		s.statusSeg.Render(fmt.Sprintf("Page %d/%d", m.pager.Index()+1, m.pager.LastPage()+1)),
		s.statusSeg.Render(fmt.Sprintf("%d videos", m.pipe.FilteredCount())),
		s.statusSeg.Render(fmt.Sprintf("%d per page", m.pager.Size())),
	}
	left := strings.Join(segments, " ")
	if m.toastMessage != "" && time.Now().Before(m.toastExpires) {
		left += "  " + s.statusHint.Copy().Bold(true).Render(m.toastMessage)
	}
	helpLine := m.help.View(m.keys)
	return s.statusBar.Copy().Width(maxInt(m.width, 20)).Render(left + "\n" + helpLine)
}

func (m *model) viewThemeSelector() string {
	s := m.styles
	themes := []uiTheme{themeAuto, themeDark, themeLight}
	var b strings.Builder
	b.WriteString(s.cmdPrompt.Render("Theme"))
	b.WriteString("\n\n")
	for i, theme := range themes {
		line := "  " + themeLabel(theme)
		if theme == m.theme {
			line += " (current)"
		}
		if i == m.themeIndex {
			line = s.listSel.Render("▸ " + themeLabel(theme))
			if theme == m.theme {
				line = s.listSel.Render("▸ " + themeLabel(theme) + " (current)")
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.cmdHint.Render("↑/↓ choose · enter apply · esc close"))
	return s.cmdOverlay.Render(b.String())
}

func (m *model) viewPalette() string {
	s := m.styles
	entries := m.paletteEntries()
	var b strings.Builder
	b.WriteString(s.cmdPrompt.Render("Settings"))
	b.WriteString("\n\n")
	lastGroup := ""
	row := 0
	for _, entry := range entries {
		if entry.group != lastGroup {
			b.WriteString(s.groupHead.Render(entry.group))
			b.WriteString("\n")
			lastGroup = entry.group
		}
		line := "  " + entry.cmd.Name()
		if row == m.paletteIndex {
			line = s.listSel.Render("▸ " + entry.cmd.Name())
		}
		if hint := entry.cmd.ShortcutHint(); hint != "" {
			line += "  " + s.shortcutHint.Render(hint)
		}
		if !entry.cmd.Enabled() {
			line = s.filterDisabled.Render("  " + entry.cmd.Name() + " (disabled)")
		}
		b.WriteString(line)
		b.WriteString("\n")
		row++
	}
	b.WriteString("\n")
	b.WriteString(renderHelpMarkdown(keyboardHelp))
	b.WriteString(s.cmdHint.Render("↑/↓ choose · enter run · esc/F1 close"))
	return s.cmdOverlay.Render(b.String())
}

const keyboardHelp = `## Keyboard

| Keys | Action |
| --- | --- |
| Shift+Alt+A | Enable audio boost |
| Shift+Alt+H | Toggle sidebar |
| Shift+Alt+T | Theme selector |
| Alt+←/→ | Previous / next page |
| Alt+↑/↓ | Page size up / down |
| ←/→ | Seek ±5s (player focused) |
| ↑/↓ | Volume ±5% (player focused) |
| 0-9 | Jump to 0%-90% (player focused) |
`

func (m *model) overlayView(dialog string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (m *model) applyLayout() {
	sidebarWidth := 0
	if m.commands.sidebarOpen.Value() {
		sidebarWidth = 34
		m.sidebar.SetSize(sidebarWidth, m.height-8)
	}
	tableWidth := m.width - sidebarWidth - 4
	tableHeight := m.height - 10
	if m.showLogs {
		tableHeight -= m.logsHeight + 1
	}
	m.table.SetSize(tableWidth, tableHeight)
	m.logs.Width = maxInt(m.width-2, 20)
	m.logs.Height = m.logsHeight
	width := maxInt(m.width-20, 24)
	m.filterTitle.Width = width / 3
	m.filterFolder.Width = width / 3
	m.filterWatched.Width = 8
	setHelpWordWrap(maxInt(m.width-4, 24))
}
