package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// modifierState is an immutable snapshot of the modifier keys for one
// keystroke.
type modifierState struct {
	shift bool
	ctrl  bool
	alt   bool
	meta  bool
}

type shortcutFunc func(key string, mods modifierState) bool

// command is the dispatch-facing contract: a named, independently
// enabled/visible unit of state-and-action, optionally bound to a
// keyboard shortcut. Presentation maps commands to visuals elsewhere;
// nothing here knows about rendering.
type command interface {
	Name() string
	ShortcutHint() string
	MatchesShortcut(key string, mods modifierState) bool
	Invoke() tea.Cmd
	Enabled() bool
	Visible() bool
}

// Command carries one piece of UI state. Its value/setValue pair is the
// single source of truth for that state: consumers read through Value at
// use time instead of capturing snapshots, which is what keeps keyboard
// dispatch from ever acting on a stale closure.
type Command[T any] struct {
	name     string
	hint     string
	shortcut shortcutFunc
	callback func() tea.Cmd
	value    T
	watchers []func(T)
	enabled  bool
	visible  bool
}

func (c *Command[T]) Name() string         { return c.name }
func (c *Command[T]) ShortcutHint() string { return c.hint }
func (c *Command[T]) Enabled() bool        { return c.enabled }
func (c *Command[T]) Visible() bool        { return c.visible }

func (c *Command[T]) SetEnabled(enabled bool) { c.enabled = enabled }
func (c *Command[T]) SetVisible(visible bool) { c.visible = visible }

// MatchesShortcut reports whether a keystroke addresses this command.
// Disabled commands never match, which makes enablement a no-op for
// dispatch as well as for manual invocation.
func (c *Command[T]) MatchesShortcut(key string, mods modifierState) bool {
	if c.shortcut == nil || !c.enabled {
		return false
	}
	return c.shortcut(key, mods)
}

func (c *Command[T]) Invoke() tea.Cmd {
	if !c.enabled || c.callback == nil {
		return nil
	}
	return c.callback()
}

func (c *Command[T]) Value() T { return c.value }

// SetValue stores the new value and notifies watchers synchronously.
func (c *Command[T]) SetValue(value T) {
	c.value = value
	for _, watch := range c.watchers {
		watch(value)
	}
}

// Watch subscribes to value changes. Watchers run on the UI goroutine in
// registration order.
func (c *Command[T]) Watch(fn func(T)) {
	c.watchers = append(c.watchers, fn)
}

// commandGroup is an ordered set of commands under one palette heading.
// Registration order across and within groups is the total dispatch
// order.
type commandGroup struct {
	key      string
	label    string
	visible  bool
	commands []command
	keys     []string
}

func (g *commandGroup) add(key string, cmd command) {
	g.commands = append(g.commands, cmd)
	g.keys = append(g.keys, key)
}

type commandRegistry struct {
	groups []*commandGroup
}

func (r *commandRegistry) register(key, label string, visible bool) *commandGroup {
	group := &commandGroup{key: key, label: label, visible: visible}
	r.groups = append(r.groups, group)
	return group
}

// Groups returns all groups in registration order, hidden ones included.
// Palette-style enumeration filters on visibility itself.
func (r *commandRegistry) Groups() []*commandGroup {
	return r.groups
}

func (r *commandRegistry) lookup(groupKey, commandKey string) (command, bool) {
	for _, group := range r.groups {
		if group.key != groupKey {
			continue
		}
		for i, key := range group.keys {
			if key == commandKey {
				return group.commands[i], true
			}
		}
	}
	return nil, false
}

// pageLink is one entry of the server-provided navigation list.
type pageLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// commandHooks are the session-level side effects commands trigger.
// They stay behind functions so the registry itself holds no references
// to the model.
type commandHooks struct {
	startBoostAttach func() tea.Cmd
	sidebarChanged   func(open bool)
	boostGainChanged func(percent int)
	videoSelected    func(rec *VideoRecord) tea.Cmd
}

// commandSet is the per-session registry plus typed handles to each
// command, built once and torn down with the session.
type commandSet struct {
	reg *commandRegistry

	themeSelector *Command[bool]
	boostEnabled  *Command[bool]
	boostLimit    *Command[int]
	settings      *Command[bool]
	sidebarOpen   *Command[bool]
	navigation    *Command[[]pageLink]
	currentVideo  *Command[*VideoRecord]
}

func newCommandSet(hooks commandHooks, sidebarOpen bool) *commandSet {
	set := &commandSet{reg: &commandRegistry{}}

	set.themeSelector = &Command[bool]{
		name:    "Theme selector",
		hint:    "Shift+Alt+T",
		enabled: true,
		visible: true,
		shortcut: func(key string, mods modifierState) bool {
			return key == "T" && mods.shift && mods.alt
		},
	}
	set.themeSelector.callback = func() tea.Cmd {
		set.settings.SetValue(false)
		set.themeSelector.SetValue(!set.themeSelector.Value())
		return nil
	}

	set.boostEnabled = &Command[bool]{
		name:    "Enable audio boost",
		hint:    "Shift+Alt+A",
		enabled: true,
		visible: true,
		shortcut: func(key string, mods modifierState) bool {
			return key == "A" && mods.shift && !mods.ctrl && !mods.meta
		},
	}
	set.boostEnabled.callback = func() tea.Cmd {
		if set.boostEnabled.Value() {
			return nil
		}
		set.boostEnabled.SetValue(true)
		set.boostLimit.SetEnabled(true)
		if hooks.startBoostAttach != nil {
			return hooks.startBoostAttach()
		}
		return nil
	}

	set.boostLimit = &Command[int]{
		name:    "Boost limit",
		enabled: false,
		visible: false,
		value:   boostGains[defaultBoostGainIndex],
	}
	if hooks.boostGainChanged != nil {
		set.boostLimit.Watch(hooks.boostGainChanged)
	}

	set.settings = &Command[bool]{
		name:    "Settings",
		hint:    "F1",
		enabled: true,
		visible: false,
		shortcut: func(key string, mods modifierState) bool {
			return key == "f1" && mods == (modifierState{})
		},
	}
	set.settings.callback = func() tea.Cmd {
		set.settings.SetValue(!set.settings.Value())
		return nil
	}

	set.sidebarOpen = &Command[bool]{
		name:    "Toggle sidebar",
		hint:    "Shift+Alt+H",
		enabled: true,
		visible: true,
		value:   sidebarOpen,
		shortcut: func(key string, mods modifierState) bool {
			return key == "H" && mods.shift && !mods.ctrl && !mods.meta
		},
	}
	set.sidebarOpen.callback = func() tea.Cmd {
		set.sidebarOpen.SetValue(!set.sidebarOpen.Value())
		return nil
	}
	if hooks.sidebarChanged != nil {
		set.sidebarOpen.Watch(hooks.sidebarChanged)
	}

	set.navigation = &Command[[]pageLink]{
		name:    "Navigation",
		enabled: false,
		visible: false,
	}

	set.currentVideo = &Command[*VideoRecord]{
		name:    "Visible video",
		enabled: true,
		visible: true,
	}
	set.currentVideo.callback = func() tea.Cmd {
		if hooks.videoSelected != nil {
			return hooks.videoSelected(set.currentVideo.Value())
		}
		return nil
	}

	preferences := set.reg.register("preferences", "Preferences", true)
	preferences.add("theme-selector", set.themeSelector)

	audio := set.reg.register("audio", "Audio Context", true)
	audio.add("enable-boost", set.boostEnabled)
	audio.add("boost-limit", set.boostLimit)

	configs := set.reg.register("configs", "Configurations", true)
	configs.add("settings", set.settings)
	configs.add("toggle-sidebar", set.sidebarOpen)
	configs.add("navigation", set.navigation)

	// Hidden utility group: invisible in the palette, but its commands
	// still route value updates.
	player := set.reg.register("player", "", false)
	player.add("visible-video", set.currentVideo)

	return set
}
