package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// keyEvent is the dispatcher's view of one keystroke: the key as typed
// (letter case preserved) plus a modifier snapshot.
type keyEvent struct {
	key  string
	mods modifierState
}

// keyEventFromMsg translates a bubbletea key message. Alt and ctrl come
// from the terminal encoding; shift is derived from letter case, which
// is how the terminal reports it for printable keys.
func keyEventFromMsg(msg tea.KeyMsg) keyEvent {
	ev := keyEvent{key: msg.String()}
	for {
		switch {
		case strings.HasPrefix(ev.key, "alt+"):
			ev.mods.alt = true
			ev.key = strings.TrimPrefix(ev.key, "alt+")
		case strings.HasPrefix(ev.key, "ctrl+"):
			ev.mods.ctrl = true
			ev.key = strings.TrimPrefix(ev.key, "ctrl+")
		case strings.HasPrefix(ev.key, "shift+"):
			ev.mods.shift = true
			ev.key = strings.TrimPrefix(ev.key, "shift+")
		default:
			if len(ev.key) == 1 && ev.key[0] >= 'A' && ev.key[0] <= 'Z' {
				ev.mods.shift = true
			}
			return ev
		}
	}
}

// dispatcher routes keystrokes to commands, the pagination controller,
// and the player transport. It holds no state of its own between events;
// every dispatch reads current values from its collaborators.
type dispatcher struct {
	reg    *commandRegistry
	pager  *pageController
	player *playerState
}

func newDispatcher(reg *commandRegistry, pager *pageController, player *playerState) *dispatcher {
	return &dispatcher{reg: reg, pager: pager, player: player}
}

// Dispatch scans every registered command in group order then command
// order. The first match marks the event handled, but scanning continues
// so later matches fire too: the shortcut table is pairwise disjoint by
// construction, and the scan deliberately keeps the source behavior of
// not short-circuiting. If no command matches, pagination and transport
// bindings get their turn depending on where focus sits.
func (d *dispatcher) Dispatch(ev keyEvent, mediaFocused bool) (bool, tea.Cmd) {
	handled := false
	var cmds []tea.Cmd
	for _, group := range d.reg.Groups() {
		for _, cmd := range group.commands {
			if !cmd.MatchesShortcut(ev.key, ev.mods) {
				continue
			}
			handled = true
			if run := cmd.Invoke(); run != nil {
				cmds = append(cmds, run)
			}
		}
	}
	if handled {
		return true, tea.Batch(cmds...)
	}

	if !mediaFocused && ev.mods.alt {
		switch ev.key {
		case "left":
			d.pager.PrevPage()
			return true, nil
		case "right":
			d.pager.NextPage()
			return true, nil
		case "up":
			d.pager.GrowSize()
			return true, nil
		case "down":
			d.pager.ShrinkSize()
			return true, nil
		}
	}

	if mediaFocused && ev.mods == (modifierState{}) {
		switch ev.key {
		case "left":
			return true, d.player.SeekBy(-seekStep)
		case "right":
			return true, d.player.SeekBy(seekStep)
		case "up":
			return true, d.player.VolumeBy(volumeStep)
		case "down":
			return true, d.player.VolumeBy(-volumeStep)
		}
		if len(ev.key) == 1 && ev.key[0] >= '0' && ev.key[0] <= '9' {
			return true, d.player.JumpToPercent(int(ev.key[0]-'0') * 10)
		}
	}

	return false, nil
}
