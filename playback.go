package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"
	"github.com/google/uuid"
)

type playbackMsg interface{ isPlayback() }

type playbackStartedMsg struct {
	Title string
}

func (playbackStartedMsg) isPlayback() {}

type playbackLogMsg struct {
	Title string
	Line  string
}

func (playbackLogMsg) isPlayback() {}

type playbackFinishedMsg struct {
	Title string
	Err   error
}

func (playbackFinishedMsg) isPlayback() {}

type playbackClosedMsg struct{}

func (playbackClosedMsg) isPlayback() {}

type playbackRequest struct {
	title   string
	url     string
	command string
}

// playbackManager runs the external player, one session at a time.
// Selecting a new video replaces the current session. Output lines are
// streamed back as messages for the log viewport; the core never reads
// video bytes.
type playbackManager struct {
	mu         sync.Mutex
	current    *exec.Cmd
	socketPath string
	events     chan playbackMsg
	done       chan struct{}
}

func newPlaybackManager() *playbackManager {
	return &playbackManager{}
}

// SocketPath is the control socket of the active session, empty when
// idle.
func (pm *playbackManager) SocketPath() string {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return pm.socketPath
}

// Start stops any running session and launches the player against the
// stream URL, exposing an IPC socket for the gain sink.
func (pm *playbackManager) Start(req playbackRequest) tea.Cmd {
	pm.Stop()

	socketPath := filepath.Join(os.TempDir(), fmt.Sprintf("vptui-%s.sock", uuid.NewString()))
	args := []string{
		"--input-ipc-server=" + socketPath,
		"--volume-max=600",
		"--keep-open=yes",
		req.url,
	}
	cmd := exec.Command(req.command, args...)

	ch := make(chan playbackMsg)
	done := make(chan struct{})
	pm.mu.Lock()
	pm.current = cmd
	pm.socketPath = socketPath
	pm.events = ch
	pm.done = done
	pm.mu.Unlock()

	go runPlayback(cmd, req.title, socketPath, ch, done)
	return waitForPlaybackMsg(ch)
}

// WaitForMsg re-arms on the active session's message stream. Returns
// nil when no session is running.
func (pm *playbackManager) WaitForMsg() tea.Cmd {
	pm.mu.Lock()
	ch := pm.events
	pm.mu.Unlock()
	if ch == nil {
		return nil
	}
	return waitForPlaybackMsg(ch)
}

// Stop kills the active session, if any, and releases its goroutines:
// closing done unblocks any send still racing on the abandoned channel.
func (pm *playbackManager) Stop() {
	pm.mu.Lock()
	current := pm.current
	socketPath := pm.socketPath
	done := pm.done
	pm.current = nil
	pm.socketPath = ""
	pm.events = nil
	pm.done = nil
	pm.mu.Unlock()

	if done != nil {
		close(done)
	}
	if current != nil && current.Process != nil {
		_ = current.Process.Kill()
	}
	if socketPath != "" {
		_ = os.Remove(socketPath)
	}
}

// runPlayback pumps session messages until the player exits or the
// session is replaced. Every send races against done so a replaced
// session can never block on its abandoned channel; the channel closes
// when the goroutine unwinds, whether or not anyone is still reading.
func runPlayback(cmd *exec.Cmd, title, socketPath string, ch chan<- playbackMsg, done <-chan struct{}) {
	defer close(ch)
	defer os.Remove(socketPath)

	emit := func(msg playbackMsg) bool {
		select {
		case ch <- msg:
			return true
		case <-done:
			return false
		}
	}

	if !emit(playbackStartedMsg{Title: title}) {
		return
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		emit(playbackLogMsg{Title: title, Line: err.Error()})
		emit(playbackFinishedMsg{Title: title, Err: err})
		return
	}
	defer ptmx.Close()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(ptmx)
		for scanner.Scan() {
			if !emit(playbackLogMsg{Title: title, Line: scanner.Text()}) {
				return
			}
		}
	}()

	wg.Wait()
	err = cmd.Wait()
	emit(playbackFinishedMsg{Title: title, Err: err})
}

func waitForPlaybackMsg(ch <-chan playbackMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return playbackClosedMsg{}
		}
		return msg
	}
}
