package main

import (
	"testing"
	"time"
)

// A replaced session must unwind on its own: its goroutine stops
// sending, closes the channel, and releases the pty even though the
// model only reads from the new session's channel.
func TestReplacedPlaybackSessionShutsDown(t *testing.T) {
	pm := newPlaybackManager()
	t.Cleanup(pm.Stop)

	first := pm.Start(playbackRequest{
		title:   "one",
		url:     "http://vp.localhost/video/stream/one",
		command: "vptui-test-no-such-player",
	})
	if _, ok := first().(playbackStartedMsg); !ok {
		t.Fatal("first message should be playbackStartedMsg")
	}

	pm.Start(playbackRequest{
		title:   "two",
		url:     "http://vp.localhost/video/stream/two",
		command: "vptui-test-no-such-player",
	})

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			if _, ok := first().(playbackClosedMsg); ok {
				return
			}
		}
	}()
	select {
	case <-finished:
	case <-time.After(3 * time.Second):
		t.Fatal("replaced session's goroutine never exited")
	}
}

func TestStopReleasesSessionState(t *testing.T) {
	pm := newPlaybackManager()

	wait := pm.Start(playbackRequest{
		title:   "clip",
		url:     "http://vp.localhost/video/stream/clip",
		command: "vptui-test-no-such-player",
	})
	if pm.SocketPath() == "" {
		t.Fatal("active session should expose a socket path")
	}

	pm.Stop()
	if pm.SocketPath() != "" {
		t.Error("socket path should clear on stop")
	}
	if pm.WaitForMsg() != nil {
		t.Error("WaitForMsg should be nil after stop")
	}

	// The session goroutine drains to closure even with nobody to
	// receive its pending messages.
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			if _, ok := wait().(playbackClosedMsg); ok {
				return
			}
		}
	}()
	select {
	case <-finished:
	case <-time.After(3 * time.Second):
		t.Fatal("stopped session's goroutine never exited")
	}
}
