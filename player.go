package main

import (
	"encoding/json"
	"net"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.05

	// The boost sink is attached by polling for the player's control
	// socket. The poll is bounded: if the player never comes up, the
	// attach quietly gives up instead of leaking a timer.
	attachPollInterval = 250 * time.Millisecond
	maxAttachAttempts  = 40
)

// boostGains are the allowed amplification ceilings, in percent.
var boostGains = []int{100, 200, 300, 400, 500, 600}

const defaultBoostGainIndex = 2

// mediaSink is the opaque control surface of the external player. The
// core only parameterizes it; it never touches media bytes.
type mediaSink interface {
	SeekTo(seconds float64) error
	SetVolume(percent float64) error
	SetVolumeMax(percent int) error
	Close() error
}

type sinkAttachTickMsg struct{}

type sinkErrorMsg struct {
	op  string
	err error
}

// playerState owns the transport values (position, volume, boost gain)
// for the currently selected video and mirrors them into the attached
// sink. All mutation happens on the UI goroutine.
type playerState struct {
	video          *VideoRecord
	positionNanos  int64
	volume         float64 // 0..1
	gain           int     // percent, 100 = unity
	sink           mediaSink
	attachAttempts int

	dial func() (mediaSink, error)
}

func newPlayerState() *playerState {
	return &playerState{
		volume: 1.0,
		gain:   boostGains[defaultBoostGainIndex],
	}
}

func (p *playerState) Video() *VideoRecord { return p.video }
func (p *playerState) Attached() bool      { return p.sink != nil }

// SetVideo switches the transport to a new record and drops any sink
// attached to the previous playback session.
func (p *playerState) SetVideo(rec *VideoRecord, dial func() (mediaSink, error)) {
	p.video = rec
	p.positionNanos = 0
	p.dial = dial
	p.attachAttempts = 0
	if p.sink != nil {
		_ = p.sink.Close()
		p.sink = nil
	}
}

func (p *playerState) SeekBy(delta time.Duration) tea.Cmd {
	if p.video == nil {
		return nil
	}
	pos := p.positionNanos + delta.Nanoseconds()
	if pos < 0 {
		pos = 0
	}
	if p.video.DurationNanos >= 0 && pos > p.video.DurationNanos {
		pos = p.video.DurationNanos
	}
	p.positionNanos = pos
	seconds := float64(pos) / float64(time.Second)
	return p.syncCmd("seek", func(s mediaSink) error { return s.SeekTo(seconds) })
}

func (p *playerState) VolumeBy(delta float64) tea.Cmd {
	if p.video == nil {
		return nil
	}
	level := p.volume + delta
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	p.volume = level
	return p.pushVolume()
}

// JumpToPercent seeks to a fraction of the known duration. With an
// unknown duration only the zero jump is meaningful.
func (p *playerState) JumpToPercent(percent int) tea.Cmd {
	if p.video == nil {
		return nil
	}
	if p.video.DurationNanos < 0 {
		if percent != 0 {
			return nil
		}
		p.positionNanos = 0
		return p.syncCmd("seek", func(s mediaSink) error { return s.SeekTo(0) })
	}
	pos := p.video.DurationNanos / 100 * int64(percent)
	p.positionNanos = pos
	seconds := float64(pos) / float64(time.Second)
	return p.syncCmd("seek", func(s mediaSink) error { return s.SeekTo(seconds) })
}

// ApplyGain records the boost ceiling and re-pushes volume so the new
// headroom takes effect immediately.
func (p *playerState) ApplyGain(percent int) tea.Cmd {
	p.gain = percent
	if p.sink == nil {
		return nil
	}
	gain := percent
	push := p.pushVolume()
	set := p.syncCmd("gain", func(s mediaSink) error { return s.SetVolumeMax(gain) })
	return tea.Batch(set, push)
}

func (p *playerState) pushVolume() tea.Cmd {
	// Effective player volume in percent, boosted past 100 when a gain
	// ceiling above unity is set.
	effective := p.volume * float64(p.gain)
	return p.syncCmd("volume", func(s mediaSink) error { return s.SetVolume(effective) })
}

func (p *playerState) syncCmd(op string, push func(mediaSink) error) tea.Cmd {
	sink := p.sink
	if sink == nil {
		return nil
	}
	return func() tea.Msg {
		if err := push(sink); err != nil {
			return sinkErrorMsg{op: op, err: err}
		}
		return nil
	}
}

// StartAttach begins the bounded polling loop that connects the sink
// once the player's control socket exists.
func (p *playerState) StartAttach() tea.Cmd {
	p.attachAttempts = 0
	return attachTickCmd()
}

func attachTickCmd() tea.Cmd {
	return tea.Tick(attachPollInterval, func(time.Time) tea.Msg {
		return sinkAttachTickMsg{}
	})
}

// HandleAttachTick makes one attach attempt. It reschedules itself until
// the sink connects or the attempt budget runs out, then stops silently.
func (p *playerState) HandleAttachTick() tea.Cmd {
	if p.sink != nil || p.dial == nil {
		return nil
	}
	sink, err := p.dial()
	if err != nil {
		p.attachAttempts++
		if p.attachAttempts >= maxAttachAttempts {
			return nil
		}
		return attachTickCmd()
	}
	p.sink = sink
	return tea.Batch(
		p.syncCmd("gain", func(s mediaSink) error { return s.SetVolumeMax(p.gain) }),
		p.pushVolume(),
	)
}

// mpvSink drives an mpv process over its JSON IPC socket.
type mpvSink struct {
	conn net.Conn
}

func dialMPVSink(socketPath string) (mediaSink, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, err
	}
	return &mpvSink{conn: conn}, nil
}

func (s *mpvSink) command(args ...any) error {
	payload, err := json.Marshal(map[string]any{"command": args})
	if err != nil {
		return err
	}
	payload = append(payload, '\n')
	_, err = s.conn.Write(payload)
	return err
}

func (s *mpvSink) SeekTo(seconds float64) error {
	return s.command("set_property", "time-pos", seconds)
}

func (s *mpvSink) SetVolume(percent float64) error {
	return s.command("set_property", "volume", percent)
}

func (s *mpvSink) SetVolumeMax(percent int) error {
	return s.command("set_property", "volume-max", percent)
}

func (s *mpvSink) Close() error {
	return s.conn.Close()
}
