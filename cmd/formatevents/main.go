package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// formatevents renders the UI's NDJSON event stream as a readable
// report, grouped by session. Malformed lines are reported, not fatal.

type rawEvent struct {
	SessionID string            `json:"session_id"`
	Timestamp string            `json:"timestamp"`
	Event     string            `json:"event"`
	VideoID   string            `json:"video_id,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`

	line int
}

func main() {
	var inputPath string
	var outputPath string
	var eventFilter string
	var summaryOnly bool
	flag.StringVar(&inputPath, "in", "", "input NDJSON event file (required)")
	flag.StringVar(&outputPath, "out", "", "output file path (optional, defaults to stdout)")
	flag.StringVar(&eventFilter, "event", "", "only show events with this name prefix")
	flag.BoolVar(&summaryOnly, "summary", false, "print per-session event counts only")
	flag.Parse()

	if inputPath == "" {
		exitWithError(errors.New("missing --in path"))
	}

	events, badLines, err := parseEventFile(inputPath)
	if err != nil {
		exitWithError(fmt.Errorf("parse events: %w", err))
	}
	if eventFilter != "" {
		events = filterEvents(events, eventFilter)
	}

	var rendered string
	if summaryOnly {
		rendered = renderSummary(events)
	} else {
		rendered = renderEvents(events)
	}
	if len(badLines) > 0 {
		rendered += fmt.Sprintf("\n\n%d malformed line(s) skipped: %v", len(badLines), badLines)
	}

	if outputPath == "" {
		fmt.Println(rendered)
		return
	}
	if err := os.WriteFile(outputPath, []byte(rendered+"\n"), 0o644); err != nil {
		exitWithError(fmt.Errorf("write output: %w", err))
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "formatevents: %v\n", err)
	os.Exit(1)
}

func parseEventFile(path string) ([]rawEvent, []int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	return parseEvents(bufio.NewScanner(file))
}

func parseEvents(scanner *bufio.Scanner) ([]rawEvent, []int, error) {
	var events []rawEvent
	var badLines []int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var evt rawEvent
		if err := json.Unmarshal([]byte(line), &evt); err != nil || evt.Event == "" {
			badLines = append(badLines, lineNo)
			continue
		}
		evt.line = lineNo
		events = append(events, evt)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return events, badLines, nil
}

func filterEvents(events []rawEvent, prefix string) []rawEvent {
	var out []rawEvent
	for _, evt := range events {
		if strings.HasPrefix(evt.Event, prefix) {
			out = append(out, evt)
		}
	}
	return out
}

func renderEvents(events []rawEvent) string {
	var out []string
	lastSession := ""
	for _, evt := range events {
		if evt.SessionID != lastSession {
			out = append(out, "==================")
			out = append(out, fmt.Sprintf("Session %s", shortSession(evt.SessionID)))
			out = append(out, "==================")
			lastSession = evt.SessionID
		}
		out = append(out, renderEvent(evt)...)
	}
	if len(out) == 0 {
		return "no events"
	}
	return strings.Join(out, "\n")
}

func renderEvent(evt rawEvent) []string {
	line := fmt.Sprintf("%s  %-24s", formatTimestamp(evt.Timestamp), evt.Event)
	if evt.VideoID != "" {
		line += "  video=" + evt.VideoID
	}
	out := []string{line}
	if len(evt.Extra) > 0 {
		keys := make([]string, 0, len(evt.Extra))
		for key := range evt.Extra {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			out = append(out, fmt.Sprintf("    %s: %s", key, evt.Extra[key]))
		}
	}
	return out
}

func renderSummary(events []rawEvent) string {
	type sessionCount struct {
		session string
		counts  map[string]int
		order   []string
	}
	var sessions []*sessionCount
	byID := map[string]*sessionCount{}
	for _, evt := range events {
		sc, ok := byID[evt.SessionID]
		if !ok {
			sc = &sessionCount{session: evt.SessionID, counts: map[string]int{}}
			byID[evt.SessionID] = sc
			sessions = append(sessions, sc)
		}
		if sc.counts[evt.Event] == 0 {
			sc.order = append(sc.order, evt.Event)
		}
		sc.counts[evt.Event]++
	}
	var out []string
	for _, sc := range sessions {
		out = append(out, fmt.Sprintf("Session %s", shortSession(sc.session)))
		for _, name := range sc.order {
			out = append(out, fmt.Sprintf("  %-24s %d", name, sc.counts[name]))
		}
	}
	if len(out) == 0 {
		return "no events"
	}
	return strings.Join(out, "\n")
}

func formatTimestamp(raw string) string {
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts.Format("2006-01-02 15:04:05")
	}
	return raw
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "(unknown)"
	}
	return id
}
