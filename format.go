package main

import (
	"fmt"
	"math"
	"strings"
)

// fileSizeHuman renders a byte count with 1024-based units. The -1
// sentinel (size never probed) renders as an em dash.
func fileSizeHuman(bytes int64) string {
	if bytes < 0 {
		return "—"
	}
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	exp := int(math.Log(float64(bytes)) / math.Log(1024))
	units := "kMGTPEZY"
	if exp > len(units) {
		exp = len(units)
	}
	value := float64(bytes) / math.Pow(1024, float64(exp))
	return fmt.Sprintf("%.2f %cB", value, units[exp-1])
}

// durationClock renders nanoseconds as HH:MM:SS, or an em dash for the
// -1 unknown sentinel.
func durationClock(nanos int64) string {
	if nanos < 0 {
		return "—"
	}
	total := nanos / 1_000_000_000
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// abbreviatePath shortens long paths for titles and toasts, keeping the
// head and tail segments.
func abbreviatePath(path string) string {
	const limit = 48
	if len(path) <= limit {
		return path
	}
	parts := strings.Split(path, "/")
	if len(parts) < 4 {
		return path
	}
	return parts[0] + "/…/" + strings.Join(parts[len(parts)-2:], "/")
}
