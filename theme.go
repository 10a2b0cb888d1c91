package main

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type uiTheme string

const (
	themeAuto  uiTheme = "auto"
	themeDark  uiTheme = "dark"
	themeLight uiTheme = "light"
)

var (
	themeMu           sync.Mutex
	helpRenderer      *glamour.TermRenderer
	helpRendererErr   error
	activeTheme       = themeAuto
	helpRendererWidth = 72
)

// renderHelpMarkdown returns the glamour-rendered help sheet, falling
// back to the raw markdown if the renderer cannot be built.
func renderHelpMarkdown(content string) string {
	renderer := ensureHelpRenderer()
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func ensureHelpRenderer() *glamour.TermRenderer {
	themeMu.Lock()
	defer themeMu.Unlock()
	if helpRenderer != nil && helpRendererErr == nil {
		return helpRenderer
	}
	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(helpRendererWidth),
	}
	switch activeTheme {
	case themeLight:
		options = append(options, glamour.WithStandardStyle("light"))
	case themeDark:
		options = append(options, glamour.WithStandardStyle("dark"))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	helpRenderer, helpRendererErr = glamour.NewTermRenderer(options...)
	if helpRendererErr != nil {
		return nil
	}
	return helpRenderer
}

func setUITheme(theme uiTheme) {
	themeMu.Lock()
	if theme == "" {
		theme = themeAuto
	}
	if activeTheme != theme {
		activeTheme = theme
		helpRenderer = nil
		helpRendererErr = nil
	}
	themeMu.Unlock()
}

func setHelpWordWrap(width int) {
	themeMu.Lock()
	if width < 0 {
		width = 0
	}
	if helpRendererWidth != width {
		helpRendererWidth = width
		helpRenderer = nil
		helpRendererErr = nil
	}
	themeMu.Unlock()
}

func currentUITheme() uiTheme {
	themeMu.Lock()
	defer themeMu.Unlock()
	return activeTheme
}

func themeFromString(value string) uiTheme {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return themeDark
	case "light":
		return themeLight
	default:
		return themeAuto
	}
}

func (t uiTheme) String() string {
	switch t {
	case themeDark:
		return "dark"
	case themeLight:
		return "light"
	default:
		return "auto"
	}
}

func themeLabel(theme uiTheme) string {
	switch theme {
	case themeDark:
		return "Dark"
	case themeLight:
		return "Light"
	default:
		return "Auto"
	}
}

func nextUITheme(theme uiTheme) uiTheme {
	switch theme {
	case themeAuto:
		return themeDark
	case themeDark:
		return themeLight
	default:
		return themeAuto
	}
}
