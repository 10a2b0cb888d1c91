package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	apiFlag := flag.String("api", "", "catalog API endpoint (overrides config)")
	themeFlag := flag.String("theme", "", "ui theme: auto, dark or light (overrides config)")
	playerFlag := flag.String("player", "", "player command (overrides config, default mpv)")
	flag.Parse()

	cfg, cfgPath := loadUIConfig()
	if *apiFlag != "" {
		cfg.APIEndpoint = *apiFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	if *playerFlag != "" {
		cfg.PlayerCommand = *playerFlag
	}
	setUITheme(themeFromString(cfg.Theme))

	m := initialModel(cfg, cfgPath)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vptui: %v\n", err)
		os.Exit(1)
	}
}
