package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/oahu-surf/internal/app"
	"github.com/ngmaloney/oahu-surf/internal/config"
	"github.com/ngmaloney/oahu-surf/internal/logger"
	"github.com/ngmaloney/oahu-surf/internal/observability"
	"github.com/ngmaloney/oahu-surf/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (default ~/.config/oahu-surf/config.toml)")
	once := flag.Bool("once", false, "Print the report once and exit instead of starting the terminal UI")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal UI owns stdout, so logs go to a file
	log, logFile, err := logger.NewFileLogger(conf.LogLevel, conf.Log.File)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	clock := clockwork.NewRealClock()
	a, err := app.New(conf, observability.NewMetrics(), log, clock)
	if err != nil {
		log.Error("failed to start", logger.Err(err))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if *once {
		snap, err := a.Loader.Load(context.Background())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			a.Close()
			os.Exit(1)
		}
		fmt.Println(ui.RenderText(snap))
		return
	}

	p := tea.NewProgram(ui.NewModel(a.Loader, clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}
