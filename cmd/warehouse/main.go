// cmd/warehouse/main.go
//
// This is the entry point for the warehouse tool.
//
// Flow:
// 1. Initialize the .warehouse folder and load the config
// 2. Load the two datasets (fatal if either is missing or malformed)
// 3. Run the interactive shell
// 4. After the shell exits, print the farewell and the session recap

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riteshp/the-warehouse/internal/catalog"
	"github.com/riteshp/the-warehouse/internal/config"
	"github.com/riteshp/the-warehouse/internal/logging"
	"github.com/riteshp/the-warehouse/internal/personnel"
	"github.com/riteshp/the-warehouse/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitWarehouseDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .warehouse directory: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The application cannot run without its datasets.
	stock, err := catalog.Load(cfg.StockPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading the stock dataset: %v\n", err)
		os.Exit(1)
	}
	people, err := personnel.Load(cfg.PersonnelPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading the personnel dataset: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening the diagnostic log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	app := tui.NewApp(cfg, stock, people, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running the shell: %v\n", err)
		os.Exit(1)
	}

	// The alt screen is gone now, so the farewell and the recap land in
	// the regular terminal scrollback.
	sess := app.Session()
	fmt.Printf("\nThank you for your visit, %s!\n", sess.UserName())
	fmt.Println(sess.Log().Recap())
}
