package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hpungsan/cardex/internal/config"
	"github.com/hpungsan/cardex/internal/db"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return true
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

func main() {
	// A .env file in the working directory may supply CARDEX_* overrides.
	_ = godotenv.Load()

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".cardex")

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Init(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	db.ConfigurePool(database, cfg)

	app := newCLIApp(database, cfg)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
