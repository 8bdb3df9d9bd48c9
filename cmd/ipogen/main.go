package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmontes/ipogen/internal/cli"
	"github.com/dmontes/ipogen/internal/db"
	"github.com/dmontes/ipogen/internal/render"
	"github.com/dmontes/ipogen/internal/repository"
	"github.com/dmontes/ipogen/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ipogen/ipogen.db
	dbPath := os.Getenv("IPOGEN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ipogen", "ipogen.db")
	}

	// Open database (catalog seed + generation history)
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	orderRepo := repository.NewSQLiteOrderRepo(database)

	app := &cli.App{
		Orders:  service.NewOrderService(render.NewRenderer(), orderRepo),
		Catalog: service.NewCatalogService(catalogRepo),
	}

	// Detect interactive terminal for the order wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
