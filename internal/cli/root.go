package cli

import (
	"github.com/dmontes/ipogen/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Orders  service.OrderService
	Catalog service.CatalogService

	// IsInteractive reports whether stdin is attached to a terminal;
	// the new-order wizard requires one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ipogen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ipogen",
		Short: "Generate Master Services Agreement Individual Project Orders",
	}

	root.AddCommand(
		newNewCmd(app),
		newGenerateCmd(app),
		newCatalogCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)

	return root
}
