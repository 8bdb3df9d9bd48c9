package cli

import (
	"context"
	"fmt"

	"github.com/dmontes/ipogen/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the predefined task catalog",
	}

	cmd.AddCommand(newCatalogListCmd(app), newCatalogShowCmd(app))

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog tasks with their default fees",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Catalog.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatCatalog(tasks))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE",
		Short: "Show the scope text for one catalog task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Catalog.GetByCode(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n", formatter.Header(fmt.Sprintf("Task %s — %s", task.Code, task.Name)))
			for _, para := range task.Paragraphs {
				fmt.Printf("%s\n\n", para)
			}
			return nil
		},
	}
}
