package cli

import (
	"context"
	"fmt"

	"github.com/dmontes/ipogen/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect previously generated orders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List generated orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Orders.History(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No orders generated yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatHistory(records))
			return nil
		},
	})

	return cmd
}
