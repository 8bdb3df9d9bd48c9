package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmontes/ipogen/internal/cli/formatter"
	"github.com/dmontes/ipogen/internal/domain"
	"github.com/dmontes/ipogen/internal/importer"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Generate a document from a JSON order file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req, err := importer.LoadFile(ctx, args[0], app.Catalog)
			if err != nil {
				return err
			}

			out, err := app.Orders.Generate(ctx, req)
			if err != nil {
				var verr *domain.ValidationError
				if errors.As(err, &verr) {
					printValidationError(verr)
				}
				return err
			}

			path := output
			if path == "" {
				path = out.Filename
			}
			if err := os.WriteFile(path, out.Document, 0644); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}

			fmt.Printf("Generated %s (%s, total %s)\n",
				path, out.Record.IPONumber, domain.FormatUSD(out.Record.TotalCents))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: derived from the IPO number and project name)")

	return cmd
}

// printValidationError lists each invalid field on its own line so
// the user can correct the order file in one pass.
func printValidationError(verr *domain.ValidationError) {
	fmt.Fprintln(os.Stderr, formatter.Bold("The order file has problems:"))
	for _, f := range verr.Fields {
		fmt.Fprintf(os.Stderr, "  %s %s\n", formatter.StyleRed.Render("✗"), f.Error())
	}
}
