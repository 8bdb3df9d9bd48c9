package cli

import (
	"fmt"
	"net/http"

	"github.com/dmontes/ipogen/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the order form over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := web.NewServer(app.Orders, app.Catalog)
			if err != nil {
				return err
			}
			fmt.Printf("Serving order form on %s\n", addr)
			return http.ListenAndServe(addr, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
