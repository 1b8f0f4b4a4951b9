package main

import (
	"fmt"
	"runtime"

	"github.com/MKhiriev/go-film-catalog/internal/adapter"
	"github.com/MKhiriev/go-film-catalog/internal/config"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/spf13/cobra"
)

func newVersionCommand(conn *connectionFlags, build models.AppBuildInfo) *cobra.Command {
	var server bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the seeder build information and, with --server, the version reported by the catalog API.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, build)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

			if !server {
				return nil
			}

			cfg, err := config.GetClientConnectionConfig(conn.overrides())
			if err != nil {
				return err
			}

			catalogAdapter, err := adapter.NewHTTPCatalogAdapter(cfg, logger.Nop())
			if err != nil {
				return err
			}

			version, err := catalogAdapter.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("error getting server version: %w", err)
			}
			fmt.Fprintf(out, "Server version: %s\n", version)

			return nil
		},
	}

	cmd.Flags().BoolVar(&server, "server", false, "also query the server version")

	return cmd
}
