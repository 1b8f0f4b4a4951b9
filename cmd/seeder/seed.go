package main

import (
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/adapter"
	"github.com/MKhiriev/go-film-catalog/internal/config"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/seeder"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultCatalogFile = "catalog.yaml"

func newSeedCommand(conn *connectionFlags) *cobra.Command {
	var (
		catalogPath string
		email       string
		password    string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the entities of a catalog file",
		Long: `Log in as a staff user and create every category, actor, director and
movie listed in the catalog file. Entities that already exist are reused;
movies whose title is already listed are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := conn.overrides()
			overrides.Adapter.AdminEmail = email
			overrides.Adapter.AdminPassword = password

			cfg, err := config.GetClientConfig(overrides)
			if err != nil {
				return err
			}

			catalog, err := seeder.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			log := logger.NewConsoleLogger("film-seeder")
			if !verbose {
				log = log.WithLevel(zerolog.InfoLevel)
			}

			catalogAdapter, err := adapter.NewHTTPCatalogAdapter(cfg, log)
			if err != nil {
				return err
			}

			report, err := seeder.NewSeeder(catalogAdapter, log).Seed(cmd.Context(), catalog, models.Credentials{
				Email:    cfg.AdminEmail,
				Password: cfg.AdminPassword,
			})
			fmt.Fprint(cmd.OutOrStdout(), report)
			if err != nil {
				return fmt.Errorf("seeding finished with errors: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&catalogPath, "file", "f", defaultCatalogFile, "YAML catalog file")
	cmd.Flags().StringVar(&email, "email", "", "staff account email")
	cmd.Flags().StringVar(&password, "password", "", "staff account password (prefer ADAPTER_ADMIN_PASSWORD)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log reused entities")

	return cmd
}
