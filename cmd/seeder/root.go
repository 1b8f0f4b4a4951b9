package main

import (
	"time"

	"github.com/MKhiriev/go-film-catalog/internal/config"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/spf13/cobra"
)

// connectionFlags are shared by every command that talks to the API.
type connectionFlags struct {
	address    string
	timeout    time.Duration
	configPath string
}

// overrides turns the flags into the highest-priority non-file config
// source; zero values leave .env and environment settings in place.
func (f *connectionFlags) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		Adapter: config.Adapter{
			HTTPAddress:    f.address,
			RequestTimeout: f.timeout,
		},
		JSONFilePath: f.configPath,
	}
}

func newRootCommand(build models.AppBuildInfo) *cobra.Command {
	var flags connectionFlags

	cmd := &cobra.Command{
		Use:   "film-seeder",
		Short: "Fill a film catalog through its API",
		Long: `film-seeder reads a YAML catalog of categories, actors, directors and
movies and creates them through the catalog API as a staff user.

Settings come from flags, ADAPTER_* environment variables, a .env file, or
a JSON config file (-c).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.address, "address", "a", "", "catalog API address, e.g. localhost:8080")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout (e.g. 30s)")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "JSON config file path")

	cmd.AddCommand(newSeedCommand(&flags))
	cmd.AddCommand(newVersionCommand(&flags, build))

	return cmd
}
