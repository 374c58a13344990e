// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the catalog-server CLI.
// Subcommands cover the two surfaces of the catalogue: serve runs the HTTP
// API, courses and scholarships run the same query engines from the command
// line, and index maintains the offline snapshot index.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-server/internal/snapshot"
	"github.com/pdiddy/catalog-server/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the catalog-server CLI.
var rootCmd = &cobra.Command{
	Use:   "catalog-server",
	Short: "Serve study programme and scholarship catalogues from JSON snapshots",
	Long: `catalog-server serves paginated, filterable catalogues of study programmes
and scholarships from line-delimited JSON snapshots.

The serve command runs the HTTP API. The courses and scholarships commands
run the same query engines directly from the command line, and index builds
a local full-text index over the snapshots for offline inspection.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./catalog-server.yaml or ~/.config/catalog-server/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "snapshot data directory (default: ./data)")
	rootCmd.PersistentFlags().String("manifest", "", "sources manifest file (default: <data-dir>/sources.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("catalog-server")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog-server"))
		}
	}

	viper.SetEnvPrefix("CATALOG_SERVER")
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", "data")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// catalogConfig resolves the snapshot location from flags and config.
// Flag values win over the config file.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	cfg := types.CatalogConfig{
		DataDir:      viper.GetString("data_dir"),
		ManifestPath: viper.GetString("manifest_path"),
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if manifestPath, _ := cmd.Flags().GetString("manifest"); manifestPath != "" {
		cfg.ManifestPath = manifestPath
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = filepath.Join(cfg.DataDir, "sources.yaml")
	}
	return cfg
}

// loadManifest reads the sources manifest; a missing manifest file yields
// the default snapshot layout.
func loadManifest(cmd *cobra.Command) (snapshot.Manifest, error) {
	cfg := catalogConfig(cmd)
	return snapshot.LoadManifest(cfg.ManifestPath, cfg.DataDir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
