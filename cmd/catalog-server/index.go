// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-server/internal/catalogindex"
	"github.com/pdiddy/catalog-server/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Maintain the offline snapshot index (build, search)",
	Long: `Index maintains a local SQLite full-text index over the programme
snapshots. The index is a data-team inspection tool; the HTTP API never
reads it and always serves from the snapshots directly.`,
}

// --- build subcommand ---

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Index every origin's snapshot",
	Long: `Build indexes each origin's snapshot with its resolved titles. Snapshots
unchanged since the previous run are skipped.`,
	RunE: runIndexBuild,
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	store, err := catalogindex.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Build(cmd.Context(), manifest, os.Stdout)
	return err
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over indexed programme titles",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	store, err := catalogindex.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	origin, _ := cmd.Flags().GetString("origin")
	limit, _ := cmd.Flags().GetInt("limit")

	hits, err := store.Search(cmd.Context(), args[0], origin, limit)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(hits)
}

// --- shared config ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	cfg := types.IndexConfig{
		IndexDir:   viper.GetString("index_dir"),
		MaxResults: viper.GetInt("index_max_results"),
	}
	if dir, _ := cmd.Flags().GetString("index-dir"); dir != "" {
		cfg.IndexDir = dir
	}
	if cfg.IndexDir == "" {
		cfg.IndexDir = "index"
	}
	return cfg
}

func init() {
	indexCmd.PersistentFlags().String("index-dir", "", "index directory (default: ./index)")
	indexSearchCmd.Flags().String("origin", "", "restrict search to one origin")
	indexSearchCmd.Flags().Int("limit", 0, "maximum hits (default 20)")

	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexSearchCmd)
	rootCmd.AddCommand(indexCmd)
}
