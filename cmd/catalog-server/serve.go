// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-server/internal/server"
	"github.com/pdiddy/catalog-server/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalogue HTTP API",
	Long: `Serve runs the HTTP API. Every request re-reads its snapshot files, so
snapshot updates are picked up without a restart.

Endpoints:
  GET /api/courses?country=&q=&page=&pageSize=
  GET /api/scholarships?q=&country=&level=&deadline=&page=&pageSize=
  GET /api/health`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	cfg := types.ServerConfig{
		Addr:          viper.GetString("addr"),
		PublicDir:     viper.GetString("public_dir"),
		AllowedOrigin: viper.GetString("allowed_origin"),
		RateLimit:     viper.GetFloat64("rate_limit"),
		RateBurst:     viper.GetInt("rate_burst"),
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if publicDir, _ := cmd.Flags().GetString("public-dir"); publicDir != "" {
		cfg.PublicDir = publicDir
	}
	if limit, _ := cmd.Flags().GetFloat64("rate-limit"); limit > 0 {
		cfg.RateLimit = limit
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return server.New(cfg, manifest, logger).ListenAndServe()
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("public-dir", "", "directory of static assets served at /")
	serveCmd.Flags().Float64("rate-limit", 0, "per-client requests per second (0 disables)")

	rootCmd.AddCommand(serveCmd)
}
