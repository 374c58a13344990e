// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-server/internal/scholarships"
	"github.com/pdiddy/catalog-server/internal/snapshot"
)

var scholarshipsCmd = &cobra.Command{
	Use:   "scholarships",
	Short: "Query the scholarship snapshots from the command line",
	Long: `Scholarships joins the scholarship snapshot with its application-steps
snapshot, applies the catalogue filters, and prints the same JSON envelope
the HTTP API returns.`,
	RunE: runScholarships,
}

func runScholarships(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	mainPath, stepsPath := manifest.ScholarshipPaths()
	records, details, err := snapshot.LoadPair(cmd.Context(), mainPath, stepsPath)
	if err != nil {
		return err
	}

	filters := scholarships.Filters{}
	filters.Country, _ = cmd.Flags().GetString("country")
	filters.Level, _ = cmd.Flags().GetString("level")
	filters.Deadline, _ = cmd.Flags().GetString("deadline")
	filters.Text, _ = cmd.Flags().GetString("q")

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	result := scholarships.Query(records, details, filters, page, pageSize)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func init() {
	scholarshipsCmd.Flags().String("q", "", "substring filter against name and provider")
	scholarshipsCmd.Flags().String("country", "", "case-insensitive country filter")
	scholarshipsCmd.Flags().String("level", "", "degree level filter")
	scholarshipsCmd.Flags().String("deadline", "", "inclusive deadline floor (YYYY-MM-DD)")
	scholarshipsCmd.Flags().Int("page", 1, "page number")
	scholarshipsCmd.Flags().Int("page-size", 10, "records per page (max 50)")

	rootCmd.AddCommand(scholarshipsCmd)
}
