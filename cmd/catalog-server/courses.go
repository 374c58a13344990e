// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-server/internal/programmes"
	"github.com/pdiddy/catalog-server/internal/snapshot"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [country]",
	Short: "Query a programme snapshot from the command line",
	Long: `Courses runs the programme query engine against one origin's snapshot and
prints the same JSON envelope the HTTP API returns.`,
	Args: cobra.ExactArgs(1),
	RunE: runCourses,
}

func runCourses(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	country := args[0]
	path, err := manifest.ProgrammePath(country)
	if err != nil {
		return err
	}

	records, err := snapshot.Load(path)
	if err != nil {
		return err
	}

	q, _ := cmd.Flags().GetString("q")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	result := programmes.Query(country, records, q, page, pageSize)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func init() {
	coursesCmd.Flags().String("q", "", "substring filter against resolved titles")
	coursesCmd.Flags().Int("page", 1, "page number")
	coursesCmd.Flags().Int("page-size", 10, "records per page (max 50)")

	rootCmd.AddCommand(coursesCmd)
}
