package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/cclean/internal/cleaner"
	"github.com/lakshaymaurya-felt/cclean/internal/cleanview"
	"github.com/lakshaymaurya-felt/cclean/internal/config"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Report reclaimable space without deleting",
	Long:  "Scan cleanup locations and report how much space a clean would free. Nothing is deleted.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, cat := range selectedCategories(cmd) {
			result := runScan(cat)
			fmt.Println(cleanview.RenderSummary("Scan", result, false))
		}
	},
}

func runScan(cat config.Category) cleaner.CleanupResult {
	title := "Scanning " + strings.ToLower(cat.String())
	return cleanview.Run(title, func(progress cleaner.ProgressFunc) cleaner.CleanupResult {
		c := cleaner.New(log,
			cleaner.WithVerbose(debug),
			cleaner.WithProgress(progress))
		return c.Scan(cat)
	})
}

func init() {
	addCategoryFlags(scanCmd)
}
