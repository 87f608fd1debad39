package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/cclean/internal/core"
	"github.com/lakshaymaurya-felt/cclean/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk usage per volume",
	Long:  "Report how full each mounted volume is, to judge whether a cleanup is worth running.",
	RunE: func(cmd *cobra.Command, args []string) error {
		elevation := "standard user"
		if core.IsElevated() {
			elevation = "administrator"
		}
		fmt.Printf("\n  CClean on %s (%s)\n\n", core.OSVersionString(), elevation)

		vols, err := status.Collect()
		if err != nil {
			log.Error().Err(err).Msg("disk usage collection failed")
			return fmt.Errorf("collect disk usage: %w", err)
		}

		fmt.Print(status.Render(vols))
		return nil
	},
}
