package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/cclean/internal/config"
)

// categoryFlagOrder fixes the processing order when several category flags
// are combined.
var categoryFlagOrder = []struct {
	flag     string
	category config.Category
}{
	{"temp", config.TempFiles},
	{"browser", config.BrowserCache},
	{"system", config.SystemFiles},
	{"recycle", config.RecycleBin},
}

// addCategoryFlags registers the category selection flags.
func addCategoryFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("temp", false, "Only process temporary files")
	cmd.Flags().Bool("browser", false, "Only process browser cache")
	cmd.Flags().Bool("system", false, "Only process system files")
	cmd.Flags().Bool("recycle", false, "Only process the Recycle Bin")
	cmd.Flags().Bool("all", false, "Process all categories (default)")
}

// selectedCategories reads the category flags. No selection, --all, or all
// four flags together collapse to a single full run.
func selectedCategories(cmd *cobra.Command) []config.Category {
	var cats []config.Category
	for _, cf := range categoryFlagOrder {
		if on, _ := cmd.Flags().GetBool(cf.flag); on {
			cats = append(cats, cf.category)
		}
	}

	all, _ := cmd.Flags().GetBool("all")
	if all || len(cats) == 0 || len(cats) == len(categoryFlagOrder) {
		return []config.Category{config.All}
	}
	return cats
}
