package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/cclean/internal/cleaner"
	"github.com/lakshaymaurya-felt/cclean/internal/cleanview"
	"github.com/lakshaymaurya-felt/cclean/internal/config"
	"github.com/lakshaymaurya-felt/cclean/internal/core"
	"github.com/lakshaymaurya-felt/cclean/internal/status"
)

var (
	dryRun    bool
	assumeYes bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long:  "Delete eligible files from cleanup locations. Scans first and asks for confirmation unless --yes or --dry-run is given.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, cat := range selectedCategories(cmd) {
			runClean(cat)
		}
	},
}

func runClean(cat config.Category) {
	if config.RequiresAdmin(cat) && !core.IsElevated() {
		fmt.Println("  Note: running without administrator rights; system locations will mostly be skipped.")
		log.Warn().Str("category", cat.String()).Msg("cleaning system locations without elevation")
	}

	// Real cleans confirm against a fresh scan. Dry runs have nothing to
	// confirm, and --yes skips straight to cleaning.
	if !dryRun && !assumeYes {
		scanResult := runScan(cat)
		fmt.Printf("\n  Files found: %d\n  Space to free: %s\n\n",
			scanResult.FilesScanned, core.FormatSize(scanResult.BytesFreed))

		if scanResult.FilesScanned == 0 {
			fmt.Println("  Nothing to clean.")
			return
		}
		if !confirm("  Proceed with cleanup?") {
			fmt.Println("  Aborted.")
			return
		}
	}

	freeBefore, beforeErr := status.FreeOn(systemRoot())

	title := "Cleaning " + strings.ToLower(cat.String())
	if dryRun {
		title += " (dry run)"
	}
	result := cleanview.Run(title, func(progress cleaner.ProgressFunc) cleaner.CleanupResult {
		c := cleaner.New(log,
			cleaner.WithDryRun(dryRun),
			cleaner.WithVerbose(debug),
			cleaner.WithProgress(progress))
		return c.Clean(cat)
	})

	fmt.Println(cleanview.RenderSummary("Cleanup", result, dryRun))

	if !dryRun && beforeErr == nil {
		if freeAfter, err := status.FreeOn(systemRoot()); err == nil && freeAfter >= freeBefore {
			fmt.Printf("  Free space: %s -> %s\n",
				core.FormatSize(int64(freeBefore)), core.FormatSize(int64(freeAfter)))
		}
	}
}

// confirm prompts on stdout and reads one line from stdin.
// Anything but an explicit yes declines.
func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// systemRoot returns the volume the cleanup targets mostly live on.
func systemRoot() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return "/"
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup without deleting")
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	addCategoryFlags(cleanCmd)
}
