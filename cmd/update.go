package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/fileio"
	"github.com/FloatyJellyfish/mod-updater/internal/cmdshared"
)

// updateCmd represents the pack update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update all mods in the pack to their latest compatible versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pack := loadPack()
		if len(pack.Mods) == 0 {
			fmt.Println("Pack is empty, nothing to update.")
			return
		}

		fmt.Println("Checking for updates...")
		checks := core.CheckUpdates(&pack, modrinthSource())
		updates, failures := planUpdates(checks)

		if len(updates) == 0 {
			if len(failures) == 0 {
				fmt.Println("All mods are up to date!")
				return
			}
			summariseFailures(failures, len(checks))
			os.Exit(1)
		}

		if !cmdshared.PromptYesNo("Do you want to update? [Y/n]: ") {
			fmt.Println("Cancelled!")
			return
		}

		failures = append(failures, applyUpdates(&pack, updates)...)
		savePack(pack)

		if len(failures) > 0 {
			summariseFailures(failures, len(checks))
			os.Exit(1)
		}
		fmt.Println("Pack updated!")
	},
}

func init() {
	packCmd.AddCommand(updateCmd)
}

// planUpdates prints each check result and splits it into the updates to
// fetch and the slugs that already failed the check.
func planUpdates(checks []core.UpdateCheck) ([]core.UpdateCheck, []string) {
	var updates []core.UpdateCheck
	var failures []string
	for _, check := range checks {
		if check.Err != nil {
			fmt.Printf("Failed to check updates for %s: %v\n", check.Entry.Slug, check.Err)
			failures = append(failures, check.Entry.Slug)
			continue
		}
		if check.NewVersion == nil {
			continue
		}
		fmt.Printf("%s: %s -> %s\n", check.Entry.Slug, check.Entry.FileName, check.NewVersion.FileName)
		updates = append(updates, check)
	}
	return updates, failures
}

// applyUpdates downloads every planned update and rewrites the pin of each
// entry whose download succeeded. The pin is only moved after the file is on
// disk, so an interrupted run never records a version that was not fetched.
func applyUpdates(pack *core.Pack, updates []core.UpdateCheck) []string {
	tasks := make([]fileio.DownloadTask, len(updates))
	for i, check := range updates {
		tasks[i] = fileio.DownloadTask{
			Slug:     check.Entry.Slug,
			URL:      check.NewVersion.URL,
			FileName: check.NewVersion.FileName,
		}
	}

	var failures []string
	results := fileio.DownloadAll(tasks, viper.GetString("mods-folder"), fileio.DefaultDownloadWorkers)
	for i, res := range results {
		if res.Err != nil {
			fmt.Printf("Failed to download %s: %v\n", res.Task.FileName, res.Err)
			failures = append(failures, res.Task.Slug)
			continue
		}
		if err := core.ApplyUpdate(pack, updates[i].Entry.Slug, updates[i].NewVersion); err != nil {
			fmt.Printf("Failed to record update for %s: %v\n", res.Task.Slug, err)
			failures = append(failures, res.Task.Slug)
		}
	}
	return failures
}

func summariseFailures(failures []string, total int) {
	fmt.Printf("%d of %d mods failed to update: %s\n", len(failures), total, strings.Join(failures, ", "))
}
