package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/fileio"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

// packDownloadCmd represents the pack download command. It recovers missing
// mod files, e.g. after the manifest was copied to a fresh machine.
var packDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download any missing mod files for the current manifest",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pack := loadPack()
		modsDir := viper.GetString("mods-folder")

		missing, err := core.MissingFiles(&pack, modsDir)
		if err != nil {
			shared.Exitln(err)
		}
		if len(missing) == 0 {
			fmt.Println("All mod files are already present!")
			return
		}

		// Download URLs are not persisted, so re-fetch them from the API
		// for each pinned version
		src := modrinthSource()
		var tasks []fileio.DownloadTask
		var failures []string
		for _, entry := range missing {
			version, err := src.VersionByID(entry.VersionID)
			if err != nil {
				fmt.Printf("Failed to look up %s: %v\n", entry.Slug, err)
				failures = append(failures, entry.Slug)
				continue
			}
			tasks = append(tasks, fileio.DownloadTask{
				Slug:     entry.Slug,
				URL:      version.URL,
				FileName: entry.FileName,
			})
		}

		results := fileio.DownloadAll(tasks, modsDir, fileio.DefaultDownloadWorkers)
		downloaded := 0
		for _, res := range results {
			if res.Err != nil {
				fmt.Printf("Failed to download %s: %v\n", res.Task.FileName, res.Err)
				failures = append(failures, res.Task.Slug)
				continue
			}
			downloaded++
		}

		if len(failures) > 0 {
			shared.Exitf("%d of %d missing files could not be downloaded: %s\n",
				len(failures), len(missing), strings.Join(failures, ", "))
		}
		fmt.Printf("Downloaded %d missing file(s)!\n", downloaded)
	},
}

func init() {
	packCmd.AddCommand(packDownloadCmd)
}
