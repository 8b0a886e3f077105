package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/fileio"
	"github.com/FloatyJellyfish/mod-updater/internal/cmdshared"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

var downloadLatest bool

// downloadCmd represents the standalone download command, for fetching a
// single mod file without a pack manifest.
var downloadCmd = &cobra.Command{
	Use:   "download [mod] [loader] [gameVersion]",
	Short: "Download a mod file into the current directory",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := core.ParseLoader(args[1])
		if err != nil {
			shared.Exitln(err)
		}
		gameVersion := args[2]
		src := modrinthSource()

		var version *core.ModVersion
		if downloadLatest {
			version, err = src.Latest(args[0], loader, gameVersion)
			if err != nil {
				shared.Exitln(err)
			}
		} else {
			versions, err := src.ListVersions(args[0], loader, gameVersion)
			if err != nil {
				shared.Exitln(err)
			}
			if len(versions) == 0 {
				shared.Exitf("No versions of %s support %s %s\n", args[0], loader, gameVersion)
			}
			version, err = cmdshared.ChooseVersion(versions)
			if err != nil {
				shared.Exitln(err)
			}
		}
		if version.URL == "" {
			shared.Exitf("Version %s of %s doesn't have any files attached\n", version.VersionNumber, args[0])
		}

		results := fileio.DownloadAll([]fileio.DownloadTask{{
			Slug:     args[0],
			URL:      version.URL,
			FileName: version.FileName,
		}}, ".", 1)
		if results[0].Err != nil {
			shared.Exitln(results[0].Err)
		}
		fmt.Printf("Downloaded %s!\n", version.FileName)
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().BoolVarP(&downloadLatest, "latest", "l", false, "Download the most recent matching version without prompting")
}
