package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/fileio"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

// addCmd represents the pack add command
var addCmd = &cobra.Command{
	Use:     "add [mod]",
	Short:   "Add a mod from Modrinth to the pack",
	Aliases: []string{"install", "get"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pack := loadPack()

		version, err := core.Add(&pack, modrinthSource(), args[0])
		if err != nil {
			shared.Exitf("Failed to add mod: %v\n", err)
		}

		fmt.Printf("Adding %s %s...\n", version.Slug, version.VersionNumber)
		results := fileio.DownloadAll([]fileio.DownloadTask{{
			Slug:     version.Slug,
			URL:      version.URL,
			FileName: version.FileName,
		}}, viper.GetString("mods-folder"), 1)
		if results[0].Err != nil {
			shared.Exitf("Failed to download %s: %v\n", version.FileName, results[0].Err)
		}

		savePack(pack)
		fmt.Printf("%s added to the pack! (%s)\n", version.Slug, version.FileName)
	},
}

func init() {
	packCmd.AddCommand(addCmd)
}
