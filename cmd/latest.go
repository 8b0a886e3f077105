package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

// latestCmd represents the latest command
var latestCmd = &cobra.Command{
	Use:   "latest [mod] [loader] [gameVersion]",
	Short: "Show the latest version of a mod for a given mod loader",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := core.ParseLoader(args[1])
		if err != nil {
			shared.Exitln(err)
		}
		gameVersion := ""
		if len(args) == 3 {
			gameVersion = args[2]
		}

		version, err := modrinthSource().Latest(args[0], loader, gameVersion)
		if err != nil {
			shared.Exitln(err)
		}

		fmt.Printf("Latest version for mod '%s':\n", args[0])
		fmt.Printf("\t%s - %s\n", version.Name, strings.Join(version.GameVersions, ", "))
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
}
