package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

var versionsLoader string
var versionsGameVersion string

// versionsCmd represents the versions command
var versionsCmd = &cobra.Command{
	Use:   "versions [mod]",
	Short: "List all versions for a mod",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var loader core.Loader
		if versionsLoader != "" {
			var err error
			loader, err = core.ParseLoader(versionsLoader)
			if err != nil {
				shared.Exitln(err)
			}
		}

		versions, err := modrinthSource().ListVersions(args[0], loader, versionsGameVersion)
		if err != nil {
			shared.Exitln(err)
		}

		fmt.Printf("Mod versions for '%s':\n", args[0])
		for _, v := range versions {
			fmt.Printf("\t%s - %s %s\n", v.Name, strings.Join(v.GameVersions, ", "), strings.Join(v.Loaders, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)

	versionsCmd.Flags().StringVarP(&versionsLoader, "loader", "l", "", "Filter by mod loader")
	versionsCmd.Flags().StringVarP(&versionsGameVersion, "game-version", "g", "", "Filter by game version (e.g. 1.21.4)")
}
