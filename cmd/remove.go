package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

// removeCmd represents the pack remove command
var removeCmd = &cobra.Command{
	Use:     "remove [mod]",
	Short:   "Remove a mod from the pack",
	Aliases: []string{"delete", "uninstall"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pack := loadPack()

		if err := core.Remove(&pack, args[0]); err != nil {
			shared.Exitf("Failed to remove mod: %v\n", err)
		}

		savePack(pack)
		fmt.Printf("%s removed from the pack; the downloaded file is kept.\n", args[0])
	},
}

func init() {
	packCmd.AddCommand(removeCmd)
}
