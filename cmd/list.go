package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the pack list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the mods in the pack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pack := loadPack()

		fmt.Printf("%s %s (%d mods)\n", pack.Loader.FriendlyName(), pack.GameVersion, len(pack.Mods))
		for _, entry := range pack.Mods {
			if viper.GetBool("list.version") {
				fmt.Printf("%s [%s] (%s)\n", entry.Slug, entry.VersionID, entry.FileName)
			} else {
				fmt.Println(entry.Slug)
			}
		}
	},
}

func init() {
	packCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("version", "v", false, "Print the pinned version and file of each mod")
	_ = viper.BindPFlag("list.version", listCmd.Flags().Lookup("version"))
}
