package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

// initCmd represents the pack init command
var initCmd = &cobra.Command{
	Use:   "init [loader] [gameVersion]",
	Short: "Initialise a pack manifest in the current directory",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		manifestPath := viper.GetString("manifest-file")
		if _, err := os.Stat(manifestPath); err == nil && !viper.GetBool("init.reinit") {
			shared.Exitln(manifestPath + " already exists; pass --reinit to recreate it")
		}

		loader, err := core.ParseLoader(args[0])
		if err != nil {
			shared.Exitln(err)
		}

		gameVersion := ""
		if len(args) == 2 {
			gameVersion = args[1]
		}

		mcVersions, mcErr := core.GetMinecraftVersions()
		if viper.GetBool("init.latest") {
			if gameVersion != "" {
				shared.Exitln("--latest cannot be combined with an explicit game version")
			}
			if mcErr != nil {
				shared.Exitf("Failed to fetch the list of Minecraft versions: %v\n", mcErr)
			}
			gameVersion = mcVersions.Latest
		}
		if gameVersion == "" {
			shared.Exitln("specify a game version, or pass --latest to use the newest release")
		}
		if mcErr == nil && !mcVersions.CheckValid(gameVersion) {
			fmt.Printf("Warning: %s is not a released version of Minecraft\n", gameVersion)
		}

		pack := core.NewPack(loader, gameVersion)
		savePack(*pack)
		fmt.Printf("%s created for %s %s!\n", manifestPath, loader.FriendlyName(), gameVersion)
	},
}

func init() {
	packCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("latest", "l", false, "Use the latest release of Minecraft")
	_ = viper.BindPFlag("init.latest", initCmd.Flags().Lookup("latest"))
	initCmd.Flags().BoolP("reinit", "r", false, "Recreate the manifest if it already exists, rather than exiting")
	_ = viper.BindPFlag("init.reinit", initCmd.Flags().Lookup("reinit"))
}
