package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/fileio"
	"github.com/FloatyJellyfish/mod-updater/internal/cmdshared"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
	"github.com/FloatyJellyfish/mod-updater/sources"
)

// packCmd groups the subcommands that operate on the local pack manifest
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage the local pack manifest and its mod files",
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func loadPack() core.Pack {
	pack, err := fileio.LoadManifest(viper.GetString("manifest-file"))
	if err != nil {
		shared.Exitln(err)
	}
	return pack
}

func savePack(pack core.Pack) {
	if err := fileio.WriteManifest(pack, viper.GetString("manifest-file")); err != nil {
		shared.Exitf("Failed to write manifest: %v\n", err)
	}
}

func modrinthSource() *sources.Modrinth {
	return sources.NewModrinth(cmdshared.ChooseProject)
}
