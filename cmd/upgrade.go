package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FloatyJellyfish/mod-updater/core"
	"github.com/FloatyJellyfish/mod-updater/internal/cmdshared"
	"github.com/FloatyJellyfish/mod-updater/internal/shared"
)

// upgradeCmd represents the pack upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the pack to the newest game version every mod supports",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pack := loadPack()
		if len(pack.Mods) == 0 {
			shared.Exitln("Pack is empty; use 'pack init --reinit' to change the game version directly.")
		}

		src := modrinthSource()
		fmt.Println("Checking supported game versions...")
		target, err := core.UpgradeTarget(&pack, src)
		if err != nil {
			shared.Exitln(err)
		}
		if target == pack.GameVersion {
			fmt.Printf("Pack is already at the highest game version every mod supports (%s).\n", pack.GameVersion)
			return
		}

		if !cmdshared.PromptYesNo(fmt.Sprintf("Upgrade the pack from %s to %s? [Y/n]: ", pack.GameVersion, target)) {
			fmt.Println("Cancelled!")
			return
		}

		pack.GameVersion = target
		fmt.Println("Checking for updates...")
		checks := core.CheckUpdates(&pack, src)
		updates, failures := planUpdates(checks)
		failures = append(failures, applyUpdates(&pack, updates)...)
		savePack(pack)

		if len(failures) > 0 {
			summariseFailures(failures, len(checks))
			os.Exit(1)
		}
		fmt.Printf("Pack upgraded to %s!\n", target)
	},
}

func init() {
	packCmd.AddCommand(upgradeCmd)
}
