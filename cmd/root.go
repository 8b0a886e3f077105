package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var manifestFile string
var modsFolder string
var nonInteractive bool
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mod-updater",
	Short: "A command line tool for managing Minecraft mods from Modrinth",
}

// Execute starts the root command for mod-updater
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&manifestFile, "manifest-file", "mods.yaml", "The pack manifest file to use")
	_ = viper.BindPFlag("manifest-file", rootCmd.PersistentFlags().Lookup("manifest-file"))

	rootCmd.PersistentFlags().StringVar(&modsFolder, "mods-folder", "mods", "The folder to store downloaded mod files in")
	_ = viper.BindPFlag("mods-folder", rootCmd.PersistentFlags().Lookup("mods-folder"))

	rootCmd.PersistentFlags().BoolVarP(&nonInteractive, "non-interactive", "y", false, "Accept the default answer for all prompts")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mod-updater.toml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".mod-updater" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigName(".mod-updater")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
