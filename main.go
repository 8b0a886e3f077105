package main

import (
	"github.com/FloatyJellyfish/mod-updater/cmd"
	"github.com/FloatyJellyfish/mod-updater/config"
)

// Version is set at build time via ldflags
var Version string

func main() {
	config.SetVersion(Version)
	cmd.Execute()
}
