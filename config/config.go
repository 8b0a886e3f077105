package config

var Version = "dev"

func SetVersion(version string) {
	if version != "" {
		Version = version
	}
}

// UserAgent identifies this tool to the Modrinth API, per their API policy.
func UserAgent() string {
	return "FloatyJellyfish/mod-updater/" + Version
}
