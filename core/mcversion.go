package core

import (
	"encoding/json"
	"io"
	"slices"
)

type mcVersionManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	} `json:"versions"`
}

// McVersionInfo holds the released versions of Minecraft, newest first
type McVersionInfo struct {
	Latest         string
	LatestSnapshot string
	Versions       []string
}

func (m McVersionInfo) CheckValid(version string) bool {
	return slices.Contains(m.Versions, version)
}

// GetMinecraftVersions fetches the known Minecraft versions from Mojang's
// launcher metadata, filtered to full releases.
func GetMinecraftVersions() (McVersionInfo, error) {
	var versionInfo McVersionInfo

	resp, err := GetWithUA("https://launchermeta.mojang.com/mc/game/version_manifest.json", "application/json")
	if err != nil {
		return versionInfo, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return versionInfo, err
	}

	var manifest mcVersionManifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return versionInfo, err
	}

	versions := make([]string, 0, len(manifest.Versions))
	for _, v := range manifest.Versions {
		if v.Type != "release" {
			continue
		}
		versions = append(versions, v.ID)
	}

	return McVersionInfo{
		Latest:         manifest.Latest.Release,
		LatestSnapshot: manifest.Latest.Snapshot,
		Versions:       versions,
	}, nil
}
