package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/unascribed/FlexVer/go/flexver"
)

// VersionSource looks up mod versions from a remote repository. Implemented
// by sources.Modrinth; injected so the sync operations can be exercised
// without a network connection or a terminal.
type VersionSource interface {
	// Resolve finds a mod by slug or search query and returns its latest
	// version compatible with the given loader and game version.
	Resolve(query string, loader Loader, gameVersion string) (*ModVersion, error)
	// Latest returns the most recently published version of the mod with
	// the given slug compatible with the loader and, when non-empty, the
	// game version.
	Latest(slug string, loader Loader, gameVersion string) (*ModVersion, error)
	// VersionByID fetches a specific version by its ID.
	VersionByID(versionID string) (*ModVersion, error)
	// SupportedGameVersions returns every game version any version of the
	// mod supports under the given loader.
	SupportedGameVersions(slug string, loader Loader) ([]string, error)
}

// UpdateCheck stores the result of checking one mod entry for updates.
// NewVersion is nil when the entry is already at the latest compatible
// version.
type UpdateCheck struct {
	Entry      ModEntry
	NewVersion *ModVersion
	Err        error
}

// Add resolves modName against the pack's loader and game version and
// appends a new entry. The returned version still has to be downloaded and
// the manifest saved by the caller.
func Add(pack *Pack, src VersionSource, modName string) (*ModVersion, error) {
	if pack.HasMod(modName) {
		return nil, fmt.Errorf("%s: %w", modName, ErrAlreadyPresent)
	}
	version, err := src.Resolve(modName, pack.Loader, pack.GameVersion)
	if err != nil {
		return nil, err
	}
	if err := pack.AddMod(ModEntry{
		Slug:      version.Slug,
		VersionID: version.ID,
		FileName:  version.FileName,
	}); err != nil {
		return nil, err
	}
	return version, nil
}

// CheckUpdates resolves the latest compatible version for every entry.
// Failures are reported per entry and do not abort the remaining checks.
func CheckUpdates(pack *Pack, src VersionSource) []UpdateCheck {
	checks := make([]UpdateCheck, len(pack.Mods))
	for i, entry := range pack.Mods {
		latest, err := src.Latest(entry.Slug, pack.Loader, pack.GameVersion)
		if err != nil {
			checks[i] = UpdateCheck{Entry: entry, Err: fmt.Errorf("failed to get latest version: %w", err)}
			continue
		}
		if latest.ID == entry.VersionID {
			checks[i] = UpdateCheck{Entry: entry}
			continue
		}
		checks[i] = UpdateCheck{Entry: entry, NewVersion: latest}
	}
	return checks
}

// ApplyUpdate rewrites the pin for one entry. Call only after the file for
// the new version has been downloaded, so an interrupted run never records
// a version that was not fetched.
func ApplyUpdate(pack *Pack, slug string, version *ModVersion) error {
	return pack.SetMod(ModEntry{
		Slug:      slug,
		VersionID: version.ID,
		FileName:  version.FileName,
	})
}

// UpgradeTarget computes the highest game version supported by every mod in
// the pack under its current loader. The result never goes below the pack's
// current game version; when no higher common version exists the current one
// is returned unchanged.
func UpgradeTarget(pack *Pack, src VersionSource) (string, error) {
	if len(pack.Mods) == 0 {
		return pack.GameVersion, nil
	}
	var common []string
	for i, entry := range pack.Mods {
		supported, err := src.SupportedGameVersions(entry.Slug, pack.Loader)
		if err != nil {
			return "", fmt.Errorf("failed to list game versions for %s: %w", entry.Slug, err)
		}
		if i == 0 {
			common = supported
		} else {
			common = IntersectVersions(common, supported)
		}
		if len(common) == 0 {
			break
		}
	}
	target := HighestVersion(common)
	if target == "" || flexver.Less(target, pack.GameVersion) {
		return pack.GameVersion, nil
	}
	return target, nil
}

// MissingFiles returns the entries whose pinned file is not present in
// modsDir. With every file present the result is empty, making a download
// pass a no-op.
func MissingFiles(pack *Pack, modsDir string) ([]ModEntry, error) {
	var missing []ModEntry
	for _, entry := range pack.Mods {
		_, err := os.Stat(filepath.Join(modsDir, entry.FileName))
		if errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, entry)
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return missing, nil
}

// Remove deletes the entry for slug. The downloaded file is left on disk
// since it may be shared or manually managed.
func Remove(pack *Pack, slug string) error {
	return pack.RemoveMod(slug)
}
