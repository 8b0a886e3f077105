package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Pack stores the installed-mod state, usually in mods.yaml
type Pack struct {
	Format      string     `yaml:"format"`
	Loader      Loader     `yaml:"loader"`
	GameVersion string     `yaml:"game-version"`
	Mods        []ModEntry `yaml:"mods"`
}

// ModEntry pins one installed mod to a specific published version.
// Entries are unique by slug within a pack.
type ModEntry struct {
	Slug      string `yaml:"slug"`
	VersionID string `yaml:"version-id"`
	FileName  string `yaml:"filename"`
}

const CurrentManifestFormat = "mod-updater:1.0.0"

var ManifestFormatConstraintAccepted = mustParseConstraint("~1")

func mustParseConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

func NewPack(loader Loader, gameVersion string) *Pack {
	return &Pack{
		Format:      CurrentManifestFormat,
		Loader:      loader,
		GameVersion: gameVersion,
	}
}

// CheckFormat validates the manifest format field against the accepted range
func (pack *Pack) CheckFormat() error {
	if len(pack.Format) == 0 {
		pack.Format = CurrentManifestFormat
		return nil
	}
	if !strings.HasPrefix(pack.Format, "mod-updater:") {
		return errors.New("format field does not indicate a mod-updater manifest")
	}
	ver, err := semver.StrictNewVersion(strings.TrimPrefix(pack.Format, "mod-updater:"))
	if err != nil {
		return fmt.Errorf("format field is not valid semver: %w", err)
	}
	if !ManifestFormatConstraintAccepted.Check(ver) {
		return errors.New("the manifest was written by a newer version of mod-updater; please update")
	}
	return nil
}

func (pack *Pack) HasMod(slug string) bool {
	_, ok := pack.GetMod(slug)
	return ok
}

func (pack *Pack) GetMod(slug string) (ModEntry, bool) {
	for _, entry := range pack.Mods {
		if entry.Slug == slug {
			return entry, true
		}
	}
	return ModEntry{}, false
}

// AddMod appends a new entry, keeping slugs unique
func (pack *Pack) AddMod(entry ModEntry) error {
	if pack.HasMod(entry.Slug) {
		return fmt.Errorf("%s: %w", entry.Slug, ErrAlreadyPresent)
	}
	pack.Mods = append(pack.Mods, entry)
	return nil
}

// SetMod replaces the entry with the same slug in place, preserving order
func (pack *Pack) SetMod(entry ModEntry) error {
	for i := range pack.Mods {
		if pack.Mods[i].Slug == entry.Slug {
			pack.Mods[i] = entry
			return nil
		}
	}
	return fmt.Errorf("%s: %w", entry.Slug, ErrModNotFound)
}

// RemoveMod deletes the entry for slug. The downloaded file is not touched.
func (pack *Pack) RemoveMod(slug string) error {
	for i := range pack.Mods {
		if pack.Mods[i].Slug == slug {
			pack.Mods = append(pack.Mods[:i], pack.Mods[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", slug, ErrModNotFound)
}
