package core

import (
	"slices"
	"time"
)

// ModVersion is one published release of a mod, as fetched from the source
// API together with its primary file. It is never persisted beyond the
// pinned version ID.
type ModVersion struct {
	ID            string
	ProjectID     string
	Slug          string
	Name          string
	VersionNumber string
	GameVersions  []string
	Loaders       []string
	URL           string
	FileName      string
	DatePublished time.Time
}

func (v *ModVersion) SupportsLoader(loader Loader) bool {
	return slices.Contains(v.Loaders, string(loader))
}

func (v *ModVersion) SupportsGameVersion(gameVersion string) bool {
	return slices.Contains(v.GameVersions, gameVersion)
}
