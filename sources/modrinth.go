package sources

import (
	"errors"
	"fmt"
	"net/http"

	modrinthApi "codeberg.org/jmansfield/go-modrinth/modrinth"
	"github.com/unascribed/FlexVer/go/flexver"

	"github.com/FloatyJellyfish/mod-updater/config"
	"github.com/FloatyJellyfish/mod-updater/core"
)

var modrinthClient *modrinthApi.Client

// GetModrinthClient returns the shared Modrinth API client.
func GetModrinthClient() *modrinthApi.Client {
	if modrinthClient == nil {
		modrinthClient = modrinthApi.NewClient(&http.Client{})
		modrinthClient.UserAgent = config.UserAgent()
	}
	return modrinthClient
}

// ChooseProjectFunc picks one search result when a query matches several
// projects. An error cancels the whole operation.
type ChooseProjectFunc func(candidates []*modrinthApi.SearchResult) (*modrinthApi.SearchResult, error)

// Modrinth implements core.VersionSource against the Modrinth v2 API.
type Modrinth struct {
	ChooseProject ChooseProjectFunc
}

func NewModrinth(choose ChooseProjectFunc) *Modrinth {
	return &Modrinth{ChooseProject: choose}
}

const searchLimit = 5

func (m *Modrinth) Resolve(query string, loader core.Loader, gameVersion string) (*core.ModVersion, error) {
	// Modrinth transparently handles slugs and project IDs, so an exact
	// match resolves without a search
	project, err := GetModrinthClient().Projects.Get(query)
	if err != nil {
		project, err = m.searchForProject(query, gameVersion)
		if err != nil {
			return nil, err
		}
	}
	return m.Latest(projectSlug(project), loader, gameVersion)
}

func (m *Modrinth) searchForProject(query string, gameVersion string) (*modrinthApi.Project, error) {
	facets := [][]string{{"project_type:mod"}}
	if gameVersion != "" {
		facets = append(facets, []string{"versions:" + gameVersion})
	}
	res, err := GetModrinthClient().Projects.Search(&modrinthApi.SearchOptions{
		Limit:  searchLimit,
		Index:  "relevance",
		Facets: facets,
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search for %s: %w", query, err)
	}
	if len(res.Hits) == 0 {
		return nil, fmt.Errorf("no mods matching %q: %w", query, core.ErrModNotFound)
	}

	hit := res.Hits[0]
	if len(res.Hits) > 1 {
		if m.ChooseProject == nil {
			return nil, fmt.Errorf("%d mods matched %q and no chooser is available", len(res.Hits), query)
		}
		hit, err = m.ChooseProject(res.Hits)
		if err != nil {
			return nil, err
		}
	}
	if hit.ProjectID == nil {
		return nil, errors.New("failed to search: invalid response")
	}
	return GetModrinthClient().Projects.Get(*hit.ProjectID)
}

func (m *Modrinth) Latest(slug string, loader core.Loader, gameVersion string) (*core.ModVersion, error) {
	versions, err := m.ListVersions(slug, loader, gameVersion)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		if gameVersion != "" {
			return nil, fmt.Errorf("%s has no versions for %s %s: %w", slug, loader, gameVersion, core.ErrNoCompatibleVersion)
		}
		return nil, fmt.Errorf("%s has no versions for %s: %w", slug, loader, core.ErrNoCompatibleVersion)
	}

	latest := findLatestVersion(versions, false)
	flexverLatest := findLatestVersion(versions, true)
	if latest != flexverLatest {
		fmt.Printf("Warning: Modrinth versions for %s inconsistent between latest version number and newest release date (%s vs %s)\n",
			slug, flexverLatest.VersionNumber, latest.VersionNumber)
	}
	if latest.URL == "" {
		return nil, fmt.Errorf("version %s of %s doesn't have any files attached", latest.VersionNumber, slug)
	}
	return latest, nil
}

func (m *Modrinth) VersionByID(versionID string) (*core.ModVersion, error) {
	version, err := GetModrinthClient().Versions.Get(versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch version %s: %w", versionID, err)
	}
	return toModVersion("", version), nil
}

func (m *Modrinth) SupportedGameVersions(slug string, loader core.Loader) ([]string, error) {
	versions, err := GetModrinthClient().Versions.ListVersions(slug, modrinthApi.ListVersionsOptions{
		Loaders: []string{string(loader)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch versions for %s: %w", slug, err)
	}
	var supported []string
	for _, v := range versions {
		supported = append(supported, v.GameVersions...)
	}
	return core.SortAndDedupeVersions(supported), nil
}

// ListVersions returns every version of a mod, newest first, optionally
// filtered by loader and game version.
func (m *Modrinth) ListVersions(slug string, loader core.Loader, gameVersion string) ([]*core.ModVersion, error) {
	opts := modrinthApi.ListVersionsOptions{}
	if loader != "" {
		opts.Loaders = []string{string(loader)}
	}
	if gameVersion != "" {
		opts.GameVersions = []string{gameVersion}
	}
	versions, err := GetModrinthClient().Versions.ListVersions(slug, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch versions for %s: %w", slug, err)
	}
	result := make([]*core.ModVersion, len(versions))
	for i, v := range versions {
		result[i] = toModVersion(slug, v)
	}
	return result, nil
}

func projectSlug(project *modrinthApi.Project) string {
	if project.Slug != nil {
		return *project.Slug
	}
	if project.ID != nil {
		return *project.ID
	}
	return ""
}

// findLatestVersion picks the newest version, either by FlexVer ordering of
// version numbers or by publish date. Callers compare the two to warn about
// projects whose version numbering disagrees with their release dates.
func findLatestVersion(versions []*core.ModVersion, useFlexVer bool) *core.ModVersion {
	latest := versions[0]
	for _, v := range versions[1:] {
		var compare int32
		if useFlexVer {
			compare = flexver.Compare(v.VersionNumber, latest.VersionNumber)
		}
		if compare == 0 && v.DatePublished.After(latest.DatePublished) {
			compare = 1
		}
		if compare > 0 {
			latest = v
		}
	}
	return latest
}

// toModVersion converts an API version to the domain type, picking the
// primary file. URL and FileName stay empty for file-less versions.
func toModVersion(slug string, version *modrinthApi.Version) *core.ModVersion {
	mv := &core.ModVersion{
		Slug:         slug,
		GameVersions: version.GameVersions,
		Loaders:      version.Loaders,
	}
	if version.ID != nil {
		mv.ID = *version.ID
	}
	if version.ProjectID != nil {
		mv.ProjectID = *version.ProjectID
	}
	if version.Name != nil {
		mv.Name = *version.Name
	}
	if version.VersionNumber != nil {
		mv.VersionNumber = *version.VersionNumber
	}
	if version.DatePublished != nil {
		mv.DatePublished = *version.DatePublished
	}
	if file := primaryFile(version); file != nil {
		if file.URL != nil {
			mv.URL = *file.URL
		}
		if file.Filename != nil {
			mv.FileName = *file.Filename
		}
	}
	return mv
}

// primaryFile prefers the file Modrinth marks as primary.
func primaryFile(version *modrinthApi.Version) *modrinthApi.File {
	if len(version.Files) == 0 {
		return nil
	}
	file := version.Files[0]
	for _, f := range version.Files {
		if f.Primary != nil && *f.Primary {
			file = f
		}
	}
	return file
}
