package sources

import (
	"testing"
	"time"

	modrinthApi "codeberg.org/jmansfield/go-modrinth/modrinth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FloatyJellyfish/mod-updater/core"
)

func ptr[T any](v T) *T {
	return &v
}

func TestFindLatestVersionByDate(t *testing.T) {
	older := &core.ModVersion{VersionNumber: "0.6.0", DatePublished: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &core.ModVersion{VersionNumber: "0.5.1", DatePublished: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}

	latest := findLatestVersion([]*core.ModVersion{older, newer}, false)
	assert.Same(t, newer, latest)
}

func TestFindLatestVersionByFlexVer(t *testing.T) {
	// FlexVer ordering wins over publish date when enabled
	older := &core.ModVersion{VersionNumber: "0.6.0", DatePublished: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &core.ModVersion{VersionNumber: "0.5.1", DatePublished: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}

	latest := findLatestVersion([]*core.ModVersion{older, newer}, true)
	assert.Same(t, older, latest)
}

func TestFindLatestVersionSingle(t *testing.T) {
	only := &core.ModVersion{VersionNumber: "1.0.0"}
	assert.Same(t, only, findLatestVersion([]*core.ModVersion{only}, false))
}

func TestProjectSlug(t *testing.T) {
	assert.Equal(t, "sodium", projectSlug(&modrinthApi.Project{Slug: ptr("sodium"), ID: ptr("AANobbMI")}))
	assert.Equal(t, "AANobbMI", projectSlug(&modrinthApi.Project{ID: ptr("AANobbMI")}))
	assert.Equal(t, "", projectSlug(&modrinthApi.Project{}))
}

func TestPrimaryFilePreferred(t *testing.T) {
	version := &modrinthApi.Version{
		Files: []*modrinthApi.File{
			{Filename: ptr("sodium-sources.jar"), URL: ptr("https://cdn.modrinth.com/sodium-sources.jar"), Primary: ptr(false)},
			{Filename: ptr("sodium.jar"), URL: ptr("https://cdn.modrinth.com/sodium.jar"), Primary: ptr(true)},
		},
	}

	file := primaryFile(version)
	require.NotNil(t, file)
	assert.Equal(t, "sodium.jar", *file.Filename)
}

func TestPrimaryFileFallsBackToFirst(t *testing.T) {
	version := &modrinthApi.Version{
		Files: []*modrinthApi.File{
			{Filename: ptr("a.jar"), URL: ptr("https://cdn.modrinth.com/a.jar"), Primary: ptr(false)},
			{Filename: ptr("b.jar"), URL: ptr("https://cdn.modrinth.com/b.jar"), Primary: ptr(false)},
		},
	}

	file := primaryFile(version)
	require.NotNil(t, file)
	assert.Equal(t, "a.jar", *file.Filename)
}

func TestToModVersion(t *testing.T) {
	published := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	version := &modrinthApi.Version{
		ID:            ptr("abcDEF12"),
		ProjectID:     ptr("AANobbMI"),
		Name:          ptr("Sodium 0.6.0"),
		VersionNumber: ptr("0.6.0"),
		GameVersions:  []string{"1.21", "1.21.4"},
		Loaders:       []string{"fabric", "quilt"},
		DatePublished: &published,
		Files: []*modrinthApi.File{
			{Filename: ptr("sodium-fabric-0.6.0.jar"), URL: ptr("https://cdn.modrinth.com/sodium.jar"), Primary: ptr(true)},
		},
	}

	mv := toModVersion("sodium", version)

	assert.Equal(t, "abcDEF12", mv.ID)
	assert.Equal(t, "sodium", mv.Slug)
	assert.Equal(t, "0.6.0", mv.VersionNumber)
	assert.Equal(t, "sodium-fabric-0.6.0.jar", mv.FileName)
	assert.Equal(t, "https://cdn.modrinth.com/sodium.jar", mv.URL)
	assert.Equal(t, published, mv.DatePublished)
	assert.True(t, mv.SupportsLoader(core.LoaderFabric))
	assert.True(t, mv.SupportsGameVersion("1.21.4"))
}

func TestToModVersionNoFiles(t *testing.T) {
	mv := toModVersion("sodium", &modrinthApi.Version{ID: ptr("abcDEF12")})

	assert.Empty(t, mv.URL)
	assert.Empty(t, mv.FileName)
}
