package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPack(t *testing.T) {
	pack := NewPack(LoaderFabric, "1.21.4")

	assert.Equal(t, CurrentManifestFormat, pack.Format)
	assert.Equal(t, LoaderFabric, pack.Loader)
	assert.Equal(t, "1.21.4", pack.GameVersion)
	assert.Empty(t, pack.Mods)
}

func TestAddModDuplicate(t *testing.T) {
	pack := NewPack(LoaderFabric, "1.21.4")

	err := pack.AddMod(ModEntry{Slug: "sodium", VersionID: "aaaa1111", FileName: "sodium.jar"})
	assert.NoError(t, err)

	err = pack.AddMod(ModEntry{Slug: "sodium", VersionID: "bbbb2222", FileName: "sodium-2.jar"})
	assert.ErrorIs(t, err, ErrAlreadyPresent)
	assert.Len(t, pack.Mods, 1)
}

func TestAddThenRemoveRestoresEntries(t *testing.T) {
	pack := NewPack(LoaderFabric, "1.21.4")
	assert.NoError(t, pack.AddMod(ModEntry{Slug: "lithium", VersionID: "cccc3333", FileName: "lithium.jar"}))
	before := append([]ModEntry(nil), pack.Mods...)

	assert.NoError(t, pack.AddMod(ModEntry{Slug: "sodium", VersionID: "aaaa1111", FileName: "sodium.jar"}))
	assert.NoError(t, pack.RemoveMod("sodium"))

	assert.Equal(t, before, pack.Mods)
}

func TestRemoveModMissing(t *testing.T) {
	pack := NewPack(LoaderQuilt, "1.21.4")

	err := pack.RemoveMod("sodium")
	assert.ErrorIs(t, err, ErrModNotFound)
}

func TestSetModRewritesPin(t *testing.T) {
	pack := NewPack(LoaderFabric, "1.21.4")
	assert.NoError(t, pack.AddMod(ModEntry{Slug: "sodium", VersionID: "aaaa1111", FileName: "sodium-0.5.jar"}))
	assert.NoError(t, pack.AddMod(ModEntry{Slug: "lithium", VersionID: "cccc3333", FileName: "lithium.jar"}))

	err := pack.SetMod(ModEntry{Slug: "sodium", VersionID: "bbbb2222", FileName: "sodium-0.6.jar"})
	assert.NoError(t, err)

	entry, ok := pack.GetMod("sodium")
	assert.True(t, ok)
	assert.Equal(t, "bbbb2222", entry.VersionID)
	assert.Equal(t, "sodium-0.6.jar", entry.FileName)
	// Order is preserved
	assert.Equal(t, "sodium", pack.Mods[0].Slug)
	assert.Equal(t, "lithium", pack.Mods[1].Slug)
}

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"current", "mod-updater:1.0.0", false},
		{"newer feature", "mod-updater:1.2.0", false},
		{"missing defaults to current", "", false},
		{"newer major rejected", "mod-updater:2.0.0", true},
		{"foreign manifest", "packwiz:1.1.0", true},
		{"not semver", "mod-updater:latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := Pack{Format: tt.format}
			err := pack.CheckFormat()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, pack.Format)
			}
		})
	}
}
