package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FloatyJellyfish/mod-updater/core"
)

// LoadManifest reads the pack manifest from path.
func LoadManifest(path string) (core.Pack, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return core.Pack{}, core.ErrManifestNotFound
	}
	if err != nil {
		return core.Pack{}, err
	}

	var pack core.Pack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return core.Pack{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := pack.CheckFormat(); err != nil {
		return core.Pack{}, err
	}
	return pack, nil
}

// WriteManifest saves the manifest with an atomic replace, so a crash
// mid-write never leaves a truncated file behind.
func WriteManifest(pack core.Pack, path string) error {
	raw, err := yaml.Marshal(pack)
	if err != nil {
		return err
	}
	return writeAtomic(raw, path)
}
