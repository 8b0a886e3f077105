package core

import (
	"fmt"
	"strings"
)

// Loader is a mod-loading runtime that mods are built against.
type Loader string

const (
	LoaderFabric     Loader = "fabric"
	LoaderForge      Loader = "forge"
	LoaderNeoForge   Loader = "neoforge"
	LoaderQuilt      Loader = "quilt"
	LoaderLiteLoader Loader = "liteloader"
)

var Loaders = []Loader{
	LoaderFabric,
	LoaderForge,
	LoaderNeoForge,
	LoaderQuilt,
	LoaderLiteLoader,
}

var loaderFriendlyNames = map[Loader]string{
	LoaderFabric:     "Fabric loader",
	LoaderForge:      "Forge",
	LoaderNeoForge:   "NeoForge",
	LoaderQuilt:      "Quilt loader",
	LoaderLiteLoader: "LiteLoader",
}

// ParseLoader matches name against the known loaders. Dashes are ignored so
// spellings like "neo-forge" are accepted.
func ParseLoader(name string) (Loader, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "")
	for _, l := range Loaders {
		if string(l) == normalized {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown mod loader %q (expected one of %s)", name, LoaderNames())
}

func LoaderNames() string {
	names := make([]string, len(Loaders))
	for i, l := range Loaders {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func (l Loader) FriendlyName() string {
	if name, ok := loaderFriendlyNames[l]; ok {
		return name
	}
	return string(l)
}

func (l Loader) String() string {
	return string(l)
}
