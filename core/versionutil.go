package core

import (
	"slices"

	"github.com/unascribed/FlexVer/go/flexver"
)

// SortAndDedupeVersions sorts game versions in ascending FlexVer order and
// removes duplicates in place, returning the shortened slice.
func SortAndDedupeVersions(versions []string) []string {
	flexver.VersionSlice(versions).Sort()
	if len(versions) == 0 {
		return versions
	}
	j := 0
	for i := 1; i < len(versions); i++ {
		if versions[i] != versions[j] {
			j++
			versions[j] = versions[i]
		}
	}
	return versions[:j+1]
}

// HighestVersion returns the highest game version by FlexVer ordering, or ""
// for an empty slice.
func HighestVersion(versions []string) string {
	highest := ""
	for _, v := range versions {
		if highest == "" || flexver.Less(highest, v) {
			highest = v
		}
	}
	return highest
}

// IntersectVersions returns the game versions present in both slices,
// preserving the order of a.
func IntersectVersions(a, b []string) []string {
	var common []string
	for _, v := range a {
		if slices.Contains(b, v) {
			common = append(common, v)
		}
	}
	return common
}
