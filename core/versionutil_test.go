package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortAndDedupeVersions(t *testing.T) {
	versions := []string{"1.21", "1.9", "1.21.4", "1.10", "1.21", "1.21.4"}

	result := SortAndDedupeVersions(versions)

	assert.Equal(t, []string{"1.9", "1.10", "1.21", "1.21.4"}, result)
}

func TestSortAndDedupeVersionsEmpty(t *testing.T) {
	assert.Empty(t, SortAndDedupeVersions(nil))
}

func TestHighestVersion(t *testing.T) {
	// FlexVer ordering, not lexicographic: 1.10 > 1.9
	assert.Equal(t, "1.21.4", HighestVersion([]string{"1.21.4", "1.10", "1.9", "1.21"}))
	assert.Equal(t, "1.10", HighestVersion([]string{"1.9", "1.10"}))
	assert.Equal(t, "", HighestVersion(nil))
}

func TestIntersectVersions(t *testing.T) {
	a := []string{"1.20.1", "1.21", "1.21.4"}
	b := []string{"1.21.4", "1.20.1", "1.19.2"}

	assert.Equal(t, []string{"1.20.1", "1.21.4"}, IntersectVersions(a, b))
	assert.Empty(t, IntersectVersions(a, []string{"1.8.9"}))
	assert.Empty(t, IntersectVersions(nil, b))
}
