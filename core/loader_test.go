package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLoader(t *testing.T) {
	tests := []struct {
		input   string
		want    Loader
		wantErr bool
	}{
		{"fabric", LoaderFabric, false},
		{"Forge", LoaderForge, false},
		{"neoforge", LoaderNeoForge, false},
		{"neo-forge", LoaderNeoForge, false},
		{"NeoForge", LoaderNeoForge, false},
		{"quilt", LoaderQuilt, false},
		{"lite-loader", LoaderLiteLoader, false},
		{"liteloader", LoaderLiteLoader, false},
		{"bukkit", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			loader, err := ParseLoader(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, loader)
			}
		})
	}
}

func TestLoaderFriendlyName(t *testing.T) {
	assert.Equal(t, "Fabric loader", LoaderFabric.FriendlyName())
	assert.Equal(t, "NeoForge", LoaderNeoForge.FriendlyName())
	assert.Equal(t, "rift", Loader("rift").FriendlyName())
}
