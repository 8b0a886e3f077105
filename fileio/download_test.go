package fileio

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jar-bytes-" + r.URL.Path))
	}))
	defer server.Close()

	destDir := t.TempDir()
	tasks := []DownloadTask{
		{Slug: "sodium", URL: server.URL + "/sodium", FileName: "sodium.jar"},
		{Slug: "lithium", URL: server.URL + "/lithium", FileName: "lithium.jar"},
	}

	results := DownloadAll(tasks, destDir, 2)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.NoError(t, res.Err)
	}

	data, err := os.ReadFile(filepath.Join(destDir, "sodium.jar"))
	require.NoError(t, err)
	assert.Equal(t, "jar-bytes-/sodium", string(data))
}

func TestDownloadAllBestEffort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	destDir := t.TempDir()
	tasks := []DownloadTask{
		{Slug: "gone", URL: server.URL + "/missing", FileName: "gone.jar"},
		{Slug: "here", URL: server.URL + "/here", FileName: "here.jar"},
	}

	// One failure must not stop the other download
	results := DownloadAll(tasks, destDir, 1)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)

	_, err := os.Stat(filepath.Join(destDir, "here.jar"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(destDir, "gone.jar"))
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadAllEmpty(t *testing.T) {
	assert.Empty(t, DownloadAll(nil, t.TempDir(), 4))
}
