package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alexanderramin/roadtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyDoc = `{"phases": [{"id": 1, "title": "Only", "duration": "1 week", "tasks": [
	{"id": "a", "title": "Task A", "completed": false, "category": "General"}
]}], "stats": {"totalTasks": 1, "completedTasks": 0, "progress": 0}}`

func TestEmbeddedSource_BothTracksAreConsistent(t *testing.T) {
	src := NewEmbeddedSource()
	for _, track := range domain.AllTracks() {
		rm, err := src.Fetch(context.Background(), track)
		require.NoError(t, err, track)
		assert.NotEmpty(t, rm.Phases)
		assert.True(t, rm.StatsConsistent(), "%s catalog stats must match its tasks", track)
		assert.Zero(t, rm.Stats.CompletedTasks)
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roadmap.json"), []byte(tinyDoc), 0o644))

	src := NewDirSource(dir)
	rm, err := src.Fetch(context.Background(), domain.TrackPCB)
	require.NoError(t, err)
	assert.Equal(t, 1, rm.Stats.TotalTasks)

	_, err = src.Fetch(context.Background(), domain.TrackAIML)
	var fetchErr *domain.CatalogFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.TrackAIML, fetchErr.Track)
}

func TestFSSource_MalformedDocument(t *testing.T) {
	src := NewFSSource(fstest.MapFS{
		"aiml-roadmap.json": {Data: []byte(`{"phases": "nope"}`)},
	})
	_, err := src.Fetch(context.Background(), domain.TrackAIML)
	var fetchErr *domain.CatalogFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "AI/ML catalog")
}

func TestFSSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEmbeddedSource().Fetch(ctx, domain.TrackPCB)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/roadmap.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(tinyDoc))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/data/", 2*time.Second)

	rm, err := src.Fetch(context.Background(), domain.TrackPCB)
	require.NoError(t, err)
	assert.Equal(t, "Task A", rm.Phases[0].Tasks[0].Title)

	_, err = src.Fetch(context.Background(), domain.TrackAIML)
	var fetchErr *domain.CatalogFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSource_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	src := NewHTTPSource(srv.URL, 50*time.Millisecond)
	_, err := src.Fetch(context.Background(), domain.TrackPCB)
	require.Error(t, err)

	var fetchErr *domain.CatalogFetchError
	assert.True(t, errors.As(err, &fetchErr))
}
