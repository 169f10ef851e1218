// Package catalog supplies the canonical, read-only roadmap document of each
// track. Documents are used only when no persisted state exists.
package catalog

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/roadtrack/internal/codec"
	"github.com/alexanderramin/roadtrack/internal/domain"
)

// Source fetches a track's catalog document.
type Source interface {
	Fetch(ctx context.Context, track domain.Track) (*domain.Roadmap, error)
}

//go:embed data/*.json
var embedded embed.FS

// FSSource reads catalog documents from a file system, one file per track
// named by Track.CatalogFile.
type FSSource struct {
	fsys fs.FS
}

// NewEmbeddedSource serves the catalogs compiled into the binary.
func NewEmbeddedSource() *FSSource {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded data: %v", err))
	}
	return &FSSource{fsys: sub}
}

// NewDirSource serves catalogs from a directory on disk.
func NewDirSource(dir string) *FSSource {
	return &FSSource{fsys: os.DirFS(filepath.Clean(dir))}
}

// NewFSSource serves catalogs from an arbitrary file system.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Fetch(ctx context.Context, track domain.Track) (*domain.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.CatalogFetchError{Track: track, Err: err}
	}
	f, err := s.fsys.Open(track.CatalogFile())
	if err != nil {
		return nil, &domain.CatalogFetchError{Track: track, Err: err}
	}
	defer f.Close()

	rm, err := codec.Decode(f)
	if err != nil {
		return nil, &domain.CatalogFetchError{Track: track, Err: err}
	}
	return rm, nil
}
