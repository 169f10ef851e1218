package domain

import "fmt"

// CatalogFetchError reports that a track's catalog document could not be
// fetched or parsed.
type CatalogFetchError struct {
	Track Track
	Err   error
}

func (e *CatalogFetchError) Error() string {
	return fmt.Sprintf("fetching %s catalog: %v", e.Track.Label(), e.Err)
}

func (e *CatalogFetchError) Unwrap() error { return e.Err }

// CorruptPersistedStateError reports a stored document that is not a valid
// roadmap.
type CorruptPersistedStateError struct {
	Key string
	Err error
}

func (e *CorruptPersistedStateError) Error() string {
	return fmt.Sprintf("persisted state %q is corrupt: %v", e.Key, e.Err)
}

func (e *CorruptPersistedStateError) Unwrap() error { return e.Err }

// StorageWriteError reports a failed save or remove. The in-memory roadmap is
// not rolled back when this happens.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("writing %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// LoadError reports that no roadmap is available for a track.
type LoadError struct {
	Track Track
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s roadmap: %v", e.Track.Label(), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
