package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTrack is returned when a track name does not match any known track.
var ErrUnknownTrack = errors.New("unknown track")

// Track identifies one of the two independent learning paths.
type Track string

const (
	TrackPCB  Track = "pcb"
	TrackAIML Track = "aiml"
)

// AllTracks returns every track in display order.
func AllTracks() []Track {
	return []Track{TrackPCB, TrackAIML}
}

// ParseTrack converts user input into a Track. Matching is case-insensitive
// and accepts the "ai/ml" and "ai-ml" spellings.
func ParseTrack(s string) (Track, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pcb":
		return TrackPCB, nil
	case "aiml", "ai/ml", "ai-ml", "ml":
		return TrackAIML, nil
	default:
		return "", fmt.Errorf("%w %q (expected pcb or aiml)", ErrUnknownTrack, s)
	}
}

// Valid reports whether t is one of the known tracks.
func (t Track) Valid() bool {
	return t == TrackPCB || t == TrackAIML
}

// StorageKey is the persistence key holding the track's roadmap document.
func (t Track) StorageKey() string {
	switch t {
	case TrackPCB:
		return "pcbRoadmap"
	case TrackAIML:
		return "aimlRoadmap"
	}
	panic(fmt.Sprintf("domain: storage key for invalid track %q", string(t)))
}

// CatalogFile is the file name of the track's canonical catalog document.
func (t Track) CatalogFile() string {
	switch t {
	case TrackPCB:
		return "roadmap.json"
	case TrackAIML:
		return "aiml-roadmap.json"
	}
	panic(fmt.Sprintf("domain: catalog file for invalid track %q", string(t)))
}

// Label is the short human-readable track name.
func (t Track) Label() string {
	switch t {
	case TrackPCB:
		return "PCB"
	case TrackAIML:
		return "AI/ML"
	}
	return string(t)
}

// Title is the long display title of the track.
func (t Track) Title() string {
	switch t {
	case TrackPCB:
		return "PCB & Circuit Design"
	case TrackAIML:
		return "AI/ML Engineering"
	}
	return string(t)
}
