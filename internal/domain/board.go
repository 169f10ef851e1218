package domain

// Board holds the roadmap of every track. It is a value: With returns an
// updated copy and leaves the receiver alone.
type Board struct {
	PCB  Roadmap
	AIML Roadmap
}

// Get returns the roadmap of the given track.
func (b Board) Get(t Track) Roadmap {
	switch t {
	case TrackPCB:
		return b.PCB
	case TrackAIML:
		return b.AIML
	}
	panic("domain: board lookup for invalid track " + string(t))
}

// With returns a board whose roadmap for t is replaced by rm.
func (b Board) With(t Track, rm Roadmap) Board {
	switch t {
	case TrackPCB:
		b.PCB = rm
	case TrackAIML:
		b.AIML = rm
	default:
		panic("domain: board update for invalid track " + string(t))
	}
	return b
}

// Comparison summarizes the board's two tracks.
func (b Board) Comparison() Comparison {
	return Compare(b.PCB.Stats, b.AIML.Stats)
}
