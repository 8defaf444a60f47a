// Package telomere finds runs of telomeric repeat motifs anchored at the
// ends of genomic sequences.
package telomere

import (
	"fmt"

	"github.com/vertgenlab/gonomics/dna"
)

// Side selects which terminus of a sequence to scan.
type Side byte

const (
	Left Side = iota
	Right
)

// String method for Side enables easy writing with the fmt package.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Settings holds the scan parameters shared by every record in a run.
// Motifs are kept in priority order: when two motifs produce otherwise
// identical matches, the first listed motif wins.
type Settings struct {
	Motifs     [][]dna.Base // candidate repeat units, in priority order
	MinRepeats int          // minimum consecutive exact repeats for a call
	Window     int          // number of bases searched at each end
	MaxOffset  int          // maximum gap between a run and the window edge
}

// Validate checks Settings before any scanning begins. An invalid
// configuration is an error, never a silent "not found".
func (s Settings) Validate() error {
	if s.MinRepeats < 1 {
		return fmt.Errorf("minRepeats must be >= 1, got %d", s.MinRepeats)
	}
	if s.Window < 1 {
		return fmt.Errorf("window must be >= 1, got %d", s.Window)
	}
	if s.MaxOffset < 0 {
		return fmt.Errorf("maxOffset must be >= 0, got %d", s.MaxOffset)
	}
	if len(s.Motifs) == 0 {
		return fmt.Errorf("at least one motif is required")
	}
	seen := make(map[string]bool)
	for i := range s.Motifs {
		if len(s.Motifs[i]) == 0 {
			return fmt.Errorf("motif %d is empty", i+1)
		}
		str := dna.BasesToString(s.Motifs[i])
		if seen[str] {
			return fmt.Errorf("duplicate motif: %s", str)
		}
		seen[str] = true
	}
	return nil
}

// EndResult describes the single best repeat run found at one terminus.
// Start and End are half-open offsets into the full sequence, not the
// search window.
type EndResult struct {
	Found   bool
	Motif   []dna.Base // the repeat unit that matched
	Seq     []dna.Base // the matched run
	Start   int
	End     int
	Repeats int // number of back-to-back copies of Motif in Seq
}

// candidate is a qualifying repeat run with window-relative offsets.
type candidate struct {
	motif      []dna.Base
	start, end int
}

// ScanEnd searches one end of seq for the best anchored run of repeated
// motifs. Settings must be validated by the caller; an empty sequence is
// not an error and simply yields Found == false.
func ScanEnd(seq []dna.Base, side Side, s Settings) EndResult {
	window := s.Window
	if window > len(seq) {
		window = len(seq)
	}
	var region []dna.Base
	if side == Left {
		region = seq[:window]
	} else {
		region = seq[len(seq)-window:]
	}

	var best candidate
	var found bool
	for _, motif := range s.Motifs {
		for _, c := range repeatRuns(region, motif, s.MinRepeats) {
			if !anchored(c, side, len(region), s.MaxOffset) {
				continue
			}
			if !found || better(c, best, side) {
				best = c
				found = true
			}
		}
	}
	if !found {
		return EndResult{}
	}

	var offset int
	if side == Right {
		offset = len(seq) - len(region)
	}
	start, end := best.start+offset, best.end+offset
	return EndResult{
		Found:   true,
		Motif:   best.motif,
		Seq:     seq[start:end],
		Start:   start,
		End:     end,
		Repeats: (end - start) / len(best.motif),
	}
}

// repeatRuns finds every maximal run of >= minRepeats back-to-back exact
// copies of motif in region, scanning left to right. Runs of the same
// motif never overlap: scanning resumes past each recorded run.
func repeatRuns(region, motif []dna.Base, minRepeats int) []candidate {
	var runs []candidate
	for i := 0; i+len(motif) <= len(region); {
		j := i
		for j+len(motif) <= len(region) && unitAt(region, motif, j) {
			j += len(motif)
		}
		if (j-i)/len(motif) >= minRepeats {
			runs = append(runs, candidate{motif: motif, start: i, end: j})
			i = j
		} else {
			i++
		}
	}
	return runs
}

// unitAt reports whether one exact copy of motif starts at pos in region.
func unitAt(region, motif []dna.Base, pos int) bool {
	for k := range motif {
		if region[pos+k] != motif[k] {
			return false
		}
	}
	return true
}

// anchored reports whether the run sits within maxOffset of the outer edge
// of the window, i.e. close enough to the terminus to count as telomeric.
func anchored(c candidate, side Side, regionLen, maxOffset int) bool {
	if side == Left {
		return c.start <= maxOffset
	}
	return regionLen-c.end <= maxOffset
}

// better reports whether a beats b: longer runs win, then position breaks
// ties (earliest start on the left, latest end on the right). Comparisons
// are strict so that on a full tie the earlier candidate, and therefore
// the earlier listed motif, is kept.
func better(a, b candidate, side Side) bool {
	if a.end-a.start != b.end-b.start {
		return a.end-a.start > b.end-b.start
	}
	if side == Left {
		return a.start < b.start
	}
	return a.end > b.end
}
