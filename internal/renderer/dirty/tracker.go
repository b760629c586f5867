package dirty

import "github.com/dshills/pdfsketch/internal/geom"

// DefaultMaxRegions is the region count above which the tracker gives up on
// partial repaint and marks the whole surface.
const DefaultMaxRegions = 32

// Tracker accumulates invalidated rectangles between paints. It is owned by
// a single goroutine and is not safe for concurrent use.
type Tracker struct {
	// regions contains the current dirty rectangles, pairwise non-touching.
	regions []geom.Rect

	// fullRedraw indicates the entire surface needs redrawing.
	fullRedraw bool

	// maxRegions is the maximum number of regions before forcing full redraw.
	maxRegions int

	// bounds is the surface extent. An empty bounds disables clipping.
	bounds geom.Rect

	// coalesceThreshold is the fraction of the surface that triggers full redraw.
	coalesceThreshold float64
}

// NewTracker creates a tracker for a surface of the given size.
func NewTracker(size geom.Size) *Tracker {
	return &Tracker{
		regions:           make([]geom.Rect, 0, 16),
		maxRegions:        DefaultMaxRegions,
		bounds:            geom.RectFromSize(size),
		coalesceThreshold: 0.5,
	}
}

// SetScreenSize updates the surface extent and marks it fully dirty.
func (t *Tracker) SetScreenSize(size geom.Size) {
	t.bounds = geom.RectFromSize(size)
	t.fullRedraw = true
	t.regions = t.regions[:0]
}

// MarkFullRedraw marks the entire surface as needing redraw.
func (t *Tracker) MarkFullRedraw() {
	t.fullRedraw = true
	t.regions = t.regions[:0]
}

// MarkRect marks r as dirty. Rectangles are clipped to the surface; ones
// that fall entirely outside it are ignored.
func (t *Tracker) MarkRect(r geom.Rect) {
	if t.fullRedraw {
		return
	}
	t.addRect(r)
}

func (t *Tracker) addRect(r geom.Rect) {
	if !t.bounds.IsEmpty() {
		r = r.Intersect(t.bounds)
	}
	if r.IsEmpty() {
		return
	}

	for i := range t.regions {
		if t.regions[i].ContainsRect(r) {
			return
		}
		if merged, ok := Merge(t.regions[i], r); ok {
			t.regions[i] = merged
			t.coalesceRegions()
			t.checkThreshold()
			return
		}
	}

	t.regions = append(t.regions, r)

	if len(t.regions) > t.maxRegions {
		t.coalesceRegions()
		if len(t.regions) > t.maxRegions {
			t.fullRedraw = true
			t.regions = t.regions[:0]
			return
		}
	}
	t.checkThreshold()
}

func (t *Tracker) checkThreshold() {
	if t.dirtyAreaRatio() > t.coalesceThreshold {
		t.fullRedraw = true
		t.regions = t.regions[:0]
	}
}

// coalesceRegions merges touching regions until none remain.
func (t *Tracker) coalesceRegions() {
	if len(t.regions) <= 1 {
		return
	}

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(t.regions) && !changed; i++ {
			for j := i + 1; j < len(t.regions); j++ {
				if merged, ok := Merge(t.regions[i], t.regions[j]); ok {
					t.regions[i] = merged
					t.regions = append(t.regions[:j], t.regions[j+1:]...)
					changed = true
					break
				}
			}
		}
	}
}

// dirtyAreaRatio returns the ratio of dirty area to surface area.
func (t *Tracker) dirtyAreaRatio() float64 {
	total := t.bounds.Area()
	if total == 0 {
		return 0
	}
	var dirty float64
	for _, r := range t.regions {
		dirty += r.Area()
	}
	return dirty / total
}

// IsDirty returns true if anything is marked dirty.
func (t *Tracker) IsDirty() bool {
	return t.fullRedraw || len(t.regions) > 0
}

func (t *Tracker) snapshot() []geom.Rect {
	if t.fullRedraw {
		if t.bounds.IsEmpty() {
			return []geom.Rect{}
		}
		return []geom.Rect{t.bounds}
	}
	result := make([]geom.Rect, len(t.regions))
	copy(result, t.regions)
	return result
}

// Take returns the dirty rectangles and clears the tracker. A full redraw is
// reported as a single rectangle covering the surface.
func (t *Tracker) Take() []geom.Rect {
	result := t.snapshot()
	t.regions = t.regions[:0]
	t.fullRedraw = false
	return result
}

// Clear clears all dirty regions.
func (t *Tracker) Clear() {
	t.regions = t.regions[:0]
	t.fullRedraw = false
}

// SetMaxRegions sets the maximum number of regions before forcing full redraw.
// Values less than 1 are clamped to 1.
func (t *Tracker) SetMaxRegions(maxRegs int) {
	if maxRegs < 1 {
		maxRegs = 1
	}
	t.maxRegions = maxRegs
}

// SetCoalesceThreshold sets the dirty area fraction that triggers full redraw.
func (t *Tracker) SetCoalesceThreshold(threshold float64) {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	t.coalesceThreshold = threshold
}

// Stats returns statistics about the tracker state.
func (t *Tracker) Stats() TrackerStats {
	return TrackerStats{
		RegionCount:   len(t.regions),
		FullRedraw:    t.fullRedraw,
		DirtyRatio:    t.dirtyAreaRatio(),
		ScreenSize:    t.bounds.Size,
		MaxRegions:    t.maxRegions,
		CoalThreshold: t.coalesceThreshold,
	}
}

// TrackerStats contains statistics about the tracker state.
type TrackerStats struct {
	RegionCount   int
	FullRedraw    bool
	DirtyRatio    float64
	ScreenSize    geom.Size
	MaxRegions    int
	CoalThreshold float64
}
