package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Sputnik/internal/sim"
)

const (
	panelWidth    = 220
	feedMaxItems  = 40
	feedLineH     = 15
	feedHighlight = 3  // newest rows drawn highlighted
	feedFooter    = 22 // debug line under the feed
)

// FeedEntry is one line in the merge feed.
type FeedEntry struct {
	Tick   int
	Tier   int
	Points int
}

func (e FeedEntry) String() string {
	return fmt.Sprintf("%5d  %-9s +%d", e.Tick, lookFor(e.Tier).Name, e.Points)
}

// MergeFeed is a ring buffer of recent merges rendered in the side panel.
type MergeFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

func NewMergeFeed() *MergeFeed {
	return &MergeFeed{entries: make([]FeedEntry, feedMaxItems)}
}

// Add records a merge seen at tick.
func (f *MergeFeed) Add(tick int, ev sim.MergeEvent) {
	f.entries[f.head] = FeedEntry{Tick: tick, Tier: ev.Tier, Points: ev.Points}
	f.head = (f.head + 1) % feedMaxItems
	if f.count < feedMaxItems {
		f.count++
	}
}

// Recent returns entries oldest first.
func (f *MergeFeed) Recent() []FeedEntry {
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+feedMaxItems)%feedMaxItems]
	}
	return out
}

// Clear empties the feed.
func (f *MergeFeed) Clear() {
	f.head, f.count = 0, 0
}

// Draw renders the feed panel at panelX, newest row at the bottom.
func (f *MergeFeed) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, panelWidth, float32(panelH), color.RGBA{R: 10, G: 10, B: 18, A: 255}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1, color.RGBA{R: 60, G: 60, B: 90, A: 255}, false)
	vector.FillRect(screen, px, 0, panelWidth, 20, color.RGBA{R: 22, G: 22, B: 40, A: 255}, false)
	drawText(screen, face, "RECENT MERGES", float64(panelX+8), 3, color.White)

	entries := f.Recent()
	maxVisible := (panelH - 28 - feedFooter) / feedLineH
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 26
	for i, e := range entries {
		if i >= len(entries)-feedHighlight {
			vector.FillRect(screen, px+2, float32(y), panelWidth-4, feedLineH, color.RGBA{R: 30, G: 30, B: 55, A: 200}, false)
		}
		// Tier colour chip.
		vector.FillRect(screen, px+6, float32(y+4), 6, 7, lookFor(e.Tier).Color, false)
		drawText(screen, face, e.String(), float64(panelX+16), float64(y+1), color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += feedLineH
	}
}
