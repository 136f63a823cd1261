package sim

import (
	"fmt"
	"strings"
)

// MergeCounts tallies merge events in the log by child tier.
func MergeCounts(sl *SimLog) [TierCount]int {
	var counts [TierCount]int
	for _, e := range sl.Filter("merge", "tier_up") {
		var parentA, parentB uint64
		var tier int
		if _, err := fmt.Sscanf(e.Value, "#%d+#%d -> t%d", &parentA, &parentB, &tier); err != nil {
			continue
		}
		counts[clampTier(tier)]++
	}
	return counts
}

// Report renders a plain-text summary of the current game and the last
// lastTicks ticks of its log, for pasting into bug reports.
func (s *Scheduler) Report(lastTicks int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if lastTicks <= 0 {
		lastTicks = 120
	}
	snap := s.snap
	toTick := snap.Tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Sputnik run report ---\n")
	fmt.Fprintf(&b, "tick=%d score=%d best=%d terminal=%v next=t%d bodies=%d\n",
		snap.Tick, snap.Score, snap.Best, snap.Terminal, snap.NextTier, len(snap.Bodies))

	counts := MergeCounts(s.state.SimLog)
	b.WriteString("merges:")
	for tier, n := range counts {
		if n > 0 {
			fmt.Fprintf(&b, " t%d=%d", tier, n)
		}
	}
	b.WriteByte('\n')

	for _, bv := range snap.Bodies {
		fmt.Fprintf(&b, "  #%-4d t%d r=%.0f @(%.1f,%.1f)\n", bv.ID, bv.Tier, bv.Radius, bv.Pos[0], bv.Pos[1])
	}

	fmt.Fprintf(&b, "\n== log T=%d..%d ==\n", fromTick, toTick)
	for _, e := range s.state.SimLog.FilterTickRange(fromTick, toTick) {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
